package engine

import (
	"context"
	"fmt"
	"log/slog"
)

// Emit writes the build plan document to <mdir>/vl_build.json, replacing any
// existing file.
//
// Failing to open the document returns ErrOutputUnavailable: downstream build
// tooling has no fallback when the document is absent, so the caller must
// abort. Once the stream is open, writing is best-effort; a write or close
// failure is logged and recorded in EmitResult.WriteErr only.
func (e *Engine) Emit(ctx context.Context, req *EmitRequest) (*EmitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := DocumentPath(req.Snapshot)
	e.logger.Debug("emitting build plan", slog.String("path", path), slog.Int("files", len(req.Files)))

	plan, doc, err := e.render(req.Snapshot, req.Files)
	if err != nil {
		return nil, err
	}

	out, err := e.fs.Create(path)
	if err != nil {
		e.logger.Error("cannot open build plan", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %s: %v", ErrOutputUnavailable, path, err)
	}

	result := &EmitResult{
		Path:   path,
		Plan:   plan,
		Digest: e.hasher.HashBytes(doc),
	}

	n, writeErr := out.Write(doc)
	result.BytesWritten = n
	if closeErr := out.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		result.WriteErr = writeErr
		e.logger.Warn("build plan write incomplete",
			slog.String("path", path),
			slog.Int("written", n),
			slog.Int("size", len(doc)),
			slog.Any("error", writeErr))
		return result, nil
	}

	e.logger.Info("wrote build plan",
		slog.String("path", path),
		slog.Int("bytes", n),
		slog.String("digest", result.Digest))
	return result, nil
}
