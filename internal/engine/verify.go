package engine

import (
	"context"
	"fmt"
	"log/slog"
)

// Verify re-renders the build plan and compares it with the document on
// disk. It returns ErrNotFound when there is no document and ErrDrift when
// the contents differ; the result is populated in both cases.
func (e *Engine) Verify(ctx context.Context, req *VerifyRequest) (*VerifyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, doc, err := e.render(req.Snapshot, req.Files)
	if err != nil {
		return nil, err
	}

	path := DocumentPath(req.Snapshot)
	result := &VerifyResult{
		Path:           path,
		ExpectedDigest: e.hasher.HashBytes(doc),
	}

	exists, err := e.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check build plan: %w", err)
	}
	if !exists {
		return result, fmt.Errorf("build plan %s: %w", path, ErrNotFound)
	}

	onDisk, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build plan: %w", err)
	}
	result.ActualDigest = e.hasher.HashBytes(onDisk)
	result.UpToDate = result.ActualDigest == result.ExpectedDigest

	if !result.UpToDate {
		e.logger.Debug("build plan drift",
			slog.String("path", path),
			slog.String("expected", result.ExpectedDigest),
			slog.String("actual", result.ActualDigest))
		return result, fmt.Errorf("build plan %s: %w", path, ErrDrift)
	}
	return result, nil
}
