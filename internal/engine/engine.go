// Package engine generates the build plan document for a compiled model.
//
// The engine is the orchestration layer between the CLI and the planner,
// document and fsops packages. Each call takes an explicit configuration
// snapshot and descriptor list, derives the plan, renders it, and (for Emit)
// writes it to <mdir>/vl_build.json.
//
// Key components:
//   - Emit: writes the document, failing fatally if it cannot be opened
//   - Show: renders without touching the filesystem
//   - Verify: compares the on-disk document with a fresh rendering
package engine

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/danieljhkim/vlbuild/internal/config"
	"github.com/danieljhkim/vlbuild/internal/document"
	"github.com/danieljhkim/vlbuild/internal/fsops"
	"github.com/danieljhkim/vlbuild/internal/hash"
	"github.com/danieljhkim/vlbuild/internal/nodes"
	"github.com/danieljhkim/vlbuild/internal/planner"
)

// Engine orchestrates build plan generation.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	logger *slog.Logger
}

// New creates a new Engine with the given dependencies. A nil logger
// discards all output.
func New(fs fsops.FS, hasher hash.Hasher, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		fs:     fs,
		hasher: hasher,
		logger: logger,
	}
}

// DocumentPath returns where the build plan for snap is written.
func DocumentPath(snap config.Snapshot) string {
	return filepath.Join(snap.MakeDir, document.FileName)
}

// render validates snap and produces the plan and its document.
func (e *Engine) render(snap config.Snapshot, files nodes.List) (*planner.BuildPlan, []byte, error) {
	if err := snap.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	plan := planner.New(snap, files)
	return plan, document.Render(plan), nil
}
