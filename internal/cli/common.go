package cli

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/vlbuild/internal/config"
	"github.com/danieljhkim/vlbuild/internal/engine"
	"github.com/danieljhkim/vlbuild/internal/fsops"
	"github.com/danieljhkim/vlbuild/internal/hash"
	"github.com/danieljhkim/vlbuild/internal/nodes"
)

// newLogger returns the diagnostic logger; --verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(logger *slog.Logger) *engine.Engine {
	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), logger)
}

// loadInputs resolves the compiler snapshot and generated-file list for cmd.
func loadInputs(cmd *cobra.Command, opts *globalOptions, logger *slog.Logger) (config.Snapshot, nodes.List, error) {
	snap, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Flags:      cmd.Flags(),
		Logger:     logger,
	})
	if err != nil {
		return config.Snapshot{}, nil, err
	}

	fs := fsops.NewRealFS()
	var files nodes.List
	switch {
	case opts.filesPath != "" && opts.scan:
		return config.Snapshot{}, nil, errors.New("--files and --scan are mutually exclusive")
	case opts.filesPath != "":
		files, err = nodes.LoadManifest(fs, opts.filesPath)
	case opts.scan:
		files, err = nodes.Scan(fs, snap.MakeDir)
	}
	if err != nil {
		return config.Snapshot{}, nil, err
	}

	logger.Debug("resolved generated files", slog.Int("count", len(files)))
	return snap, files, nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
