package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment overrides (VLBUILD_THREADS, ...).
	EnvPrefix = "VLBUILD"

	// DefaultConfigName is the config file searched for in the working
	// directory when no explicit file is given.
	DefaultConfigName = "vlbuild"
)

// flagKeys maps command-line flag names to snapshot keys.
var flagKeys = map[string]string{
	"mdir":           "mdir",
	"prefix":         "prefix",
	"threads":        "threads",
	"verilator-root": "verilator_root",
	"systemc":        "systemc",
	"trace":          "trace",
	"trace-fst":      "trace_fst",
	"coverage":       "coverage",
	"timing":         "timing",
}

// LoadOptions controls where Load reads the snapshot from.
type LoadOptions struct {
	// ConfigFile is an explicit config file path (yaml, json or toml)
	ConfigFile string

	// Flags is the flag set whose changed flags override every other source
	Flags *pflag.FlagSet

	// Logger receives debug output about the sources used; may be nil
	Logger *slog.Logger
}

// Load builds a Snapshot from defaults, config file, environment and flags,
// in increasing order of precedence. The result is normalized and validated.
func Load(opts LoadOptions) (Snapshot, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.ConfigFile != "" {
			return Snapshot{}, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Debug("no config file found, using defaults/env/flags")
	} else {
		logger.Debug("using config file", slog.String("path", v.ConfigFileUsed()))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("verilator_root", EnvPrefix+"_VERILATOR_ROOT", "VERILATOR_ROOT"); err != nil {
		return Snapshot{}, fmt.Errorf("failed to bind VERILATOR_ROOT: %w", err)
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Snapshot{}, fmt.Errorf("error binding flag '--%s': %w", name, err)
			}
		}
	}

	var snap Snapshot
	if err := v.Unmarshal(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	snap = snap.Normalize()
	if err := snap.Validate(); err != nil {
		return Snapshot{}, err
	}

	logger.Debug("loaded compiler snapshot",
		slog.String("mdir", snap.MakeDir),
		slog.String("prefix", snap.Prefix),
		slog.Int("threads", snap.Threads))
	return snap, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper) {
	for _, key := range []string{
		"systemc", "dpi", "vpi", "savable", "coverage", "trace",
		"trace_fst", "probdist", "timing", "profiler",
	} {
		v.SetDefault(key, false)
	}
	v.SetDefault("threads", 0)
	v.SetDefault("prefix", DefaultPrefix)
	v.SetDefault("trace_source_base", "")
	v.SetDefault("mdir", DefaultMakeDir)
	v.SetDefault("verilator_root", "")
}
