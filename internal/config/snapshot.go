// Package config holds the compiler configuration snapshot read by vlbuild.
//
// A Snapshot is a point-in-time, read-only view of the compiler options that
// influence the build plan. It is loaded once (see Load) from defaults, an
// optional config file, the environment and command-line flags, and is then
// passed by value into the planner and engine for a single emission.
package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultPrefix is the model prefix used when none is configured.
	DefaultPrefix = "Vtop"

	// DefaultMakeDir is the output directory used when none is configured.
	DefaultMakeDir = "obj_dir"

	traceBaseFST = "verilated_fst"
	traceBaseVCD = "verilated_vcd"
)

// Snapshot is the compiler configuration consumed by the build plan.
type Snapshot struct {
	// SystemC is true when the model is generated for SystemC
	SystemC bool `mapstructure:"systemc" json:"systemc"`

	// DPI is true when the design imports or exports DPI functions
	DPI bool `mapstructure:"dpi" json:"dpi"`

	// VPI enables the VPI support library
	VPI bool `mapstructure:"vpi" json:"vpi"`

	// Savable enables save/restore support
	Savable bool `mapstructure:"savable" json:"savable"`

	// Coverage enables coverage collection
	Coverage bool `mapstructure:"coverage" json:"coverage"`

	// Trace enables waveform tracing
	Trace bool `mapstructure:"trace" json:"trace"`

	// TraceFST selects FST over VCD when Trace is set
	TraceFST bool `mapstructure:"trace_fst" json:"trace_fst"`

	// ProbDist is true when the design uses $dist_* probabilistic functions
	ProbDist bool `mapstructure:"probdist" json:"probdist"`

	// Timing enables timing (delay/event) support
	Timing bool `mapstructure:"timing" json:"timing"`

	// Profiler enables the execution profiler
	Profiler bool `mapstructure:"profiler" json:"profiler"`

	// Threads is the number of model threads (0 means unthreaded)
	Threads int `mapstructure:"threads" json:"threads"`

	// Prefix is the generated model prefix (e.g. "Vtop")
	Prefix string `mapstructure:"prefix" json:"prefix"`

	// TraceSourceBase is the support library trace base name, without "_c.cpp"
	TraceSourceBase string `mapstructure:"trace_source_base" json:"trace_source_base"`

	// MakeDir is the directory receiving generated output and vl_build.json
	MakeDir string `mapstructure:"mdir" json:"mdir"`

	// VerilatorRoot is the installation root of the support library
	VerilatorRoot string `mapstructure:"verilator_root" json:"verilator_root"`
}

// Normalize fills in derived defaults. It returns a copy; the receiver is
// left untouched.
func (s Snapshot) Normalize() Snapshot {
	if s.Prefix == "" {
		s.Prefix = DefaultPrefix
	}
	if strings.TrimSpace(s.MakeDir) == "" {
		s.MakeDir = DefaultMakeDir
	}
	if s.TraceSourceBase == "" {
		if s.TraceFST {
			s.TraceSourceBase = traceBaseFST
		} else {
			s.TraceSourceBase = traceBaseVCD
		}
	}
	return s
}

// Validate checks that the snapshot can produce a build plan.
func (s Snapshot) Validate() error {
	if s.Threads < 0 {
		return fmt.Errorf("%w: threads must be >= 0, got %d", ErrInvalidConfig, s.Threads)
	}
	if strings.TrimSpace(s.MakeDir) == "" {
		return fmt.Errorf("%w: make directory is empty", ErrInvalidConfig)
	}
	if strings.ContainsAny(s.TraceSourceBase, `/\`) {
		return fmt.Errorf("%w: trace source base %q must be a bare file name", ErrInvalidConfig, s.TraceSourceBase)
	}
	return nil
}

// TraceFormat returns "fst" or "vcd" when tracing is enabled, "" otherwise.
func (s Snapshot) TraceFormat() string {
	if !s.Trace {
		return ""
	}
	if s.TraceFST {
		return "fst"
	}
	return "vcd"
}
