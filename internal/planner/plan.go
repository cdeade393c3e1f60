package planner

import (
	"github.com/danieljhkim/vlbuild/internal/config"
	"github.com/danieljhkim/vlbuild/internal/nodes"
)

// Mode constants for the support library build.
const (
	ModeCPP     = "cpp"
	ModeSystemC = "systemc"
)

// SystemCMacro is the macro defined when building for SystemC.
const SystemCMacro = "VM_SC=1"

// Support library sources that are always compiled.
var baseSources = []string{"verilated.cpp", "verilated_threads.cpp"}

// BuildPlan is everything the build plan document describes.
type BuildPlan struct {
	// VerilatorRoot is the support library installation root
	VerilatorRoot string `json:"verilator_root"`

	// Mode is ModeSystemC or ModeCPP
	Mode string `json:"mode"`

	// Features is the ordered list of enabled feature tags
	Features []string `json:"features"`

	// SupportSources is the ordered list of support library sources
	SupportSources []string `json:"support_sources"`

	// Macros is the list of preprocessor macros for both library and model
	Macros []string `json:"macros"`

	// Threads is the model thread count
	Threads int `json:"threads"`

	// Trace is "fst", "vcd", or "" when tracing is disabled
	Trace string `json:"trace"`

	// Timing is true when timing support is compiled in
	Timing bool `json:"timing"`

	// Coverage is true when coverage support is compiled in
	Coverage bool `json:"coverage"`

	// Prefix is the generated model prefix
	Prefix string `json:"prefix"`

	// ModelSources is the ordered list of generated sources (directory stripped)
	ModelSources []string `json:"model_sources"`

	// ModelHeaders is the ordered list of generated headers (directory stripped)
	ModelHeaders []string `json:"model_headers"`
}

// New builds the plan for one snapshot and descriptor list.
func New(snap config.Snapshot, files nodes.List) *BuildPlan {
	sources, headers := Classify(files)

	mode := ModeCPP
	if snap.SystemC {
		mode = ModeSystemC
	}

	return &BuildPlan{
		VerilatorRoot:  snap.VerilatorRoot,
		Mode:           mode,
		Features:       Features(snap),
		SupportSources: CompileSources(snap),
		Macros:         CompileMacros(snap),
		Threads:        snap.Threads,
		Trace:          snap.TraceFormat(),
		Timing:         snap.Timing,
		Coverage:       snap.Coverage,
		Prefix:         snap.Prefix,
		ModelSources:   sources,
		ModelHeaders:   headers,
	}
}

// option pairs a snapshot flag with the feature tag and support source it enables.
type option struct {
	enabled func(config.Snapshot) bool
	feature func(config.Snapshot) string
	source  func(config.Snapshot) string
}

func fixed(s string) func(config.Snapshot) string {
	return func(config.Snapshot) string { return s }
}

// options is in priority order; both Features and CompileSources follow it.
var options = []option{
	{
		enabled: func(s config.Snapshot) bool { return s.DPI },
		feature: fixed("dpi"),
		source:  fixed("verilated_dpi.cpp"),
	},
	{
		enabled: func(s config.Snapshot) bool { return s.VPI },
		feature: fixed("vpi"),
		source:  fixed("verilated_vpi.cpp"),
	},
	{
		enabled: func(s config.Snapshot) bool { return s.Savable },
		feature: fixed("save"),
		source:  fixed("verilated_save.cpp"),
	},
	{
		enabled: func(s config.Snapshot) bool { return s.Coverage },
		feature: fixed("cov"),
		source:  fixed("verilated_cov.cpp"),
	},
	{
		enabled: func(s config.Snapshot) bool { return s.Trace },
		feature: func(s config.Snapshot) string {
			if s.TraceFST {
				return "fst_c"
			}
			return "vcd_c"
		},
		source: func(s config.Snapshot) string { return s.TraceSourceBase + "_c.cpp" },
	},
	{
		enabled: func(s config.Snapshot) bool { return s.ProbDist },
		feature: fixed("probdist"),
		source:  fixed("verilated_probdist.cpp"),
	},
	{
		enabled: func(s config.Snapshot) bool { return s.Timing },
		feature: fixed("timing"),
		source:  fixed("verilated_timing.cpp"),
	},
	{
		enabled: func(s config.Snapshot) bool { return s.Profiler },
		feature: fixed("profiler"),
		source:  fixed("verilated_profiler.cpp"),
	},
}

// Features returns the enabled feature tags in priority order.
func Features(snap config.Snapshot) []string {
	features := []string{}
	for _, opt := range options {
		if opt.enabled(snap) {
			features = append(features, opt.feature(snap))
		}
	}
	return features
}

// CompileSources returns the support library sources to compile: the two
// base sources followed by one source per enabled option, in priority order.
func CompileSources(snap config.Snapshot) []string {
	sources := append([]string{}, baseSources...)
	for _, opt := range options {
		if opt.enabled(snap) {
			sources = append(sources, opt.source(snap))
		}
	}
	return sources
}

// CompileMacros returns the macros shared by the support library and model.
func CompileMacros(snap config.Snapshot) []string {
	if snap.SystemC {
		return []string{SystemCMacro}
	}
	return []string{}
}

// Classify splits the C/C++ descriptors into sources and headers in one
// pass, keeping registration order and stripping directories. Other kinds
// are skipped.
func Classify(files nodes.List) (sources, headers []string) {
	sources = []string{}
	headers = []string{}
	for _, f := range files {
		if f.Kind() != nodes.CFileKind {
			continue
		}
		sf, ok := f.(nodes.SourceFile)
		if !ok {
			continue
		}
		if sf.IsSource() {
			sources = append(sources, nodes.NonDir(sf.Name()))
		} else {
			headers = append(headers, nodes.NonDir(sf.Name()))
		}
	}
	return sources, headers
}
