package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// globalOptions holds flags shared by every command of one root.
type globalOptions struct {
	jsonOutput bool
	verbose    bool

	configFile string
	filesPath  string
	scan       bool
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// newRootCmd builds the vlbuild command tree.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "vlbuild",
		Version: version,
		Short:   "Build plan generator for verilated models",
		Long: `vlbuild writes vl_build.json, the build plan for a verilated model.

The plan lists the support library sources and features to compile, the
generated model sources and headers, and the macros both need, so downstream
build tooling does not have to re-derive them from compiler flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	pf.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	pf.StringVarP(&opts.configFile, "config", "c", "", "Compiler snapshot file (yaml, json or toml)")
	pf.StringVar(&opts.filesPath, "files", "", "Generated-file manifest (yaml)")
	pf.BoolVar(&opts.scan, "scan", false, "Classify the files found in the make directory instead of reading a manifest")

	// Snapshot overrides, bound to config keys in config.Load
	pf.String("mdir", "", "Make directory receiving vl_build.json")
	pf.String("prefix", "", "Generated model prefix")
	pf.Int("threads", 0, "Model thread count")
	pf.String("verilator-root", "", "Support library root (default $VERILATOR_ROOT)")
	pf.Bool("systemc", false, "Build for SystemC")
	pf.Bool("trace", false, "Enable waveform tracing")
	pf.Bool("trace-fst", false, "Trace in FST instead of VCD")
	pf.Bool("coverage", false, "Enable coverage")
	pf.Bool("timing", false, "Enable timing support")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "build-plan",
		Title: "Build Plan:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	for _, cmd := range []*cobra.Command{
		newEmitCmd(opts),
		newShowCmd(opts),
		newVerifyCmd(opts),
		newScanCmd(opts),
	} {
		cmd.GroupID = "build-plan"
		rootCmd.AddCommand(cmd)
	}

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the vlbuild CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				target = cmd.Root()
			}
			_ = target.Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for vlbuild for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	rootCmd.AddCommand(completionCmd)

	return rootCmd
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// Execute executes the root command.
func Execute() error {
	return newRootCmd().Execute()
}
