package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/vlbuild/internal/engine"
	"github.com/danieljhkim/vlbuild/internal/planner"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the build plan without writing it",
		Long: `Render the build plan for the current configuration and print the
document exactly as emit would write it. With --summary, print the
enabled features and model files instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			snap, files, err := loadInputs(cmd, opts, logger)
			if err != nil {
				return err
			}

			result, err := newEngine(logger).Show(context.Background(), &engine.ShowRequest{
				Snapshot: snap,
				Files:    files,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case opts.jsonOutput:
				return outputJSON(out, result)
			case summary:
				printPlanSummary(out, result.Path, result.Plan)
				return nil
			}
			_, err = out.Write(result.Document)
			return err
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Print a readable summary instead of the document")
	return cmd
}

// printPlanSummary lists what the plan compiles, grouped like the document.
func printPlanSummary(w io.Writer, path string, plan *planner.BuildPlan) {
	PrintLabelValue(w, "Path", path)

	PrintSection(w, "Support library")
	PrintLabelValue(w, "Mode", plan.Mode)
	printItems(w, "Features", plan.Features)
	printItems(w, "Sources", plan.SupportSources)

	PrintSection(w, "Model "+plan.Prefix)
	printItems(w, "Sources", plan.ModelSources)
	printItems(w, "Headers", plan.ModelHeaders)
}

func printItems(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		PrintLabelValue(w, label, "none")
		return
	}
	PrintLabelValue(w, label, PrintCount(len(items), "item", "items"))
	PrintList(w, items, 2)
}
