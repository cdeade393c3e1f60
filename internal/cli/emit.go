package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/vlbuild/internal/engine"
)

func newEmitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "emit",
		Short: "Write vl_build.json into the make directory",
		Long: `Write the build plan document to <mdir>/vl_build.json, replacing any
existing file. The command fails if the document cannot be created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			snap, files, err := loadInputs(cmd, opts, logger)
			if err != nil {
				return err
			}

			eng := newEngine(logger)
			result, err := eng.Emit(context.Background(), &engine.EmitRequest{
				Snapshot: snap,
				Files:    files,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, result)
			}

			PrintSuccess(out, fmt.Sprintf("Wrote build plan (%s)", PrintCount(result.BytesWritten, "byte", "bytes")))
			PrintLabelValue(out, "Path", result.Path)
			PrintLabelValue(out, "Digest", result.Digest)
			PrintLabelValue(out, "Model sources", fmt.Sprint(len(result.Plan.ModelSources)))
			PrintLabelValue(out, "Model headers", fmt.Sprint(len(result.Plan.ModelHeaders)))
			if result.WriteErr != nil {
				PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("document may be incomplete: %v", result.WriteErr))
			}
			return nil
		},
	}
}
