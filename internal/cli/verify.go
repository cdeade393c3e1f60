package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/vlbuild/internal/engine"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that vl_build.json matches the current configuration",
		Long: `Render the build plan for the current configuration and compare it with
the document in the make directory. Exits non-zero when the document is
missing or differs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			snap, files, err := loadInputs(cmd, opts, logger)
			if err != nil {
				return err
			}

			result, err := newEngine(logger).Verify(context.Background(), &engine.VerifyRequest{
				Snapshot: snap,
				Files:    files,
			})
			out := cmd.OutOrStdout()
			if opts.jsonOutput && result != nil {
				if jerr := outputJSON(out, result); jerr != nil {
					return jerr
				}
				return err
			}

			switch {
			case errors.Is(err, engine.ErrNotFound):
				PrintError(out, "Build plan not found")
				PrintLabelValue(out, "Path", result.Path)
				return err
			case errors.Is(err, engine.ErrDrift):
				PrintWarning(out, "Build plan is out of date")
				PrintLabelValue(out, "Path", result.Path)
				PrintLabelValue(out, "Expected", result.ExpectedDigest)
				PrintLabelValue(out, "Actual", result.ActualDigest)
				return err
			case err != nil:
				return err
			}

			PrintSuccess(out, "Build plan is up to date")
			PrintLabelValue(out, "Path", result.Path)
			return nil
		},
	}
}
