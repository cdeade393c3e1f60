package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/vlbuild/internal/config"
	"github.com/danieljhkim/vlbuild/internal/fsops"
	"github.com/danieljhkim/vlbuild/internal/nodes"
)

func newScanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Print a generated-file manifest for a directory",
		Long: `Classify the files in dir (default: the make directory) and print them as
a manifest suitable for --files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

			dir := ""
			if len(args) > 0 {
				dir = args[0]
			} else {
				snap, err := config.Load(config.LoadOptions{
					ConfigFile: opts.configFile,
					Flags:      cmd.Flags(),
					Logger:     logger,
				})
				if err != nil {
					return err
				}
				dir = snap.MakeDir
			}

			files, err := nodes.Scan(fsops.NewRealFS(), dir)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), nodes.ToManifest(files))
			}

			data, err := nodes.MarshalManifest(files)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
