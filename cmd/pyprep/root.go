package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pyprep/internal/config"
	"github.com/conn-castle/pyprep/internal/install"
	"github.com/conn-castle/pyprep/internal/messages"
	"github.com/conn-castle/pyprep/internal/plan"
	"github.com/conn-castle/pyprep/internal/terminal"
)

var installSystem install.System = install.RealSystem{}

func newRootCmd() *cobra.Command {
	var dryRun bool
	var quiet bool
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(config.DefaultPath(cwd), os.LookupEnv)
			if err != nil {
				return err
			}
			p := plan.Build(*cfg)
			if dryRun {
				install.DryRun(p, cmd.OutOrStdout())
				return nil
			}
			stderr := cmd.ErrOrStderr()
			return install.Run(cmd.Context(), p, install.Options{
				System: installSystem,
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: stderr,
				Quiet:  quiet,
				Color:  terminal.ColorEnabled(stderr, os.LookupEnv),
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RootDryRunFlag)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, messages.RootQuietFlag)
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	return cmd
}
