package main

import (
	"errors"

	"github.com/Architecture-Mechanism/bellos-setup/internal/cli"
	"github.com/Architecture-Mechanism/bellos-setup/internal/steps"
	"github.com/spf13/cobra"
)

var (
	installSource string
	installDest   string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the bellos executable",
	Long: `Copy the prebuilt bellos executable into the system binary
directory and mark it executable. Requires superuser privileges.

The source and destination default to executable/bellos and
/usr/local/bin/bellos; both can be overridden for testing or
non-standard layouts.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installSource, "source", "", "Path of the executable to install")
	installCmd.Flags().StringVar(&installDest, "dest", "", "Path the executable is installed as")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cli.NewSetupContext()

	if installSource != "" {
		ctx.Settings.SourcePath = installSource
	}
	if installDest != "" {
		ctx.Settings.DestPath = installDest
	}

	err := ctx.Install()
	if errors.Is(err, steps.ErrSourceMissing) || errors.Is(err, steps.ErrCopyFailed) {
		// Already reported on the console. These are soft failures:
		// the process exits 0, only the privilege failure exits 1.
		return nil
	}
	return err
}
