package main

import (
	"github.com/Architecture-Mechanism/bellos-setup/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the installation environment",
	Long: `Verify the environment an install would run in: privileges,
source executable, destination directory, and free disk space. Read-only;
exits non-zero when a required condition is not met.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cli.NewSetupContext()
	return ctx.Check()
}
