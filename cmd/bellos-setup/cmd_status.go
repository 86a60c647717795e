package main

import (
	"fmt"

	"github.com/Architecture-Mechanism/bellos-setup/internal/cli"
	"github.com/Architecture-Mechanism/bellos-setup/internal/steps"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show install status",
	Long: `Display whether bellos is installed, its permissions and size,
and whether it matches the local source executable. Never modifies the
filesystem and does not require privileges.`,
	Args: cobra.NoArgs,
	RunE: showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx := cli.NewSetupContext()

	st, err := steps.GatherStatus(ctx.Settings, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to gather install status: %w", err)
	}

	cli.ReportStatus(ctx, st)
	return nil
}
