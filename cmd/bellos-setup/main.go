package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Architecture-Mechanism/bellos-setup/internal/cli"
	"github.com/Architecture-Mechanism/bellos-setup/internal/system"
	"github.com/Architecture-Mechanism/bellos-setup/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bellos-setup",
	Short: "Installer for the bellos shell",
	Long: `Installs the prebuilt bellos shell executable into /usr/local/bin.

Run without arguments to perform the installation. The tool must be
invoked with superuser privileges (sudo); it copies the executable from
the repository's executable/ directory, overwrites any previous install,
and marks the result executable.

Subcommands provide read-only status and environment checks, an
interactive menu, and version information.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInstall,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface for the installer.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx := cli.NewSetupContext()
	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The privilege gate already printed its instructional
		// message; everything else gets the standard error line.
		if !errors.Is(err, system.ErrPrivilege) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
