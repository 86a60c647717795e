// Package cli provides the command-line interface layer for the bellos
// installer: shared setup context, the privilege gate, and the interactive
// menu. It bridges user commands to the underlying install steps.
package cli

import (
	"github.com/Architecture-Mechanism/bellos-setup/internal/config"
	"github.com/Architecture-Mechanism/bellos-setup/internal/steps"
	"github.com/Architecture-Mechanism/bellos-setup/internal/system"
	"github.com/Architecture-Mechanism/bellos-setup/internal/ui"
)

// SetupContext holds all dependencies needed for installer operations
type SetupContext struct {
	Settings  *config.Settings
	UI        *ui.UI
	FS        *system.FileSystem
	Privilege system.PrivilegeChecker
}

// NewSetupContext creates a new SetupContext with all dependencies
// initialized to their defaults
func NewSetupContext() *SetupContext {
	return NewSetupContextWithOptions(false)
}

// NewSetupContextWithOptions creates a new SetupContext with custom options
func NewSetupContextWithOptions(nonInteractive bool) *SetupContext {
	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	return &SetupContext{
		Settings:  config.Default(),
		UI:        uiInstance,
		FS:        system.NewFileSystem(),
		Privilege: system.NewPrivilegeChecker(),
	}
}

// EnsurePrivileged evaluates the privilege predicate once at the boundary,
// before any filesystem operation is attempted. On failure it prints the
// instructional message and returns system.ErrPrivilege; nothing has been
// written at that point.
func (ctx *SetupContext) EnsurePrivileged() error {
	if ctx.Privilege.IsElevated() {
		return nil
	}

	ctx.UI.Error("This tool must be run with sudo privileges.")
	ctx.UI.Info("Re-run it as: sudo bellos-setup")
	return system.ErrPrivilege
}

// Install runs the privilege gate followed by the install step
func (ctx *SetupContext) Install() error {
	if err := ctx.EnsurePrivileged(); err != nil {
		return err
	}
	return steps.RunInstall(ctx.Settings, ctx.FS, ctx.UI)
}

// Check runs the read-only environment diagnostics
func (ctx *SetupContext) Check() error {
	return steps.RunCheck(ctx.Settings, ctx.FS, ctx.Privilege, ctx.UI)
}
