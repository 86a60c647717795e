package cli

import (
	"errors"
	"fmt"

	"github.com/Architecture-Mechanism/bellos-setup/internal/steps"
	"github.com/Architecture-Mechanism/bellos-setup/pkg/version"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu provides an interactive menu interface
type Menu struct {
	ctx *SetupContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *SetupContext) *Menu {
	return &Menu{ctx: ctx}
}

var menuOptions = []string{
	"Install bellos",
	"Show install status",
	"Check environment",
	"Show version",
	"Exit",
}

// Show displays the main menu and handles user input
func (m *Menu) Show() error {
	if m.ctx.UI.IsNonInteractive() {
		return fmt.Errorf("menu is not available in non-interactive mode")
	}

	m.ctx.UI.Header("Bellos Setup")
	m.ctx.UI.Info("Installer for the bellos shell executable")

	for {
		m.ctx.UI.Print("")
		choice, err := m.ctx.UI.PromptSelect("What would you like to do?", menuOptions)
		if err != nil {
			return err
		}

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(fmt.Sprintf("%v", err))
		}
	}
}

// handleChoice dispatches a menu selection
func (m *Menu) handleChoice(choice int) error {
	switch choice {
	case 0:
		err := m.ctx.Install()
		if errors.Is(err, steps.ErrSourceMissing) || errors.Is(err, steps.ErrCopyFailed) {
			// Already reported on the console; keep the menu open.
			return nil
		}
		return err
	case 1:
		return m.showStatus()
	case 2:
		return m.ctx.Check()
	case 3:
		m.ctx.UI.Print(version.Info())
		return nil
	case 4:
		return ErrExit
	default:
		return fmt.Errorf("unknown menu choice: %d", choice)
	}
}

func (m *Menu) showStatus() error {
	st, err := steps.GatherStatus(m.ctx.Settings, m.ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to gather install status: %w", err)
	}

	ReportStatus(m.ctx, st)
	return nil
}
