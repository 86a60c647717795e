// Package steps implements the installer's operations: the privileged
// install itself, the read-only environment check, and the status report.
// Callers are expected to have passed the privilege gate before running
// anything here that writes.
package steps

import (
	"errors"
	"fmt"

	"github.com/Architecture-Mechanism/bellos-setup/internal/config"
	"github.com/Architecture-Mechanism/bellos-setup/internal/system"
	"github.com/Architecture-Mechanism/bellos-setup/internal/ui"
)

var (
	// ErrSourceMissing indicates the prebuilt executable was not found.
	// The destination is guaranteed untouched when this is returned.
	ErrSourceMissing = errors.New("source executable not found")

	// ErrCopyFailed indicates the copy or the follow-up chmod failed.
	// A partially written destination file is not cleaned up.
	ErrCopyFailed = errors.New("install copy failed")
)

// RunInstall copies the bellos executable into place and marks it
// executable. The source existence check runs before anything is written,
// so a missing source leaves no side effects. The permission bits are set
// only after the copy itself succeeded; on any copy failure the diagnostic
// includes the underlying error and the destination is left as the failed
// copy left it.
func RunInstall(cfg *config.Settings, fs *system.FileSystem, out *ui.UI) error {
	if err := cfg.Validate(); err != nil {
		out.Errorf("Invalid install settings: %v", err)
		return fmt.Errorf("invalid install settings: %w", err)
	}

	exists, err := fs.FileExists(cfg.SourcePath)
	if err != nil {
		out.Errorf("Error: cannot access %s: %v", cfg.SourcePath, err)
		return fmt.Errorf("%w: %s", ErrSourceMissing, cfg.SourcePath)
	}
	if !exists {
		out.Errorf("Error: %s not found.", cfg.SourcePath)
		return fmt.Errorf("%w: %s", ErrSourceMissing, cfg.SourcePath)
	}

	if err := fs.CopyFile(cfg.SourcePath, cfg.DestPath); err != nil {
		out.Errorf("Error copying file: %v", err)
		return fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	if err := fs.Chmod(cfg.DestPath, cfg.DestMode); err != nil {
		out.Errorf("Error setting permissions on %s: %v", cfg.DestPath, err)
		return fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	out.Successf("Bellos has been copied to %s", cfg.DestPath)
	out.Success("Bellos has been set up successfully.")
	return nil
}
