package steps

import (
	"fmt"
	"os"

	"github.com/Architecture-Mechanism/bellos-setup/internal/config"
	"github.com/Architecture-Mechanism/bellos-setup/internal/system"
)

// InstallStatus describes the observed state of an installation
type InstallStatus struct {
	// Installed is true when the destination file exists
	Installed bool

	// Mode and Size describe the installed file; only meaningful when
	// Installed is true
	Mode os.FileMode
	Size int64

	// SourcePresent is true when the local source artifact exists
	SourcePresent bool

	// ContentMatches is true when both files exist and their contents
	// are byte-for-byte equal
	ContentMatches bool
}

// GatherStatus inspects the source and destination paths without mutating
// anything. It never requires privilege.
func GatherStatus(cfg *config.Settings, fs *system.FileSystem) (*InstallStatus, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid install settings: %w", err)
	}

	st := &InstallStatus{}

	installed, err := fs.FileExists(cfg.DestPath)
	if err != nil {
		return nil, err
	}
	st.Installed = installed

	if installed {
		mode, err := fs.GetPermissions(cfg.DestPath)
		if err != nil {
			return nil, err
		}
		st.Mode = mode

		size, err := fs.GetFileSize(cfg.DestPath)
		if err != nil {
			return nil, err
		}
		st.Size = size
	}

	srcPresent, err := fs.FileExists(cfg.SourcePath)
	if err != nil {
		return nil, err
	}
	st.SourcePresent = srcPresent

	if installed && srcPresent {
		same, err := fs.SameContent(cfg.SourcePath, cfg.DestPath)
		if err != nil {
			return nil, err
		}
		st.ContentMatches = same
	}

	return st, nil
}
