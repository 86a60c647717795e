// Package config defines the installation settings for the bellos
// installer. There is no persistent configuration: the settings exist as
// an explicit structure so the paths can be redirected in tests instead of
// living as literals inside the install logic.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultSourcePath is where the prebuilt bellos executable is
	// expected, relative to the invocation directory.
	DefaultSourcePath = "executable/bellos"

	// DefaultDestPath is the system location bellos is installed to.
	DefaultDestPath = "/usr/local/bin/bellos"

	// DefaultDestMode is the permission bits applied to the installed
	// executable after a successful copy.
	DefaultDestMode = os.FileMode(0755)
)

// Settings holds the source and destination paths for an installation
type Settings struct {
	// SourcePath is the prebuilt executable to install
	SourcePath string

	// DestPath is the file the executable is installed as
	DestPath string

	// DestMode is applied to DestPath after a successful copy,
	// regardless of the source file's own permission bits
	DestMode os.FileMode
}

// Default returns settings pointing at the standard bellos paths
func Default() *Settings {
	return &Settings{
		SourcePath: DefaultSourcePath,
		DestPath:   DefaultDestPath,
		DestMode:   DefaultDestMode,
	}
}

// Validate checks that the settings describe a usable installation
func (s *Settings) Validate() error {
	if s.SourcePath == "" {
		return fmt.Errorf("source path cannot be empty")
	}

	if s.DestPath == "" {
		return fmt.Errorf("destination path cannot be empty")
	}

	if !filepath.IsAbs(s.DestPath) {
		return fmt.Errorf("destination path must be absolute: %s", s.DestPath)
	}

	if s.DestMode == 0 {
		return fmt.Errorf("destination mode cannot be zero")
	}

	return nil
}

// DestDir returns the directory the executable is installed into
func (s *Settings) DestDir() string {
	return filepath.Dir(s.DestPath)
}
