package steps

import (
	"fmt"

	"github.com/Architecture-Mechanism/bellos-setup/internal/config"
	"github.com/Architecture-Mechanism/bellos-setup/internal/system"
	"github.com/Architecture-Mechanism/bellos-setup/internal/ui"
)

// RunCheck verifies the environment an install would run in without
// mutating anything: privilege, source artifact, destination directory,
// and free space on the destination filesystem.
func RunCheck(cfg *config.Settings, fs *system.FileSystem, priv system.PrivilegeChecker, out *ui.UI) error {
	out.Header("Installation Environment Check")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid install settings: %w", err)
	}

	hasErrors := false
	errorMessages := []string{}

	out.Step("Checking Privileges")
	if priv.IsElevated() {
		out.Success("Running with superuser privileges")
	} else {
		out.Error("Not running with superuser privileges")
		out.Info("The install itself must be run with sudo")
		hasErrors = true
		errorMessages = append(errorMessages, "superuser privileges required for install")
	}

	out.Step("Checking Source Executable")
	srcExists, err := fs.FileExists(cfg.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to check source %s: %w", cfg.SourcePath, err)
	}
	if srcExists {
		size, err := fs.GetFileSize(cfg.SourcePath)
		if err != nil {
			out.Warning(fmt.Sprintf("Could not determine size of %s: %v", cfg.SourcePath, err))
		} else {
			out.Successf("Found %s (%d bytes)", cfg.SourcePath, size)
		}
	} else {
		out.Errorf("%s not found", cfg.SourcePath)
		out.Info("Build bellos first, or run the installer from the repository root")
		hasErrors = true
		errorMessages = append(errorMessages, fmt.Sprintf("source executable %s not found", cfg.SourcePath))
	}

	out.Step("Checking Destination Directory")
	destDir := cfg.DestDir()
	dirExists, err := fs.DirectoryExists(destDir)
	if err != nil {
		return fmt.Errorf("failed to check destination directory %s: %w", destDir, err)
	}
	if dirExists {
		out.Successf("Destination directory %s exists", destDir)

		total, _, free, err := fs.GetDiskUsage(destDir)
		if err != nil {
			out.Warning(fmt.Sprintf("Could not determine free space on %s: %v", destDir, err))
		} else {
			out.Infof("Free space on destination filesystem: %d of %d bytes", free, total)
		}
	} else {
		out.Errorf("Destination directory %s does not exist", destDir)
		hasErrors = true
		errorMessages = append(errorMessages, fmt.Sprintf("destination directory %s does not exist", destDir))
	}

	out.Print("")
	out.Separator()

	if hasErrors {
		out.Error("Environment check FAILED")
		for i, msg := range errorMessages {
			out.Errorf("%d. %s", i+1, msg)
		}
		return fmt.Errorf("environment check failed with %d error(s)", len(errorMessages))
	}

	out.Success("Environment is ready for installation")
	return nil
}
