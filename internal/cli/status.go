package cli

import (
	"github.com/Architecture-Mechanism/bellos-setup/internal/steps"
)

// ReportStatus prints a gathered install status in human-readable form
func ReportStatus(ctx *SetupContext, st *steps.InstallStatus) {
	ctx.UI.Header("Install Status")

	if st.Installed {
		ctx.UI.Successf("bellos is installed at %s", ctx.Settings.DestPath)
		ctx.UI.Infof("Permissions: %04o", st.Mode)
		ctx.UI.Infof("Size: %d bytes", st.Size)
	} else {
		ctx.UI.Infof("bellos is not installed at %s", ctx.Settings.DestPath)
	}

	if st.SourcePresent {
		ctx.UI.Infof("Source executable present at %s", ctx.Settings.SourcePath)
	} else {
		ctx.UI.Warningf("Source executable not found at %s", ctx.Settings.SourcePath)
	}

	if st.Installed && st.SourcePresent {
		if st.ContentMatches {
			ctx.UI.Success("Installed file matches the source executable")
		} else {
			ctx.UI.Warning("Installed file differs from the source executable")
			ctx.UI.Info("Run the installer again to update it")
		}
	}
}
