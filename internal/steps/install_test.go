package steps

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Architecture-Mechanism/bellos-setup/internal/config"
	"github.com/Architecture-Mechanism/bellos-setup/internal/system"
	"github.com/Architecture-Mechanism/bellos-setup/internal/ui"
)

// testSettings returns settings redirected into a temp directory, with the
// source written when content is non-nil.
func testSettings(t *testing.T, content []byte, sourceMode os.FileMode) *config.Settings {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := &config.Settings{
		SourcePath: filepath.Join(tmpDir, "executable", "bellos"),
		DestPath:   filepath.Join(tmpDir, "bin", "bellos"),
		DestMode:   0755,
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SourcePath), 0755); err != nil {
		t.Fatalf("Failed to create source directory: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DestPath), 0755); err != nil {
		t.Fatalf("Failed to create destination directory: %v", err)
	}

	if content != nil {
		if err := os.WriteFile(cfg.SourcePath, content, sourceMode); err != nil {
			t.Fatalf("Failed to write source executable: %v", err)
		}
	}

	return cfg
}

func TestRunInstallSuccess(t *testing.T) {
	content := []byte("#!/bin/bellos\necho installed\n")
	// Deliberately restrictive source bits: the destination must not
	// inherit them.
	cfg := testSettings(t, content, 0600)

	var out bytes.Buffer
	testUI := ui.NewWithWriter(&out)

	if err := RunInstall(cfg, system.NewFileSystem(), testUI); err != nil {
		t.Fatalf("RunInstall() error = %v", err)
	}

	got, err := os.ReadFile(cfg.DestPath)
	if err != nil {
		t.Fatalf("Failed to read installed file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Installed content = %q, want %q", got, content)
	}

	info, err := os.Stat(cfg.DestPath)
	if err != nil {
		t.Fatalf("Failed to stat installed file: %v", err)
	}
	if info.Mode().Perm() != os.FileMode(0755) {
		t.Errorf("Installed permissions = %04o, want 0755", info.Mode().Perm())
	}

	if !strings.Contains(out.String(), cfg.DestPath) {
		t.Errorf("Success output does not name destination %s:\n%s", cfg.DestPath, out.String())
	}
}

func TestRunInstallMissingSource(t *testing.T) {
	tests := []struct {
		name        string
		presetDest  []byte
		wantContent []byte
	}{
		{
			name:        "destination absent stays absent",
			presetDest:  nil,
			wantContent: nil,
		},
		{
			name:        "existing destination untouched",
			presetDest:  []byte("previous install"),
			wantContent: []byte("previous install"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSettings(t, nil, 0)

			if tt.presetDest != nil {
				if err := os.WriteFile(cfg.DestPath, tt.presetDest, 0755); err != nil {
					t.Fatalf("Failed to preset destination: %v", err)
				}
			}

			var out bytes.Buffer
			testUI := ui.NewWithWriter(&out)

			err := RunInstall(cfg, system.NewFileSystem(), testUI)
			if !errors.Is(err, ErrSourceMissing) {
				t.Fatalf("RunInstall() error = %v, want ErrSourceMissing", err)
			}

			if !strings.Contains(out.String(), cfg.SourcePath) {
				t.Errorf("Diagnostic does not name missing source %s:\n%s", cfg.SourcePath, out.String())
			}

			if tt.wantContent == nil {
				if _, err := os.Stat(cfg.DestPath); !os.IsNotExist(err) {
					t.Errorf("Destination should not exist, stat error = %v", err)
				}
				return
			}

			got, err := os.ReadFile(cfg.DestPath)
			if err != nil {
				t.Fatalf("Failed to read destination: %v", err)
			}
			if !bytes.Equal(got, tt.wantContent) {
				t.Errorf("Destination content = %q, want untouched %q", got, tt.wantContent)
			}
		})
	}
}

func TestRunInstallCopyFailure(t *testing.T) {
	cfg := testSettings(t, []byte("payload"), 0644)

	// Removing the destination directory makes the copy's open fail.
	if err := os.RemoveAll(filepath.Dir(cfg.DestPath)); err != nil {
		t.Fatalf("Failed to remove destination directory: %v", err)
	}

	var out bytes.Buffer
	testUI := ui.NewWithWriter(&out)

	err := RunInstall(cfg, system.NewFileSystem(), testUI)
	if !errors.Is(err, ErrCopyFailed) {
		t.Fatalf("RunInstall() error = %v, want ErrCopyFailed", err)
	}

	if !strings.Contains(out.String(), "Error copying file") {
		t.Errorf("Diagnostic missing copy failure message:\n%s", out.String())
	}
}

func TestRunInstallIdempotent(t *testing.T) {
	content := []byte("#!/bin/bellos\necho twice\n")
	cfg := testSettings(t, content, 0644)

	testUI := ui.NewWithWriter(&bytes.Buffer{})
	fs := system.NewFileSystem()

	for i := 0; i < 2; i++ {
		if err := RunInstall(cfg, fs, testUI); err != nil {
			t.Fatalf("RunInstall() run %d error = %v", i+1, err)
		}
	}

	got, err := os.ReadFile(cfg.DestPath)
	if err != nil {
		t.Fatalf("Failed to read installed file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Installed content after two runs = %q, want %q", got, content)
	}

	info, err := os.Stat(cfg.DestPath)
	if err != nil {
		t.Fatalf("Failed to stat installed file: %v", err)
	}
	if info.Mode().Perm() != os.FileMode(0755) {
		t.Errorf("Installed permissions after two runs = %04o, want 0755", info.Mode().Perm())
	}
}

func TestRunInstallOverwritesOldInstall(t *testing.T) {
	content := []byte("version two")
	cfg := testSettings(t, content, 0644)

	if err := os.WriteFile(cfg.DestPath, []byte("version one, somewhat longer"), 0700); err != nil {
		t.Fatalf("Failed to preset old install: %v", err)
	}

	testUI := ui.NewWithWriter(&bytes.Buffer{})
	if err := RunInstall(cfg, system.NewFileSystem(), testUI); err != nil {
		t.Fatalf("RunInstall() error = %v", err)
	}

	got, err := os.ReadFile(cfg.DestPath)
	if err != nil {
		t.Fatalf("Failed to read installed file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Installed content = %q, want %q", got, content)
	}
}

func TestRunInstallInvalidSettings(t *testing.T) {
	cfg := &config.Settings{SourcePath: "", DestPath: "/tmp/bellos", DestMode: 0755}

	testUI := ui.NewWithWriter(&bytes.Buffer{})
	if err := RunInstall(cfg, system.NewFileSystem(), testUI); err == nil {
		t.Error("RunInstall() expected error for invalid settings, got nil")
	}
}
