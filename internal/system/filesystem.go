// Package system provides the privilege check and filesystem primitives
// used by the installer. All operations run in-process: the privilege gate
// guarantees the process is already root before anything here mutates the
// filesystem.
package system

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"syscall"
)

// compareChunkSize is the buffer size used when comparing file contents
const compareChunkSize = 64 * 1024

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// CopyFile copies the contents of src to dst, creating or truncating dst.
// The destination is left as-is on failure; callers that need exact
// permission bits must Chmod afterwards. Timestamp preservation is
// best-effort.
func (fs *FileSystem) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	r, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer r.Close()

	w, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", dst, err)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish writing %s: %w", dst, err)
	}

	// Mirror the source's modification time when we can; a failure here
	// does not invalidate the copy.
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())

	return nil
}

// Chmod changes the permissions of a file or directory
func (fs *FileSystem) Chmod(path string, perms os.FileMode) error {
	if err := os.Chmod(path, perms); err != nil {
		return fmt.Errorf("failed to chmod %s to %o: %w", path, perms, err)
	}
	return nil
}

// GetPermissions returns the permissions of a file or directory
func (fs *FileSystem) GetPermissions(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.Mode().Perm(), nil
}

// GetFileSize returns the size of a file in bytes
func (fs *FileSystem) GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return info.Size(), nil
}

// GetDiskUsage returns disk usage information for a path
func (fs *FileSystem) GetDiskUsage(path string) (total, used, free uint64, err error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to get disk usage for %s: %w", path, err)
	}

	// Available blocks * size per block = available space in bytes
	free = stat.Bavail * uint64(stat.Bsize)
	total = stat.Blocks * uint64(stat.Bsize)
	used = total - (stat.Bfree * uint64(stat.Bsize))

	return total, used, free, nil
}

// SameContent reports whether two files have byte-for-byte equal contents
func (fs *FileSystem) SameContent(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", a, err)
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", b, err)
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fa, err := os.Open(a)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", a, err)
	}
	defer fa.Close()

	fb, err := os.Open(b)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", b, err)
	}
	defer fb.Close()

	bufA := make([]byte, compareChunkSize)
	bufB := make([]byte, compareChunkSize)
	for {
		nA, errA := io.ReadFull(fa, bufA)
		nB, errB := io.ReadFull(fb, bufB)

		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}

		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			// Sizes matched up front, so both readers end together.
			return true, nil
		}
		if errA != nil {
			return false, fmt.Errorf("failed to read %s: %w", a, errA)
		}
		if errB != nil {
			return false, fmt.Errorf("failed to read %s: %w", b, errB)
		}
	}
}
