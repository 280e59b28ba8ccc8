// Package fs provides working-directory helpers.
package fs

import (
	"os"
	"path/filepath"

	"audiozip/internal/utils/logging"
)

// EmptyDir removes every direct entry inside dir (files, symlinks and
// subdirectories recursively) while leaving dir itself intact. Per-entry
// failures are swallowed so one stuck file cannot block the rest. A path
// that is not a directory is a no-op.
func EmptyDir(dir string) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.D(1, "Failed to read directory %q for cleanup: %v", dir, err)
		return
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(p); err != nil {
			logging.D(1, "Failed to remove %q during cleanup: %v", p, err)
		}
	}
}

// EnsureDir creates the directory (and parents) when absent.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
