package plugin

import (
	"fmt"
	"os"
	"path/filepath"
)

// MoveToProcessed moves path into a sibling directory named dirName, creating
// it if needed. It refuses to overwrite: if the destination already exists
// the file stays where it is and an error is returned. Returns the
// destination path on success.
func MoveToProcessed(path, dirName string) (string, error) {
	dir := filepath.Join(filepath.Dir(path), dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	dest := filepath.Join(dir, filepath.Base(path))
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("move %s: destination %s already exists", filepath.Base(path), dest)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("move %s: %w", filepath.Base(path), err)
	}

	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("move %s: %w", filepath.Base(path), err)
	}
	return dest, nil
}
