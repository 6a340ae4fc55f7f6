package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write renders the grid to w, one newline-terminated row per line
func Write(w io.Writer, grid Grid) error {
	for _, row := range grid {
		if _, err := w.Write(row); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

// SaveFile overwrites path with the grid. The rows are written to a
// temporary file in the same directory which then replaces path.
func SaveFile(path string, grid Grid) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp map file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Write(tmp, grid); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write map file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set map file permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace map file: %w", err)
	}
	return nil
}
