package storage

import (
	"fmt"
	"os"

	"github.com/wricardo/labyrinth/game/engine"
)

// FilePersistence implements service.MapStore on the local file system
type FilePersistence struct{}

// NewFilePersistence creates a new file-based map store
func NewFilePersistence() *FilePersistence {
	return &FilePersistence{}
}

// Load reads and validates the map at path
func (fp *FilePersistence) Load(path string) (engine.Grid, error) {
	if path == "" {
		return nil, fmt.Errorf("map path cannot be empty")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("map path is a directory: %s", path)
	}
	return engine.LoadFile(path)
}

// Save overwrites the map at path
func (fp *FilePersistence) Save(path string, grid engine.Grid) error {
	if path == "" {
		return fmt.Errorf("map path cannot be empty")
	}
	if err := engine.ValidateShape(grid); err != nil {
		return fmt.Errorf("refusing to save invalid map: %w", err)
	}
	if err := engine.SaveFile(path, grid); err != nil {
		return fmt.Errorf("failed to save map %s: %w", path, err)
	}
	return nil
}
