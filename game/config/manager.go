package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrMapNotFound = errors.New("map not found")
)

// MapExt is the file extension of map files in a maps directory
const MapExt = ".txt"

// MapInfo describes a map file found in a maps directory
type MapInfo struct {
	Name     string
	Filename string
	Path     string
}

// Manager locates map files inside a directory
type Manager struct {
	mapsDir string
}

// NewManager creates a new map manager rooted at mapsDir
func NewManager(mapsDir string) (*Manager, error) {
	info, err := os.Stat(mapsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("maps directory does not exist: %s", mapsDir)
		}
		return nil, fmt.Errorf("failed to stat maps directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("maps path is not a directory: %s", mapsDir)
	}

	return &Manager{mapsDir: mapsDir}, nil
}

// Path returns the file path of a map by name. The extension is optional.
func (m *Manager) Path(name string) (string, error) {
	filename := name
	if !strings.HasSuffix(filename, MapExt) {
		filename = name + MapExt
	}

	path := filepath.Join(m.mapsDir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMapNotFound, name)
		}
		return "", fmt.Errorf("failed to stat map file: %w", err)
	}
	return path, nil
}

// ListMaps returns every map file in the directory sorted by name. Files
// are listed whether or not they are valid maps.
func (m *Manager) ListMaps() ([]MapInfo, error) {
	entries, err := os.ReadDir(m.mapsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), MapExt) {
			continue
		}
		maps = append(maps, MapInfo{
			Name:     strings.TrimSuffix(entry.Name(), MapExt),
			Filename: entry.Name(),
			Path:     filepath.Join(m.mapsDir, entry.Name()),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}
