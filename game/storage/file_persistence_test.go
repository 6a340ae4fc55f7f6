package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/labyrinth/game/engine"
)

func TestFilePersistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("...\n.5.\n...\n"), 0644))

	fp := NewFilePersistence()

	t.Run("Load", func(t *testing.T) {
		grid, err := fp.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"...", ".5.", "..."}, grid.Lines())
	})

	t.Run("Save and Load", func(t *testing.T) {
		grid, err := fp.Load(path)
		require.NoError(t, err)
		_, ok := engine.MovePlayer(grid, engine.Position{Row: 1, Col: 1}, engine.Left)
		require.True(t, ok)

		require.NoError(t, fp.Save(path, grid))

		loaded, err := fp.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"...", "5..", "..."}, loaded.Lines())
	})

	t.Run("Load missing file", func(t *testing.T) {
		_, err := fp.Load(filepath.Join(dir, "missing.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Load directory", func(t *testing.T) {
		_, err := fp.Load(dir)
		require.Error(t, err)
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := fp.Load("")
		require.Error(t, err)
		require.Error(t, fp.Save("", engine.Grid{[]byte(".")}))
	})

	t.Run("Save invalid grid", func(t *testing.T) {
		err := fp.Save(path, engine.Grid{[]byte(".."), []byte(".")})
		require.ErrorIs(t, err, engine.ErrRaggedRows)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "...\n5..\n...\n", string(data))
	})
}
