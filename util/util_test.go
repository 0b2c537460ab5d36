package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"b.mid", "a.MIDI", "nested/c.mid", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	paths, err := GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.MIDI"),
		filepath.Join(dir, "b.mid"),
		filepath.Join(dir, "nested", "c.mid"),
	}, paths)

	paths, err = GatherAllMidiPaths(dir, 2)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	_, err = GatherAllMidiPaths(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestGetKeys(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, GetKeys(map[int]bool{3: true, 1: false, 2: true}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-4, 0, 127))
	assert.Equal(t, 127, Clamp(300, 0, 127))
	assert.Equal(t, 60, Clamp(60, 0, 127))
}
