package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/scalefinder/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, block bool, indexes ...int) []byte {
	var pitches []note.Pitch
	for _, n := range indexes {
		pitches = append(pitches, note.MustNew(n))
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, pitches, block))
	return buf.Bytes()
}

func TestWriteThenReadNoteOns(t *testing.T) {
	for _, block := range []bool{true, false} {
		s, err := Read(bytes.NewReader(encode(t, block, 60, 62, 64)))
		require.NoError(t, err)
		assert.Equal(t, []int{60, 62, 64}, NoteOns(s))
	}
}

func TestPitchClasses(t *testing.T) {
	s, err := Read(bytes.NewReader(encode(t, false, 60, 62, 64, 72, 50)))
	require.NoError(t, err)
	pcs, err := PitchClasses(s)
	require.NoError(t, err)
	assert.Equal(t, []note.PitchClass{note.C, note.D, note.E}, pcs)
}

func TestReadGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("definitely not a midi file"))
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestBatchKeepsGoodSources(t *testing.T) {
	sources := []Source{
		{Name: "a.mid", Reader: bytes.NewReader(encode(t, true, 60, 64, 67))},
		{Name: "broken.mid", Reader: strings.NewReader("nope")},
		{Name: "b.mid", Reader: bytes.NewReader(encode(t, false, 62, 69))},
	}
	pcs, results, err := PitchClassesFromSources(sources)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparseable)
	assert.Contains(t, err.Error(), "broken.mid")
	assert.Equal(t, []note.PitchClass{note.C, note.D, note.E, note.G, note.A}, pcs)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}

func TestBatchFromFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.mid")
	require.NoError(t, os.WriteFile(good, encode(t, true, 61, 65), 0644))

	pcs, results, err := PitchClassesFromFiles([]string{good, filepath.Join(dir, "missing.mid")})
	require.Error(t, err)
	assert.Equal(t, []note.PitchClass{note.CSharpDFlat, note.F}, pcs)
	assert.Len(t, results, 2)

	pcs, _, err = PitchClassesFromFiles([]string{good})
	require.NoError(t, err)
	assert.Equal(t, []note.PitchClass{note.CSharpDFlat, note.F}, pcs)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chord.mid")
	require.NoError(t, WriteFile(path, []note.Pitch{note.MustNew(48), note.MustNew(55)}, true))

	s, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{48, 55}, NoteOns(s))
}
