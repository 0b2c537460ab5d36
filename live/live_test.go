package live

import (
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/scalefinder/note"
	"github.com/jsphweid/scalefinder/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldNotes(t *testing.T) {
	s := NewSession(time.Hour, false, func([]note.PitchClass, rank.Partitioned) {})
	s.NoteOn(64)
	s.NoteOn(60)
	s.NoteOn(72)
	s.NoteOff(64)

	assert.Equal(t, []uint8{60, 72}, s.Held())
	assert.Equal(t, []note.PitchClass{note.C}, s.PitchClasses())
}

func TestStickyKeepsReleasedNotes(t *testing.T) {
	s := NewSession(time.Hour, true, func([]note.PitchClass, rank.Partitioned) {})
	s.NoteOn(60)
	s.NoteOff(60)
	s.NoteOn(62)

	assert.Equal(t, []note.PitchClass{note.C, note.D}, s.PitchClasses())
	s.Reset()
	assert.Empty(t, s.PitchClasses())
	assert.Empty(t, s.Held())
}

func TestDebouncedRanking(t *testing.T) {
	var mu sync.Mutex
	var calls int
	done := make(chan rank.Partitioned, 1)

	s := NewSession(20*time.Millisecond, false, func(pcs []note.PitchClass, p rank.Partitioned) {
		mu.Lock()
		calls++
		mu.Unlock()
		done <- p
	})
	for _, key := range []uint8{60, 62, 64, 65, 67, 69, 71} {
		s.NoteOn(key)
	}

	select {
	case p := <-done:
		require.NotEmpty(t, p.Major)
		assert.Equal(t, "C Major", p.Major[0].Scale.Name())
		assert.Equal(t, 1.0, p.Major[0].Similarity)
	case <-time.After(2 * time.Second):
		t.Fatal("ranking never ran")
	}

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
}

func TestConcurrentInput(t *testing.T) {
	s := NewSession(time.Millisecond, false, func([]note.PitchClass, rank.Partitioned) {})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(offset uint8) {
			defer wg.Done()
			for k := uint8(0); k < 12; k++ {
				s.NoteOn(48 + offset + k)
				s.NoteOff(48 + offset + k)
			}
		}(uint8(i))
	}
	wg.Wait()
	assert.Empty(t, s.Held())
}
