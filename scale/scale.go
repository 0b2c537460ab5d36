package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/scalefinder/chord"
	"github.com/jsphweid/scalefinder/note"
	"golang.org/x/exp/slices"
)

var ErrUnknownScale = errors.New("unknown scale")

type Tonality string

const (
	Major        Tonality = "Major"
	NaturalMinor Tonality = "NaturalMinor"
)

// semitone steps between consecutive degrees
var patterns = map[Tonality][]int{
	Major:        {2, 2, 1, 2, 2, 2},
	NaturalMinor: {2, 1, 2, 2, 1, 2},
}

var displayNames = map[Tonality]string{
	Major:        "Major",
	NaturalMinor: "Natural Minor",
}

func Tonalities() []Tonality {
	return []Tonality{Major, NaturalMinor}
}

func ParseTonality(s string) (Tonality, error) {
	switch strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)) {
	case "major", "maj":
		return Major, nil
	case "naturalminor", "minor", "min":
		return NaturalMinor, nil
	}
	return "", fmt.Errorf("tonality %q: %w", s, ErrUnknownScale)
}

type Scale struct {
	name     string
	tonality Tonality
	key      note.PitchClass
	notes    []note.Pitch
}

// New builds the scale on key's lowest representative, so the accumulated
// steps always stay well inside the note range.
func New(key note.PitchClass, t Tonality) (Scale, error) {
	pattern, ok := patterns[t]
	if !ok {
		return Scale{}, fmt.Errorf("tonality %q: %w", t, ErrUnknownScale)
	}

	notes := []note.Pitch{key.Lowest()}
	for _, step := range pattern {
		next, err := notes[len(notes)-1].ShiftSemitones(step)
		if err != nil {
			return Scale{}, err
		}
		notes = append(notes, next)
	}

	return Scale{
		name:     fmt.Sprintf("%s %s", key.Name(), displayNames[t]),
		tonality: t,
		key:      key,
		notes:    notes,
	}, nil
}

func (s Scale) Name() string {
	return s.name
}

func (s Scale) Tonality() Tonality {
	return s.tonality
}

func (s Scale) Key() note.PitchClass {
	return s.key
}

func (s Scale) Notes() []note.Pitch {
	return slices.Clone(s.notes)
}

func (s Scale) Len() int {
	return len(s.notes)
}

func (s Scale) PitchClasses() []note.PitchClass {
	res := make([]note.PitchClass, len(s.notes))
	for i, p := range s.notes {
		res[i] = p.Class()
	}
	return res
}

// Degree is zero-indexed; ok is false outside the scale.
func (s Scale) Degree(n int) (p note.Pitch, ok bool) {
	if n < 0 || n >= len(s.notes) {
		return note.Pitch{}, false
	}
	return s.notes[n], true
}

func (s Scale) Contains(pc note.PitchClass) bool {
	for _, p := range s.notes {
		if p.Class() == pc%note.Octave {
			return true
		}
	}
	return false
}

// DiatonicTriads stacks two thirds on every degree using only scale notes.
func (s Scale) DiatonicTriads() ([]chord.Chord, error) {
	return s.stackThirds(3)
}

// DiatonicSevenths stacks three thirds on every degree.
func (s Scale) DiatonicSevenths() ([]chord.Chord, error) {
	return s.stackThirds(4)
}

func (s Scale) stackThirds(size int) ([]chord.Chord, error) {
	pcs := s.PitchClasses()
	res := make([]chord.Chord, 0, len(pcs))
	for degree := range pcs {
		stacked := make([]note.PitchClass, size)
		for i := range stacked {
			stacked[i] = pcs[(degree+2*i)%len(pcs)]
		}
		pitches, err := note.Realize(s.notes[degree], stacked)
		if err != nil {
			return nil, err
		}
		c, err := chord.Identify(pitches)
		if err != nil {
			return nil, fmt.Errorf("degree %d of %s: %w", degree+1, s.name, err)
		}
		res = append(res, c)
	}
	return res, nil
}
