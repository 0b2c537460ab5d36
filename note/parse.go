package note

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultOctave is used by ParsePitch when no octave is given; C3 is middle C.
const DefaultOctave = 3

var withOctave = regexp.MustCompile(`^(.+?)(-?\d+)$`)

// ParsePitch accepts a MIDI note number ("60"), a name with an octave number
// ("C3", "d♭-1", "F#/G♭4") or a bare name, which lands in DefaultOctave.
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return New(n)
	}

	name, octave := s, DefaultOctave
	if m := withOctave.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Pitch{}, fmt.Errorf("%q: %w", s, ErrUnrecognizedNoteName)
		}
		name, octave = m[1], n
	}

	pc, err := ParsePitchClass(name)
	if err != nil {
		return Pitch{}, err
	}
	return pc.Lowest().SetOctave(octave)
}
