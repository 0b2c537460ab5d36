package note

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrUnrecognizedNoteName = errors.New("unrecognized note name")

// PitchClass is a pitch with the octave thrown away.
type PitchClass uint8

const (
	C PitchClass = iota
	CSharpDFlat
	D
	DSharpEFlat
	E
	F
	FSharpGFlat
	G
	GSharpAFlat
	A
	ASharpBFlat
	B
)

var names = [Octave]string{
	"C", "C#/D♭", "D", "D#/E♭", "E", "F",
	"F#/G♭", "G", "G#/A♭", "A", "A#/B♭", "B",
}

// spellings are matched after upper-casing, so "d♭" and "Db" both land here
var spellings = map[string]PitchClass{
	"B#": C, "C": C,
	"C#": CSharpDFlat, "D♭": CSharpDFlat, "DB": CSharpDFlat,
	"D":  D,
	"D#": DSharpEFlat, "E♭": DSharpEFlat, "EB": DSharpEFlat,
	"E": E, "F♭": E, "FB": E,
	"E#": F, "F": F,
	"F#": FSharpGFlat, "G♭": FSharpGFlat, "GB": FSharpGFlat,
	"G":  G,
	"G#": GSharpAFlat, "A♭": GSharpAFlat, "AB": GSharpAFlat,
	"A":  A,
	"A#": ASharpBFlat, "B♭": ASharpBFlat, "BB": ASharpBFlat,
	"B": B, "C♭": B, "CB": B,
}

func init() {
	for pc, name := range names {
		spellings[strings.ToUpper(name)] = PitchClass(pc)
	}
}

// Classes lists all twelve pitch classes from C.
func Classes() []PitchClass {
	res := make([]PitchClass, Octave)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

func (pc PitchClass) Name() string {
	return names[pc%Octave]
}

func (pc PitchClass) String() string {
	return pc.Name()
}

// Lowest is the representative of pc in octave -2.
func (pc PitchClass) Lowest() Pitch {
	return Pitch{index: uint8(pc % Octave)}
}

func ParsePitchClass(s string) (PitchClass, error) {
	pc, ok := spellings[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrUnrecognizedNoteName)
	}
	return pc, nil
}

// ParsePitchClasses is all or nothing: one bad token fails the batch.
func ParsePitchClasses(strs []string) ([]PitchClass, error) {
	res := make([]PitchClass, 0, len(strs))
	for _, s := range strs {
		pc, err := ParsePitchClass(s)
		if err != nil {
			return nil, err
		}
		res = append(res, pc)
	}
	return res, nil
}

// ReduceNoteNumbers validates MIDI note numbers and reduces them to a sorted,
// deduplicated set of pitch classes. The error names the first invalid number.
func ReduceNoteNumbers(nums []int) ([]PitchClass, error) {
	seen := make(map[PitchClass]bool)
	for i, n := range nums {
		p, err := New(n)
		if err != nil {
			return nil, fmt.Errorf("note number at position %d: %w", i, err)
		}
		seen[p.Class()] = true
	}
	return setOf(seen), nil
}

// Dedupe returns the distinct pitch classes of pcs in ascending order.
func Dedupe(pcs []PitchClass) []PitchClass {
	seen := make(map[PitchClass]bool, len(pcs))
	for _, pc := range pcs {
		seen[pc%Octave] = true
	}
	return setOf(seen)
}

func setOf(seen map[PitchClass]bool) []PitchClass {
	res := make([]PitchClass, 0, len(seen))
	for pc := range seen {
		res = append(res, pc)
	}
	slices.Sort(res)
	return res
}
