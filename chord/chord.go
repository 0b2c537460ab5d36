package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/scalefinder/note"
	"golang.org/x/exp/slices"
)

var (
	ErrDegenerateChord = errors.New("degenerate chord")
	ErrUnknownDegree   = errors.New("unknown chord degree")
)

// Chord is a named set of at least two distinct pitches, kept sorted ascending.
// The zero value is not a valid chord; build one with New or FromPitches.
type Chord struct {
	name  string
	notes []note.Pitch
}

// intervals whose notes are removed when omitting a degree
var degrees = map[int][]note.Interval{
	2:  {note.MinorSecond, note.MajorSecond},
	3:  {note.MinorThird, note.MajorThird},
	4:  {note.PerfectFourth, note.AugmentedFourth},
	5:  {note.PerfectFifth},
	6:  {note.MinorSixth, note.MajorSixth},
	7:  {note.MinorSeventh, note.MajorSeventh},
	9:  {note.MinorNinth, note.MajorNinth, note.AugmentedNinth},
	11: {note.PerfectEleventh, note.AugmentedEleventh},
	13: {note.MinorThirteenth, note.MajorThirteenth},
}

// FromPitches sorts the pitches and checks that they form a chord.
func FromPitches(name string, pitches []note.Pitch) (Chord, error) {
	if len(pitches) < 2 {
		return Chord{}, fmt.Errorf("%s has %d notes: %w", name, len(pitches), ErrDegenerateChord)
	}
	notes := slices.Clone(pitches)
	slices.SortFunc(notes, func(a, b note.Pitch) int {
		return a.Index() - b.Index()
	})
	for i := 1; i < len(notes); i++ {
		if notes[i] == notes[i-1] {
			return Chord{}, fmt.Errorf("%s repeats %s: %w", name, notes[i], ErrDegenerateChord)
		}
	}
	return Chord{name: name, notes: notes}, nil
}

func (c Chord) Name() string {
	return c.name
}

// Notes returns a copy of the structural notes, lowest first.
func (c Chord) Notes() []note.Pitch {
	return slices.Clone(c.notes)
}

func (c Chord) Root() note.Pitch {
	return c.notes[0]
}

func (c Chord) Len() int {
	return len(c.notes)
}

func (c Chord) PitchClasses() []note.PitchClass {
	res := make([]note.PitchClass, len(c.notes))
	for i, p := range c.notes {
		res[i] = p.Class()
	}
	return res
}

func (c Chord) Indexes() []int {
	res := make([]int, len(c.notes))
	for i, p := range c.notes {
		res[i] = p.Index()
	}
	return res
}

// Key joins the note numbers, e.g. "60-64-67".
func (c Chord) Key() string {
	return CreateChordKey(c.Indexes())
}

func (c Chord) String() string {
	strs := make([]string, len(c.notes))
	for i, p := range c.notes {
		strs[i] = p.String()
	}
	return fmt.Sprintf("%s [%s]", c.name, strings.Join(strs, " "))
}

// Omit removes every note lying the given intervals above the root.
func (c Chord) Omit(suffix string, intervals ...note.Interval) (Chord, error) {
	name := c.name + suffix
	if len(c.notes) <= 2 {
		return Chord{}, fmt.Errorf("cannot omit from %s: %w", c.name, ErrDegenerateChord)
	}

	omit := make(map[note.Pitch]bool, len(intervals))
	for _, iv := range intervals {
		p, err := c.Root().Interval(iv)
		if err != nil {
			return Chord{}, fmt.Errorf("omitting %s from %s: %w", iv, c.name, err)
		}
		omit[p] = true
	}

	var remaining []note.Pitch
	for _, p := range c.notes {
		if !omit[p] {
			remaining = append(remaining, p)
		}
	}
	return FromPitches(name, remaining)
}

// OmitDegree drops a chord degree: 3 removes minor and major thirds, 5 the
// perfect fifth, and so on.
func (c Chord) OmitDegree(degree int) (Chord, error) {
	intervals, ok := degrees[degree]
	if !ok {
		return Chord{}, fmt.Errorf("omit %d: %w", degree, ErrUnknownDegree)
	}
	return c.Omit(fmt.Sprintf("(omit%d)", degree), intervals...)
}

// RemapOctave moves every note into octave n. The lowest remapped note becomes
// the new root, which may differ from the nominal one.
func (c Chord) RemapOctave(n int) (Chord, error) {
	remapped := make([]note.Pitch, 0, len(c.notes))
	for _, p := range c.notes {
		q, err := p.SetOctave(n)
		if err != nil {
			return Chord{}, err
		}
		remapped = append(remapped, q)
	}
	return FromPitches(c.name, remapped)
}

// extend adds notes the given intervals above root and re-canonicalizes.
func (c Chord) extend(name string, root note.Pitch, intervals []note.Interval) (Chord, error) {
	notes := slices.Clone(c.notes)
	for _, iv := range intervals {
		p, err := root.Interval(iv)
		if err != nil {
			return Chord{}, fmt.Errorf("%s above %s: %w", iv, root, err)
		}
		notes = append(notes, p)
	}
	return FromPitches(name, notes)
}

func CreateChordKey(notes []int) string {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)
	var res string
	for i, n := range sorted {
		res += fmt.Sprintf("%v", n)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}
