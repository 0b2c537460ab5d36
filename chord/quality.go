package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/scalefinder/note"
	"golang.org/x/exp/slices"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

type QualityName string

const (
	Power                 QualityName = "power"
	Major                 QualityName = "major"
	Minor                 QualityName = "minor"
	Augmented             QualityName = "augmented"
	Diminished            QualityName = "diminished"
	MajorSixth            QualityName = "major sixth"
	MinorSixth            QualityName = "minor sixth"
	DiminishedSeventh     QualityName = "diminished seventh"
	HalfDiminishedSeventh QualityName = "half-diminished seventh"
	MinorSeventh          QualityName = "minor seventh"
	MinorMajorSeventh     QualityName = "minor major seventh"
	DominantSeventh       QualityName = "dominant seventh"
	MajorSeventh          QualityName = "major seventh"
	AugmentedSeventh      QualityName = "augmented seventh"
	AugmentedMajorSeventh QualityName = "augmented major seventh"
	DominantNinth         QualityName = "dominant ninth"
	DominantEleventh      QualityName = "dominant eleventh"
	DominantThirteenth    QualityName = "dominant thirteenth"
	SeventhSharpFifth     QualityName = "seventh sharp fifth"
	SeventhFlatNinth      QualityName = "seventh flat ninth"
	SeventhSharpNinth     QualityName = "seventh sharp ninth"
	SeventhSharpEleventh  QualityName = "seventh sharp eleventh"
	SeventhFlatThirteenth QualityName = "seventh flat thirteenth"
	AddNine               QualityName = "add nine"
	AddEleven             QualityName = "add eleven"
	SixNine               QualityName = "six nine"
	SevenSix              QualityName = "seven six"
	SuspendedSecond       QualityName = "suspended second"
	SuspendedFourth       QualityName = "suspended fourth"
	NinthSuspendedFourth  QualityName = "ninth suspended fourth"
)

// Quality declares a chord type. Either Intervals are measured from the root
// alone, or they extend Base after its Omit degree (if any) has been removed.
type Quality struct {
	Name      QualityName
	Suffix    string
	Base      QualityName
	Omit      int
	Intervals []note.Interval
}

var catalog = []Quality{
	{Name: Power, Suffix: "5", Intervals: []note.Interval{note.PerfectFifth}},

	{Name: Major, Suffix: "", Intervals: []note.Interval{note.MajorThird, note.PerfectFifth}},
	{Name: Minor, Suffix: "m", Intervals: []note.Interval{note.MinorThird, note.PerfectFifth}},
	{Name: Augmented, Suffix: "aug", Intervals: []note.Interval{note.MajorThird, note.AugmentedFifth}},
	{Name: Diminished, Suffix: "dim", Intervals: []note.Interval{note.MinorThird, note.DiminishedFifth}},
	{Name: MajorSixth, Suffix: "6", Intervals: []note.Interval{note.MajorThird, note.PerfectFifth, note.MajorSixth}},
	{Name: MinorSixth, Suffix: "m6", Intervals: []note.Interval{note.MinorThird, note.PerfectFifth, note.MajorSixth}},

	{Name: DiminishedSeventh, Suffix: "dim7", Intervals: []note.Interval{note.MinorThird, note.DiminishedFifth, note.DiminishedSeventh}},
	{Name: HalfDiminishedSeventh, Suffix: "m7♭5", Intervals: []note.Interval{note.MinorThird, note.DiminishedFifth, note.MinorSeventh}},
	{Name: MinorSeventh, Suffix: "m7", Intervals: []note.Interval{note.MinorThird, note.PerfectFifth, note.MinorSeventh}},
	{Name: MinorMajorSeventh, Suffix: "m(M7)", Intervals: []note.Interval{note.MinorThird, note.PerfectFifth, note.MajorSeventh}},
	{Name: DominantSeventh, Suffix: "7", Intervals: []note.Interval{note.MajorThird, note.PerfectFifth, note.MinorSeventh}},
	{Name: MajorSeventh, Suffix: "M7", Intervals: []note.Interval{note.MajorThird, note.PerfectFifth, note.MajorSeventh}},
	{Name: AugmentedSeventh, Suffix: "aug7", Intervals: []note.Interval{note.MajorThird, note.AugmentedFifth, note.MinorSeventh}},
	{Name: AugmentedMajorSeventh, Suffix: "augM7", Intervals: []note.Interval{note.MajorThird, note.AugmentedFifth, note.MajorSeventh}},

	{Name: DominantNinth, Suffix: "9", Base: DominantSeventh, Intervals: []note.Interval{note.MajorNinth}},
	{Name: DominantEleventh, Suffix: "11", Base: DominantSeventh, Omit: 3, Intervals: []note.Interval{note.MajorNinth, note.PerfectEleventh}},
	{Name: DominantThirteenth, Suffix: "13", Base: DominantSeventh, Intervals: []note.Interval{note.MajorNinth, note.MajorThirteenth}},

	{Name: SeventhSharpFifth, Suffix: "7#5", Base: DominantSeventh, Omit: 5, Intervals: []note.Interval{note.AugmentedFifth}},
	{Name: SeventhFlatNinth, Suffix: "7♭9", Base: DominantSeventh, Intervals: []note.Interval{note.MinorNinth}},
	{Name: SeventhSharpNinth, Suffix: "7#9", Base: DominantSeventh, Intervals: []note.Interval{note.AugmentedNinth}},
	{Name: SeventhSharpEleventh, Suffix: "7#11", Base: DominantSeventh, Intervals: []note.Interval{note.AugmentedEleventh}},
	{Name: SeventhFlatThirteenth, Suffix: "7♭13", Base: DominantSeventh, Intervals: []note.Interval{note.MinorThirteenth}},

	{Name: AddNine, Suffix: "add9", Base: Major, Intervals: []note.Interval{note.MajorNinth}},
	{Name: AddEleven, Suffix: "add11", Base: Major, Intervals: []note.Interval{note.PerfectFourth}},
	{Name: SixNine, Suffix: "6/9", Base: Major, Intervals: []note.Interval{note.MajorSixth, note.MajorNinth}},
	{Name: SevenSix, Suffix: "7/6", Base: Major, Intervals: []note.Interval{note.MajorSixth, note.MinorSeventh}},

	{Name: SuspendedSecond, Suffix: "sus2", Base: Power, Intervals: []note.Interval{note.MajorSecond}},
	{Name: SuspendedFourth, Suffix: "sus4", Base: Power, Intervals: []note.Interval{note.PerfectFourth}},
	{Name: NinthSuspendedFourth, Suffix: "9sus4", Base: Power, Intervals: []note.Interval{note.PerfectFourth, note.MinorSeventh, note.MajorNinth}},
}

var byName = func() map[QualityName]Quality {
	m := make(map[QualityName]Quality, len(catalog))
	for _, q := range catalog {
		m[q.Name] = q
	}
	return m
}()

// Qualities returns the catalog in declaration order.
func Qualities() []Quality {
	return slices.Clone(catalog)
}

func Lookup(name QualityName) (Quality, bool) {
	q, ok := byName[name]
	return q, ok
}

// ParseQuality matches a quality name ("dominant seventh", "dominant-seventh")
// or a suffix ("7", "m7♭5"). Suffixes are case sensitive since "m" and "M" differ.
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSpace(s)
	for _, q := range catalog {
		if q.Suffix == s && s != "" {
			return q, nil
		}
	}
	name := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(s))
	for _, q := range catalog {
		if strings.ReplaceAll(string(q.Name), "-", " ") == name {
			return q, nil
		}
	}
	if name == "" || name == "maj" {
		return byName[Major], nil
	}
	return Quality{}, fmt.Errorf("%q: %w", s, ErrUnknownQuality)
}

// New builds the chord of quality q on root.
func New(q QualityName, root note.Pitch) (Chord, error) {
	quality, ok := byName[q]
	if !ok {
		return Chord{}, fmt.Errorf("%q: %w", q, ErrUnknownQuality)
	}
	return quality.Build(root)
}

func (q Quality) Build(root note.Pitch) (Chord, error) {
	name := root.Name() + q.Suffix
	if q.Base == "" {
		base := Chord{name: name, notes: []note.Pitch{root}}
		return base.extend(name, root, q.Intervals)
	}

	base, err := New(q.Base, root)
	if err != nil {
		return Chord{}, err
	}
	if q.Omit != 0 {
		base, err = base.OmitDegree(q.Omit)
		if err != nil {
			return Chord{}, err
		}
	}
	return base.extend(name, root, q.Intervals)
}

// Identify names pitches by finding a catalog quality that, built on the
// lowest pitch, yields exactly the same notes.
func Identify(pitches []note.Pitch) (Chord, error) {
	c, err := FromPitches("?", pitches)
	if err != nil {
		return Chord{}, err
	}
	for _, q := range catalog {
		candidate, err := q.Build(c.Root())
		if err != nil {
			continue
		}
		if slices.Equal(candidate.notes, c.notes) {
			return candidate, nil
		}
	}
	return Chord{}, fmt.Errorf("%s: %w", c.Key(), ErrUnknownQuality)
}
