package note

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrUnknownInterval = errors.New("unknown interval")

type Interval string

const (
	Unison            Interval = "unison"
	MinorSecond       Interval = "minor second"
	MajorSecond       Interval = "major second"
	MinorThird        Interval = "minor third"
	MajorThird        Interval = "major third"
	PerfectFourth     Interval = "perfect fourth"
	DiminishedFifth   Interval = "diminished fifth"
	PerfectFifth      Interval = "perfect fifth"
	MinorSixth        Interval = "minor sixth"
	MajorSixth        Interval = "major sixth"
	MinorSeventh      Interval = "minor seventh"
	MajorSeventh      Interval = "major seventh"
	PerfectOctave     Interval = "octave"
	MinorNinth        Interval = "minor ninth"
	MajorNinth        Interval = "major ninth"
	MinorTenth        Interval = "minor tenth"
	MajorTenth        Interval = "major tenth"
	PerfectEleventh   Interval = "perfect eleventh"
	DiminishedTwelfth Interval = "diminished twelfth"
	PerfectTwelfth    Interval = "perfect twelfth"
	MinorThirteenth   Interval = "minor thirteenth"
	MajorThirteenth   Interval = "major thirteenth"
)

// enharmonic names
const (
	DiminishedSecond     Interval = "diminished second"
	AugmentedUnison      Interval = "augmented unison"
	DiminishedThird      Interval = "diminished third"
	AugmentedSecond      Interval = "augmented second"
	DiminishedFourth     Interval = "diminished fourth"
	AugmentedThird       Interval = "augmented third"
	AugmentedFourth      Interval = "augmented fourth"
	DiminishedSixth      Interval = "diminished sixth"
	AugmentedFifth       Interval = "augmented fifth"
	DiminishedSeventh    Interval = "diminished seventh"
	AugmentedSixth       Interval = "augmented sixth"
	DiminishedOctave     Interval = "diminished octave"
	AugmentedSeventh     Interval = "augmented seventh"
	DiminishedNinth      Interval = "diminished ninth"
	AugmentedOctave      Interval = "augmented octave"
	DiminishedTenth      Interval = "diminished tenth"
	AugmentedNinth       Interval = "augmented ninth"
	DiminishedEleventh   Interval = "diminished eleventh"
	AugmentedTenth       Interval = "augmented tenth"
	AugmentedEleventh    Interval = "augmented eleventh"
	Tritave              Interval = "tritave"
	DiminishedThirteenth Interval = "diminished thirteenth"
	AugmentedTwelfth     Interval = "augmented twelfth"
	DiminishedFourteenth Interval = "diminished fourteenth"
)

var semitones = map[Interval]int{
	Unison:            0,
	MinorSecond:       1,
	MajorSecond:       2,
	MinorThird:        3,
	MajorThird:        4,
	PerfectFourth:     5,
	DiminishedFifth:   6,
	PerfectFifth:      7,
	MinorSixth:        8,
	MajorSixth:        9,
	MinorSeventh:      10,
	MajorSeventh:      11,
	PerfectOctave:     12,
	MinorNinth:        13,
	MajorNinth:        14,
	MinorTenth:        15,
	MajorTenth:        16,
	PerfectEleventh:   17,
	DiminishedTwelfth: 18,
	PerfectTwelfth:    19,
	MinorThirteenth:   20,
	MajorThirteenth:   21,
}

var aliases = map[Interval]Interval{
	DiminishedSecond:     Unison,
	AugmentedUnison:      MinorSecond,
	DiminishedThird:      MajorSecond,
	AugmentedSecond:      MinorThird,
	DiminishedFourth:     MajorThird,
	AugmentedThird:       PerfectFourth,
	AugmentedFourth:      DiminishedFifth,
	DiminishedSixth:      PerfectFifth,
	AugmentedFifth:       MinorSixth,
	DiminishedSeventh:    MajorSixth,
	AugmentedSixth:       MinorSeventh,
	DiminishedOctave:     MajorSeventh,
	AugmentedSeventh:     PerfectOctave,
	DiminishedNinth:      PerfectOctave,
	AugmentedOctave:      MinorNinth,
	DiminishedTenth:      MajorNinth,
	AugmentedNinth:       MinorTenth,
	DiminishedEleventh:   MajorTenth,
	AugmentedTenth:       PerfectEleventh,
	AugmentedEleventh:    DiminishedTwelfth,
	Tritave:              PerfectTwelfth,
	DiminishedThirteenth: PerfectTwelfth,
	AugmentedTwelfth:     MinorThirteenth,
	DiminishedFourteenth: MajorThirteenth,
}

// short forms accepted by ParseInterval
var shorthand = map[string]Interval{
	"P1": Unison, "m2": MinorSecond, "M2": MajorSecond, "m3": MinorThird,
	"M3": MajorThird, "P4": PerfectFourth, "A4": AugmentedFourth, "d5": DiminishedFifth,
	"P5": PerfectFifth, "A5": AugmentedFifth, "m6": MinorSixth, "M6": MajorSixth,
	"d7": DiminishedSeventh, "m7": MinorSeventh, "M7": MajorSeventh, "P8": PerfectOctave,
	"m9": MinorNinth, "M9": MajorNinth, "A9": AugmentedNinth, "m10": MinorTenth,
	"M10": MajorTenth, "P11": PerfectEleventh, "A11": AugmentedEleventh,
	"P12": PerfectTwelfth, "m13": MinorThirteenth, "M13": MajorThirteenth,
}

// Canonical resolves an enharmonic alias to the name it is stored under.
func Canonical(iv Interval) Interval {
	if c, ok := aliases[iv]; ok {
		return c
	}
	return iv
}

func Semitones(iv Interval) (int, bool) {
	n, ok := semitones[Canonical(iv)]
	return n, ok
}

// Intervals lists the canonical intervals from narrowest to widest.
func Intervals() []Interval {
	res := make([]Interval, 0, len(semitones))
	for iv := range semitones {
		res = append(res, iv)
	}
	slices.SortFunc(res, func(a, b Interval) int {
		return semitones[a] - semitones[b]
	})
	return res
}

// ParseInterval accepts full names in any case with spaces, dashes or
// underscores ("Major-Third"), or short forms like "M3" and "P5".
func ParseInterval(s string) (Interval, error) {
	if iv, ok := shorthand[strings.TrimSpace(s)]; ok {
		return iv, nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	iv := Interval(name)
	if _, ok := Semitones(iv); !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownInterval)
	}
	return iv, nil
}
