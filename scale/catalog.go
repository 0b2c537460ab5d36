package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scalefinder/note"
	"golang.org/x/exp/slices"
)

var rootOrder = []note.PitchClass{
	note.C, note.D, note.E, note.F, note.G, note.A, note.B,
	note.CSharpDFlat, note.DSharpEFlat, note.FSharpGFlat, note.GSharpAFlat, note.ASharpBFlat,
}

var catalog = buildCatalog()

func buildCatalog() []Scale {
	var res []Scale
	for _, t := range Tonalities() {
		for _, key := range rootOrder {
			s, err := New(key, t)
			if err != nil {
				panic("could not build scale catalog: " + err.Error())
			}
			res = append(res, s)
		}
	}
	return res
}

// Catalog returns every Major scale followed by every Natural Minor scale,
// roots ordered naturals first.
func Catalog() []Scale {
	return slices.Clone(catalog)
}

// Lookup finds a catalog scale by key and tonality.
func Lookup(key note.PitchClass, t Tonality) (Scale, error) {
	for _, s := range catalog {
		if s.key == key && s.tonality == t {
			return s, nil
		}
	}
	return Scale{}, fmt.Errorf("%s %s: %w", key, t, ErrUnknownScale)
}

// LookupName accepts the display name, e.g. "C#/D♭ Major" or "a natural minor".
func LookupName(name string) (Scale, error) {
	for _, s := range catalog {
		if strings.EqualFold(s.name, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return Scale{}, fmt.Errorf("%q: %w", name, ErrUnknownScale)
}
