package rank

import (
	"math"

	"github.com/jsphweid/scalefinder/note"
	"github.com/jsphweid/scalefinder/scale"
	"golang.org/x/exp/slices"
)

type Result struct {
	Scale      scale.Scale
	Similarity float64
}

type Partitioned struct {
	Major        []Result
	NaturalMinor []Result
}

// Similarity is the share of the scale's notes present in pcs, rounded to two
// decimals. Each pitch class counts once however often it appears.
func Similarity(s scale.Scale, pcs []note.PitchClass) float64 {
	var count int
	seen := make(map[note.PitchClass]bool, len(pcs))
	for _, pc := range pcs {
		pc %= note.Octave
		if seen[pc] {
			continue
		}
		seen[pc] = true
		if s.Contains(pc) {
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(s.Len())*100) / 100
}

// Rank scores every scale against pcs and sorts by similarity, highest first.
// Ties keep catalog order.
func Rank(catalog []scale.Scale, pcs []note.PitchClass) []Result {
	res := make([]Result, 0, len(catalog))
	for _, s := range catalog {
		res = append(res, Result{Scale: s, Similarity: Similarity(s, pcs)})
	}
	slices.SortStableFunc(res, func(a, b Result) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})
	return res
}

// Partition splits ranked results by tonality, keeping their order.
func Partition(results []Result) Partitioned {
	var p Partitioned
	for _, r := range results {
		switch r.Scale.Tonality() {
		case scale.Major:
			p.Major = append(p.Major, r)
		case scale.NaturalMinor:
			p.NaturalMinor = append(p.NaturalMinor, r)
		}
	}
	return p
}

// Catalog ranks pcs against the built-in scale catalog and partitions it.
func Catalog(pcs []note.PitchClass) Partitioned {
	return Partition(Rank(scale.Catalog(), pcs))
}
