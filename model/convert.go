package model

import (
	"github.com/jsphweid/scalefinder/chord"
	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/note"
	"github.com/jsphweid/scalefinder/rank"
	"github.com/jsphweid/scalefinder/scale"
)

func pitchClassNames(pcs []note.PitchClass) []string {
	res := make([]string, len(pcs))
	for i, pc := range pcs {
		res[i] = pc.Name()
	}
	return res
}

func FromChord(c chord.Chord) Chord {
	notes := c.Notes()
	res := Chord{Name: c.Name(), Key: c.Key(), Notes: make([]Note, len(notes))}
	for i, p := range notes {
		res.Notes[i] = Note{Number: p.Index(), Name: p.String(), Octave: p.Octave()}
	}
	return res
}

func FromChords(cs []chord.Chord) []Chord {
	res := make([]Chord, len(cs))
	for i, c := range cs {
		res[i] = FromChord(c)
	}
	return res
}

func FromQuality(q chord.Quality) Quality {
	res := Quality{
		Name:      string(q.Name),
		Suffix:    q.Suffix,
		Base:      string(q.Base),
		Omit:      q.Omit,
		Intervals: make([]string, len(q.Intervals)),
	}
	for i, iv := range q.Intervals {
		res.Intervals[i] = string(iv)
	}
	return res
}

func FromScale(s scale.Scale) Scale {
	return Scale{
		Name:     s.Name(),
		Tonality: string(s.Tonality()),
		Key:      s.Key().Name(),
		Notes:    pitchClassNames(s.PitchClasses()),
	}
}

func fromResults(results []rank.Result) []ScaleSimilarity {
	res := make([]ScaleSimilarity, len(results))
	for i, r := range results {
		res[i] = ScaleSimilarity{
			Name:       r.Scale.Name(),
			Tonality:   string(r.Scale.Tonality()),
			Notes:      pitchClassNames(r.Scale.PitchClasses()),
			Similarity: r.Similarity,
		}
	}
	return res
}

func FromRanking(pcs []note.PitchClass, p rank.Partitioned) RankResponse {
	return RankResponse{
		PitchClasses: pitchClassNames(pcs),
		Major:        fromResults(p.Major),
		NaturalMinor: fromResults(p.NaturalMinor),
	}
}

func FromFileResults(results []midi.FileResult) []FileError {
	var res []FileError
	for _, fr := range results {
		if fr.Err != nil {
			res = append(res, FileError{Filename: fr.Name, Error: fr.Err.Error()})
		}
	}
	return res
}
