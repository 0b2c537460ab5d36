package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/scalefinder/note"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrUnparseable = errors.New("unparseable midi file")

// Read decodes a standard midi file. gomidi can panic on malformed input,
// those panics come back as ErrUnparseable.
// https://github.com/gomidi/midi/issues/20
func Read(r io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("%v: %w", rec, ErrUnparseable)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrUnparseable)
	}
	return res, nil
}

func ReadFile(path string) (*smf.SMF, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file %s: %w", path, err)
	}
	s, err := Read(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file %s: %w", path, err)
	}
	return s, nil
}

// NoteOns returns the key of every note start across all tracks, in track order.
// A note on with velocity 0 is a note off and is skipped.
func NoteOns(s *smf.SMF) []int {
	var res []int
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteStart(&channel, &key, &velocity) {
				res = append(res, int(key))
			}
		}
	}
	return res
}

// PitchClasses reduces the note ons of one decoded file.
func PitchClasses(s *smf.SMF) ([]note.PitchClass, error) {
	pcs, err := note.ReduceNoteNumbers(NoteOns(s))
	if err != nil {
		return nil, fmt.Errorf("contained an invalid note number: %w", err)
	}
	return pcs, nil
}

// FileResult is the outcome for one file of a batch.
type FileResult struct {
	Name         string
	PitchClasses []note.PitchClass
	Err          error
}

// Source is a named midi stream, e.g. an uploaded file.
type Source struct {
	Name   string
	Reader io.Reader
}

// PitchClassesFromSources decodes every source. A bad source does not stop
// the batch: the union of the good ones is returned along with every failure
// joined into err.
func PitchClassesFromSources(sources []Source) ([]note.PitchClass, []FileResult, error) {
	return collect(len(sources), func(i int) (string, *smf.SMF, error) {
		s, err := Read(sources[i].Reader)
		if err != nil {
			err = fmt.Errorf("failed to parse midi file %s: %w", sources[i].Name, err)
		}
		return sources[i].Name, s, err
	})
}

func PitchClassesFromFiles(paths []string) ([]note.PitchClass, []FileResult, error) {
	return collect(len(paths), func(i int) (string, *smf.SMF, error) {
		s, err := ReadFile(paths[i])
		return paths[i], s, err
	})
}

func collect(n int, decode func(i int) (string, *smf.SMF, error)) ([]note.PitchClass, []FileResult, error) {
	var union []note.PitchClass
	var errs []error
	results := make([]FileResult, 0, n)
	for i := 0; i < n; i++ {
		name, s, err := decode(i)
		fr := FileResult{Name: name}
		if err == nil {
			fr.PitchClasses, err = PitchClasses(s)
			if err != nil {
				err = fmt.Errorf("%s: %w", name, err)
			}
		}
		if err != nil {
			fr.Err = err
			errs = append(errs, err)
		} else {
			union = append(union, fr.PitchClasses...)
		}
		results = append(results, fr)
	}
	return note.Dedupe(union), results, errors.Join(errs...)
}
