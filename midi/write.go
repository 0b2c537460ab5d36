package midi

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/scalefinder/note"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	resolution = smf.MetricTicks(480)
	velocity   = 100
	channel    = 0
)

// Create builds a one-track file from pitches. Block chords sound every note
// for one bar; otherwise the notes play one quarter note each, in order.
func Create(pitches []note.Pitch, block bool) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = resolution

	var track smf.Track
	quarter := resolution.Ticks4th()
	if block {
		for _, p := range pitches {
			track.Add(0, midi.NoteOn(channel, uint8(p.Index()), velocity))
		}
		for i, p := range pitches {
			var delta uint32
			if i == 0 {
				delta = quarter * 4
			}
			track.Add(delta, midi.NoteOff(channel, uint8(p.Index())))
		}
	} else {
		for _, p := range pitches {
			track.Add(0, midi.NoteOn(channel, uint8(p.Index()), velocity))
			track.Add(quarter, midi.NoteOff(channel, uint8(p.Index())))
		}
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track: %w", err)
	}
	return res, nil
}

func Write(w io.Writer, pitches []note.Pitch, block bool) error {
	s, err := Create(pitches, block)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteFile(path string, pitches []note.Pitch, block bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create file %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, pitches, block)
}
