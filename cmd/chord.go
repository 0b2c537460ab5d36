package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/scalefinder/chord"
	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/model"
	"github.com/jsphweid/scalefinder/note"
	"github.com/spf13/cobra"
)

var (
	chordOctave int
	chordOmit   []int
	chordOut    string
	chordList   bool
)

func init() {
	chordCmd.Flags().IntVar(&chordOctave, "octave", 0, "move every note into this octave (-2 to 8)")
	chordCmd.Flags().IntSliceVar(&chordOmit, "omit", nil, "degrees to omit, e.g. 3 or 5")
	chordCmd.Flags().StringVar(&chordOut, "out", "", "write the chord to this midi file")
	chordCmd.Flags().BoolVar(&chordList, "list", false, "list the chord qualities")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> [quality]",
	Short: "Builds a chord",
	Long: `Builds a chord from a root and a quality. The root is a note name with an
optional octave number (C3 is middle C) or a MIDI note number. The quality is a
name ("dominant seventh") or a suffix ("7", "m7♭5", "sus4"); it defaults to major.`,
	Example: `  scalefinder chord C3 M7
  scalefinder chord 62 "minor seventh" --omit 5
  scalefinder chord G 9 --octave 1 --out g9.mid`,
	Args: func(cmd *cobra.Command, args []string) error {
		if chordList {
			return nil
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if chordList {
			if ok, err := writeStructured(cmd.OutOrStdout(), qualityModels()); ok {
				return err
			}
			printQualities(cmd.OutOrStdout())
			return nil
		}

		var quality string
		if len(args) == 2 {
			quality = args[1]
		}
		var octave *int
		if cmd.Flags().Changed("octave") {
			octave = &chordOctave
		}
		c, err := buildChord(args[0], quality, octave, chordOmit)
		if err != nil {
			return err
		}

		if ok, err := writeStructured(cmd.OutOrStdout(), model.FromChord(c)); ok {
			if err != nil {
				return err
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
		}
		if chordOut != "" {
			if err := midi.WriteFile(chordOut, c.Notes(), true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", chordOut)
		}
		return nil
	},
}

// buildChord is shared by the chord command and the chord endpoint. A nil
// octave leaves the notes where the quality put them.
func buildChord(rootStr, qualityStr string, octave *int, omit []int) (chord.Chord, error) {
	root, err := note.ParsePitch(rootStr)
	if err != nil {
		return chord.Chord{}, err
	}
	q, err := chord.ParseQuality(qualityStr)
	if err != nil {
		return chord.Chord{}, err
	}
	c, err := q.Build(root)
	if err != nil {
		return chord.Chord{}, err
	}
	for _, d := range omit {
		c, err = c.OmitDegree(d)
		if err != nil {
			return chord.Chord{}, err
		}
	}
	if octave != nil {
		c, err = c.RemapOctave(*octave)
		if err != nil {
			return chord.Chord{}, err
		}
	}
	return c, nil
}

func qualityModels() []model.Quality {
	qualities := chord.Qualities()
	res := make([]model.Quality, len(qualities))
	for i, q := range qualities {
		res[i] = model.FromQuality(q)
	}
	return res
}

func printQualities(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "suffix\tquality\tstructure")
	for _, q := range chord.Qualities() {
		var parts []string
		if q.Base != "" {
			parts = append(parts, string(q.Base))
			if q.Omit != 0 {
				parts = append(parts, fmt.Sprintf("omit %d", q.Omit))
			}
		} else {
			parts = append(parts, string(note.Unison))
		}
		for _, iv := range q.Intervals {
			parts = append(parts, string(iv))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", q.Suffix, q.Name, strings.Join(parts, " + "))
	}
	tw.Flush()
}
