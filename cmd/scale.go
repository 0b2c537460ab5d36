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
	"github.com/jsphweid/scalefinder/scale"
	"github.com/spf13/cobra"
)

var (
	scaleSevenths bool
	scaleOut      string
)

func init() {
	scaleCmd.Flags().BoolVar(&scaleSevenths, "sevenths", false, "show diatonic seventh chords instead of triads")
	scaleCmd.Flags().StringVar(&scaleOut, "out", "", "write the scale to this midi file")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale [key] [tonality]",
	Short: "Shows a scale and its diatonic chords",
	Long: `Shows the notes of a major or natural minor scale along with the chord built
on each degree by stacking thirds. Without arguments every catalog scale is listed.`,
	Example: `  scalefinder scale D major
  scalefinder scale "F#" minor --sevenths`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			if ok, err := writeStructured(w, scaleModels()); ok {
				return err
			}
			for _, s := range scale.Catalog() {
				fmt.Fprintf(w, "%s: %s\n", s.Name(), strings.Join(pitchClassNames(s.PitchClasses()), " "))
			}
			return nil
		}

		tonality := "major"
		if len(args) == 2 {
			tonality = args[1]
		}
		s, err := lookupScale(args[0], tonality)
		if err != nil {
			return err
		}
		res, err := scaleWithChords(s)
		if err != nil {
			return err
		}
		if ok, err := writeStructured(w, res); ok {
			if err != nil {
				return err
			}
		} else if err := printScale(w, s, scaleSevenths); err != nil {
			return err
		}

		if scaleOut != "" {
			if err := midi.WriteFile(scaleOut, s.Notes(), false); err != nil {
				return err
			}
			fmt.Fprintf(w, "wrote %s\n", scaleOut)
		}
		return nil
	},
}

func lookupScale(keyStr, tonalityStr string) (scale.Scale, error) {
	key, err := note.ParsePitchClass(keyStr)
	if err != nil {
		return scale.Scale{}, err
	}
	t, err := scale.ParseTonality(tonalityStr)
	if err != nil {
		return scale.Scale{}, err
	}
	return scale.Lookup(key, t)
}

func scaleModels() []model.Scale {
	catalog := scale.Catalog()
	res := make([]model.Scale, len(catalog))
	for i, s := range catalog {
		res[i] = model.FromScale(s)
	}
	return res
}

// scaleWithChords is the scale with both its diatonic triads and sevenths.
func scaleWithChords(s scale.Scale) (model.Scale, error) {
	triads, err := s.DiatonicTriads()
	if err != nil {
		return model.Scale{}, err
	}
	sevenths, err := s.DiatonicSevenths()
	if err != nil {
		return model.Scale{}, err
	}
	res := model.FromScale(s)
	res.DiatonicTriads = model.FromChords(triads)
	res.DiatonicSevenths = model.FromChords(sevenths)
	return res, nil
}

func diatonicChords(s scale.Scale, sevenths bool) ([]chord.Chord, error) {
	if sevenths {
		return s.DiatonicSevenths()
	}
	return s.DiatonicTriads()
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

func printScale(w io.Writer, s scale.Scale, sevenths bool) error {
	chords, err := diatonicChords(s, sevenths)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s.Name())
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "degree\tnote\tchord\tnotes")
	for i, c := range chords {
		deg, _ := s.Degree(i)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", romanNumerals[i], deg.Name(), c.Name(), strings.Join(pitchClassNames(c.PitchClasses()), " "))
	}
	return tw.Flush()
}

func pitchClassNames(pcs []note.PitchClass) []string {
	res := make([]string, len(pcs))
	for i, pc := range pcs {
		res[i] = pc.Name()
	}
	return res
}
