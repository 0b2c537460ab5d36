package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/model"
	"github.com/jsphweid/scalefinder/note"
	"github.com/jsphweid/scalefinder/rank"
	"github.com/jsphweid/scalefinder/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	rankMidiFiles   []string
	rankNoteNumbers []int
	rankTop         int
)

func init() {
	rankCmd.Flags().StringSliceVar(&rankMidiFiles, "midi", nil, "midi files to take note ons from")
	rankCmd.Flags().IntSliceVar(&rankNoteNumbers, "numbers", nil, "MIDI note numbers, e.g. 60,62,64")
	rankCmd.Flags().String("dir", "", "rank every midi file below this directory")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "only print this many scales per tonality")
	cobra.CheckErr(viper.BindPFlag(constants.MidiDir, rankCmd.Flags().Lookup("dir")))
	rootCmd.AddCommand(rankCmd)
}

var rankCmd = &cobra.Command{
	Use:   "rank [notes...]",
	Short: "Ranks scales by similarity to a set of notes",
	Long: `Ranks the 12 major and 12 natural minor scales by the share of their notes
found in the input. Notes are given by name (C, D♭, f#, B#...), as MIDI note
numbers with --numbers, or read from MIDI files with --midi and --dir.`,
	Example: `  scalefinder rank C D E
  scalefinder rank --numbers 60,62,64
  scalefinder rank --midi song.mid --top 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pcs, err := gatherPitchClasses(args)
		if err != nil {
			return err
		}
		if len(pcs) == 0 {
			return errors.New("no notes given: pass note names, --numbers, --midi or --dir")
		}
		p := limit(rank.Catalog(pcs), rankTop)
		if ok, err := writeStructured(cmd.OutOrStdout(), model.FromRanking(pcs, p)); ok {
			return err
		}
		printRanking(cmd.OutOrStdout(), pcs, p)
		return nil
	},
}

func gatherPitchClasses(names []string) ([]note.PitchClass, error) {
	var all []note.PitchClass

	fromNames, err := note.ParsePitchClasses(names)
	if err != nil {
		return nil, err
	}
	all = append(all, fromNames...)

	fromNumbers, err := note.ReduceNoteNumbers(rankNoteNumbers)
	if err != nil {
		return nil, err
	}
	all = append(all, fromNumbers...)

	paths := rankMidiFiles
	if dir := constants.GetMidiDir(); dir != "" {
		found, err := util.GatherAllMidiPaths(dir, 0)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", dir, err)
		}
		paths = append(paths, found...)
	}
	if len(paths) > 0 {
		fromFiles, results, err := midi.PitchClassesFromFiles(paths)
		for _, fr := range results {
			if fr.Err != nil {
				logger.Log.Warn("skipping midi file", zap.String("file", fr.Name), zap.Error(fr.Err))
			} else {
				logger.Log.Debug("read midi file", zap.String("file", fr.Name), zap.Int("pitch_classes", len(fr.PitchClasses)))
			}
		}
		if err != nil && len(fromFiles) == 0 {
			return nil, err
		}
		all = append(all, fromFiles...)
	}

	return note.Dedupe(all), nil
}

// limit keeps the top scales of each tonality, all of them when top is 0.
func limit(p rank.Partitioned, top int) rank.Partitioned {
	if top <= 0 {
		return p
	}
	return rank.Partitioned{
		Major:        p.Major[:util.Clamp(top, 0, len(p.Major))],
		NaturalMinor: p.NaturalMinor[:util.Clamp(top, 0, len(p.NaturalMinor))],
	}
}

func printRanking(w io.Writer, pcs []note.PitchClass, p rank.Partitioned) {
	fmt.Fprintf(w, "notes: %s\n", strings.Join(pitchClassNames(pcs), " "))

	printTable(w, "Major", p.Major)
	printTable(w, "Natural Minor", p.NaturalMinor)
}

func printTable(w io.Writer, title string, results []rank.Result) {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "similarity\tscale\tI\tII\tIII\tIV\tV\tVI\tVII")
	for _, r := range results {
		row := []string{fmt.Sprintf("%d%%", int(r.Similarity*100+1e-9)), r.Scale.Name()}
		for _, pc := range r.Scale.PitchClasses() {
			row = append(row, pc.Name())
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}
