package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects the note ons of a midi file",
	Long:  `Prints every note on in a midi file and the pitch classes they reduce to.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		keys := midi.NoteOns(s)
		fmt.Fprintf(w, "tracks: %v\n", len(s.Tracks))
		fmt.Fprintf(w, "note ons: %v\n", len(keys))
		for _, key := range keys {
			p, err := note.New(key)
			if err != nil {
				fmt.Fprintf(w, "  %v: %v\n", key, err)
				continue
			}
			fmt.Fprintf(w, "  %v: %v\n", key, p)
		}
		pcs, err := midi.PitchClasses(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "pitch classes: %s\n", strings.Join(pitchClassNames(pcs), " "))
		return nil
	},
}
