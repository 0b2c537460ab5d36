package cmd

import (
	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "scalefinder",
	Short: "Scales, chords and notes",
	Long: `scalefinder ranks major and natural minor scales by how well they fit a
set of notes, builds chords from their interval structure and lists the
diatonic chords of a scale. Notes can come from names, MIDI note numbers,
MIDI files or a live MIDI input.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Initialize(constants.GetLogLevel(), constants.GetLogFile())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
}

func init() {
	cobra.OnInitialize(constants.Init)

	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file")
	cobra.CheckErr(viper.BindPFlag(constants.LogLevel, rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(constants.LogFile, rootCmd.PersistentFlags().Lookup("log-file")))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
