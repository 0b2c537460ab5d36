package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/live"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/jsphweid/scalefinder/note"
	"github.com/jsphweid/scalefinder/rank"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

var (
	listenSticky bool
	listenPorts  bool
)

func init() {
	listenCmd.Flags().Int("port", 0, "midi input port number")
	listenCmd.Flags().Duration("debounce", 0, "wait this long after the last key before ranking")
	listenCmd.Flags().BoolVar(&listenSticky, "sticky", false, "keep released notes in the ranking until SIGHUP or all notes off")
	listenCmd.Flags().BoolVar(&listenPorts, "ports", false, "list midi input ports and exit")
	cobra.CheckErr(viper.BindPFlag(constants.ListenPort, listenCmd.Flags().Lookup("port")))
	cobra.CheckErr(viper.BindPFlag(constants.ListenDebounce, listenCmd.Flags().Lookup("debounce")))
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Ranks scales from a live midi input",
	Long: `Listens to a midi input port and prints the best fitting scales whenever the
held notes settle. With --sticky every note played counts until the session is
cleared by SIGHUP or an all notes off message (CC 123).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer midi.CloseDriver()

		if listenPorts {
			fmt.Fprintln(cmd.OutOrStdout(), midi.GetInPorts().String())
			return nil
		}

		// the driver is registered by main
		in, err := midi.InPort(constants.GetListenPort())
		if err != nil {
			return fmt.Errorf("can't find midi input %d: %w", constants.GetListenPort(), err)
		}

		w := cmd.OutOrStdout()
		wait := constants.GetListenDebounce()
		session := live.NewSession(wait, listenSticky, func(pcs []note.PitchClass, p rank.Partitioned) {
			printRanking(w, pcs, limit(p, 3))
		})

		stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
			handleMessage(session, msg)
		})
		if err != nil {
			return fmt.Errorf("could not listen to %s: %w", in, err)
		}
		defer stop()

		logger.Log.Info("listening", zap.String("port", in.String()), zap.Duration("debounce", wait))
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()
		resetOnHangup(ctx, session)
		<-ctx.Done()
		return nil
	},
}

// allNotesOff is the channel mode controller that clears a sticky session.
const allNotesOff = 123

func handleMessage(session *live.Session, msg midi.Message) {
	var ch, key, vel, cc, val uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		logger.Log.Debug("note on", zap.Uint8("key", key), zap.Uint8("velocity", vel))
		session.NoteOn(key)
	case msg.GetNoteEnd(&ch, &key):
		logger.Log.Debug("note off", zap.Uint8("key", key))
		session.NoteOff(key)
	case msg.GetControlChange(&ch, &cc, &val) && cc == allNotesOff:
		logger.Log.Info("all notes off, clearing session")
		session.Reset()
	default:
		// ignore
	}
}

// resetOnHangup clears the session on every SIGHUP until ctx is done. The
// signal is caught before it returns.
func resetOnHangup(ctx context.Context, session *live.Session) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		defer signal.Stop(hup)
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				logger.Log.Info("hangup, clearing session")
				session.Reset()
			}
		}
	}()
}
