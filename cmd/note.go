package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/harmonics/config"
	"github.com/jsphweid/harmonics/logging"
	"github.com/jsphweid/harmonics/note"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <pitch class> <octave>",
	Short: "Shows piano key, MIDI key and frequency of a note",
	Long:  `Shows piano key, MIDI key and frequency of a note, e.g. "note A 3".`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		class, err := lookupPitch(args[0])
		if err != nil {
			return err
		}
		octave, err := parseOctave(args[1])
		if err != nil {
			return err
		}
		printNote(cmd.OutOrStdout(), note.New(class, octave), config.TuningA4())
		return nil
	},
}

func printNote(w io.Writer, n note.Note, a4 float64) {
	logging.Log.Debug("note", zap.Stringer("note", n), zap.Float64("a4", a4))
	fmt.Fprintf(w, "note: %v\n", n)
	fmt.Fprintf(w, "piano key: %v\n", n.PianoKey())
	if key, err := n.MIDIKey(); err != nil {
		fmt.Fprintf(w, "midi key: %v\n", err)
	} else {
		fmt.Fprintf(w, "midi key: %v\n", key)
	}
	fmt.Fprintf(w, "frequency: %.3f Hz\n", n.FrequencyAt(a4))
}
