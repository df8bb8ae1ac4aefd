package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	chordCmd.Flags().Int("octave", 4, "octave of the root")
	chordCmd.Flags().Bool("inversions", false, "also print every inversion")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <key> <type>",
	Short: "Lists the notes of a chord",
	Long:  `Lists the notes of a chord, e.g. "chord C maj7 --inversions".`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := lookupPitch(args[0])
		if err != nil {
			return err
		}
		ct, err := lookupChordType(args[1])
		if err != nil {
			return err
		}
		octave, _ := cmd.Flags().GetInt("octave")
		if err := checkOctave(octave); err != nil {
			return err
		}
		inversions, _ := cmd.Flags().GetBool("inversions")
		printChord(cmd.OutOrStdout(), chord.New(ct, key), octave, inversions)
		return nil
	},
}

func printChord(w io.Writer, c chord.Chord, octave int, inversions bool) {
	logging.Log.Debug("chord", zap.Stringer("chord", c), zap.Int("octave", octave))
	fmt.Fprintf(w, "chord: %v\n", c)
	fmt.Fprintf(w, "intervals: %v\n", c.Type.Intervals())
	fmt.Fprintf(w, "notes: %v\n", c.Notes(octave))
	if !inversions {
		return
	}
	for i, inv := range c.Inversions(octave) {
		fmt.Fprintf(w, "inversion %d: %v\n", i+1, inv)
	}
}
