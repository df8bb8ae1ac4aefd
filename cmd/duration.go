package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonics/logging"
	"github.com/jsphweid/harmonics/tempo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	durationCmd.Flags().Float64("bpm", 120, "beats per minute")
	durationCmd.Flags().Int("beats", 4, "beats per bar")
	durationCmd.Flags().String("beat", "quarter", "note value of one beat")
	durationCmd.Flags().String("modifier", "", "dotted, double-dotted, triplet or quintuplet")
	rootCmd.AddCommand(durationCmd)
}

var durationCmd = &cobra.Command{
	Use:   "duration <note value>",
	Short: "Computes how long a note value lasts",
	Long:  `Computes how long a note value lasts, e.g. "duration quarter --bpm 120 --modifier dotted".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bpm, _ := cmd.Flags().GetFloat64("bpm")
		beats, _ := cmd.Flags().GetInt("beats")
		beat, _ := cmd.Flags().GetString("beat")
		modifier, _ := cmd.Flags().GetString("modifier")

		t, v, err := buildDuration(args[0], modifier, beats, beat, bpm)
		if err != nil {
			return err
		}
		logging.Log.Debug("duration", zap.Stringer("tempo", t), zap.Stringer("value", v))
		fmt.Fprintf(cmd.OutOrStdout(), "%v at %v: %.4f s\n", v, t, t.Seconds(v))
		return nil
	},
}

func buildDuration(value, modifier string, beats int, beat string, bpm float64) (tempo.Tempo, tempo.NoteValue, error) {
	nt, err := lookupNoteType(value)
	if err != nil {
		return tempo.Tempo{}, tempo.NoteValue{}, err
	}
	m, err := lookupModifier(modifier)
	if err != nil {
		return tempo.Tempo{}, tempo.NoteValue{}, err
	}
	bt, err := lookupNoteType(beat)
	if err != nil {
		return tempo.Tempo{}, tempo.NoteValue{}, err
	}
	sig, err := tempo.NewTimeSignature(beats, bt)
	if err != nil {
		return tempo.Tempo{}, tempo.NoteValue{}, err
	}
	t, err := tempo.New(sig, bpm)
	if err != nil {
		return tempo.Tempo{}, tempo.NoteValue{}, err
	}
	return t, tempo.NewNoteValue(nt, m), nil
}
