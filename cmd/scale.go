package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/harmonics/logging"
	"github.com/jsphweid/harmonics/scale"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	scaleCmd.Flags().Int("octave", 4, "octave of the first note")
	scaleCmd.Flags().String("field", "", "print the harmonic field for a shape: triad, seventh, ninth, eleventh, thirteenth")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <key> <type>",
	Short: "Lists the notes of a scale",
	Long:  `Lists the notes of a scale and optionally its harmonic field, e.g. "scale C major --field triad".`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := lookupPitch(args[0])
		if err != nil {
			return err
		}
		st, err := lookupScale(args[1])
		if err != nil {
			return err
		}
		octave, _ := cmd.Flags().GetInt("octave")
		if err := checkOctave(octave); err != nil {
			return err
		}
		field, _ := cmd.Flags().GetString("field")
		return printScale(cmd.OutOrStdout(), scale.New(st, key), octave, field)
	},
}

func printScale(w io.Writer, s scale.Scale, octave int, field string) error {
	logging.Log.Debug("scale", zap.Stringer("scale", s), zap.Int("octave", octave))
	fmt.Fprintf(w, "scale: %v\n", s)
	fmt.Fprintf(w, "notes: %v\n", s.Notes(octave))
	if field == "" {
		return nil
	}
	shape, err := lookupShape(field)
	if err != nil {
		return err
	}
	var labels []string
	var missing []int
	for _, fd := range s.FieldDegrees(shape) {
		if fd.Err != nil {
			labels = append(labels, "-")
			missing = append(missing, fd.Number)
			continue
		}
		labels = append(labels, fd.Chord.String())
	}
	fmt.Fprintf(w, "%v field: %v\n", shape, labels)
	if len(missing) > 0 {
		fmt.Fprintf(w, "no chord on degrees: %v\n", missing)
	}
	return nil
}
