package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestNoteCommand(t *testing.T) {
	out, err := run(t, "note", "A", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "piano key: 49")
	assert.Contains(t, out, "midi key: 45")
	assert.Contains(t, out, "frequency: 440.000 Hz")
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale", "C", "major", "--field", "seventh")
	require.NoError(t, err)
	assert.Contains(t, out, "scale: C major")
	assert.Contains(t, out, "seventh field: [Cmaj7 Dmin7 Emin7 Fmaj7 G7 Amin7 Bmin7♭5]")
}

func TestScaleCommandMarksUnmatchedDegrees(t *testing.T) {
	out, err := run(t, "scale", "C", "blues", "--field", "triad")
	require.NoError(t, err)
	assert.Contains(t, out, "triad field: [- E♭min - - - -]")
	assert.Contains(t, out, "no chord on degrees: [1 3 4 5 6]")
}

func TestChordCommand(t *testing.T) {
	out, err := run(t, "chord", "C", "7", "--octave", "4", "--inversions")
	require.NoError(t, err)
	assert.Contains(t, out, "notes: [C4 E4 G4 B♭4]")
	assert.Contains(t, out, "inversion 1: [E4 G4 B♭4 C5]")
	assert.Contains(t, out, "inversion 3: [B♭4 C5 E5 G5]")
}

func TestDurationCommand(t *testing.T) {
	out, err := run(t, "duration", "quarter", "--bpm", "120", "--modifier", "dotted")
	require.NoError(t, err)
	assert.Contains(t, out, "dotted quarter at 4/4 at 120 bpm: 0.7500 s")
}

func TestUnknownChordFails(t *testing.T) {
	_, err := run(t, "chord", "C", "sus4")
	assert.Error(t, err)
}

func TestChordOctaveOutOfRangeFails(t *testing.T) {
	_, err := run(t, "chord", "C", "7", "--octave", "99")
	assert.ErrorContains(t, err, "outside")
	_, err = run(t, "chord", "C", "7", "--octave", "4")
	assert.NoError(t, err)
}
