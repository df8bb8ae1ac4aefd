package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/pitch"
	"github.com/jsphweid/harmonics/scale"
	"github.com/jsphweid/harmonics/tempo"
)

var letters = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// normalizeName folds unicode accidentals and word separators so that
// "min7♭5", "min7b5", "Harmonic-Minor" and "harmonic minor" all compare equal.
func normalizeName(s string) string {
	s = strings.NewReplacer("♭", "b", "♯", "#", "-", " ", "_", " ").Replace(s)
	return strings.ToLower(strings.TrimSpace(s))
}

func lookupPitch(name string) (pitch.Class, error) {
	s := strings.NewReplacer("♭", "b", "♯", "#").Replace(strings.TrimSpace(name))
	if s == "" {
		return 0, fmt.Errorf("empty pitch class")
	}
	base, ok := letters[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("unknown pitch class %q", name)
	}
	for _, r := range s[1:] {
		switch r {
		case 'b':
			base--
		case '#':
			base++
		default:
			return 0, fmt.Errorf("unknown pitch class %q", name)
		}
	}
	return pitch.FromInt(base), nil
}

func parseOctave(s string) (int, error) {
	octave, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("octave %q: %w", s, err)
	}
	return octave, checkOctave(octave)
}

func checkOctave(octave int) error {
	if octave < constants.MinOctave || octave > constants.MaxOctave {
		return fmt.Errorf("octave %d outside [%d, %d]", octave, constants.MinOctave, constants.MaxOctave)
	}
	return nil
}

func lookupScale(name string) (scale.Type, error) {
	want := normalizeName(name)
	for _, t := range scale.Named {
		if normalizeName(t.String()) == want {
			return t, nil
		}
	}
	return scale.Type{}, fmt.Errorf("unknown scale %q", name)
}

func lookupChordType(name string) (chord.Type, error) {
	want := normalizeName(name)
	for _, t := range chord.Named {
		if normalizeName(t.String()) == want {
			return t, nil
		}
	}
	return chord.Type{}, fmt.Errorf("unknown chord type %q", name)
}

func lookupShape(name string) (chord.Shape, error) {
	want := normalizeName(name)
	for _, s := range chord.Shapes() {
		if s.String() == want {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown chord shape %q", name)
}

var noteTypes = []tempo.Type{
	tempo.DoubleWhole, tempo.Whole, tempo.Half, tempo.Quarter,
	tempo.Eighth, tempo.Sixteenth, tempo.ThirtySecond, tempo.SixtyFourth,
}

func lookupNoteType(name string) (tempo.Type, error) {
	want := normalizeName(name)
	for _, t := range noteTypes {
		if normalizeName(t.String()) == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown note value %q", name)
}

func lookupModifier(name string) (tempo.Modifier, error) {
	want := normalizeName(name)
	if want == "" || want == "none" {
		return tempo.Default, nil
	}
	for _, m := range []tempo.Modifier{tempo.Dotted, tempo.DoubleDotted, tempo.Triplet, tempo.Quintuplet} {
		if m.String() == want {
			return m, nil
		}
	}
	return tempo.Default, fmt.Errorf("unknown modifier %q", name)
}
