package scale

import (
	"fmt"

	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/interval"
	"github.com/jsphweid/harmonics/note"
	"github.com/jsphweid/harmonics/pitch"
	"golang.org/x/exp/slices"
)

type Scale struct {
	Type Type
	Key  pitch.Class
}

func New(t Type, key pitch.Class) Scale {
	return Scale{Type: t, Key: key}
}

func (s Scale) PitchClasses() []pitch.Class {
	var res []pitch.Class
	for _, i := range s.Type.Intervals() {
		res = append(res, s.Key.Next(i))
	}
	return res
}

// Notes starts at the key in the given octave and ascends through the scale.
func (s Scale) Notes(octave int) []note.Note {
	root := note.New(s.Key, octave)
	var res []note.Note
	for _, i := range s.Type.Intervals() {
		res = append(res, root.Add(i))
	}
	return res
}

// MIDIKeys lists the scale in every octave from 0 to 10, leaving out notes
// beyond the MIDI range.
func (s Scale) MIDIKeys() []int {
	var res []int
	for octave := constants.MinMIDIOctave; octave <= constants.MaxMIDIOctave; octave++ {
		for _, n := range s.Notes(octave) {
			key, err := n.MIDIKey()
			if err != nil {
				continue
			}
			res = append(res, key)
		}
	}
	return res
}

func (s Scale) Contains(c pitch.Class) bool {
	return slices.Contains(s.PitchClasses(), c)
}

// FieldDegree is one step of a harmonic field. Err wraps chord.ErrNoMatch
// when the stacked tones do not form a known chord.
type FieldDegree struct {
	Number    int
	Root      pitch.Class
	Intervals []interval.Interval
	Chord     chord.Chord
	Err       error
}

// FieldError lists the degrees, counted from 1, that have no chord.
type FieldError struct {
	Scale   Scale
	Shape   chord.Shape
	Degrees []int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v %v field: no chord on degrees %v", e.Scale, e.Shape, e.Degrees)
}

func (e *FieldError) Unwrap() error {
	return chord.ErrNoMatch
}

// FieldDegrees builds one entry of the given shape on every scale degree.
// Chord tones are taken from the scale itself by stacking every other
// degree, so the quality of each chord follows the scale (the seventh
// degree of a major scale gives a diminished triad). Degrees that do not
// stack into a known chord keep their intervals and carry an error.
func (s Scale) FieldDegrees(shape chord.Shape) []FieldDegree {
	intervals := s.Type.Intervals()
	size := len(intervals)
	res := make([]FieldDegree, 0, size)
	for degree, base := range intervals {
		var stacked []interval.Interval
		for k := 0; k < shape.Tones(); k++ {
			j := degree + 2*k
			octaves := j / size
			i := intervals[j%size]
			stacked = append(stacked, interval.New(
				i.Degree-base.Degree+octaves*interval.Octave.Degree,
				i.Halfstep-base.Halfstep+octaves*interval.Octave.Halfstep,
			))
		}
		fd := FieldDegree{Number: degree + 1, Root: s.Key.Next(base), Intervals: stacked}
		fd.Chord, fd.Err = chord.FromIntervals(fd.Root, stacked)
		res = append(res, fd)
	}
	return res
}

// HarmonicField is the chord on every degree, in scale order. If any degree
// has no chord it returns a *FieldError naming them; FieldDegrees keeps the
// chords that do exist.
func (s Scale) HarmonicField(shape chord.Shape) ([]chord.Chord, error) {
	var res []chord.Chord
	var missing []int
	for _, fd := range s.FieldDegrees(shape) {
		if fd.Err != nil {
			missing = append(missing, fd.Number)
			continue
		}
		res = append(res, fd.Chord)
	}
	if len(missing) > 0 {
		return nil, &FieldError{Scale: s, Shape: shape, Degrees: missing}
	}
	return res, nil
}

func (s Scale) String() string {
	return fmt.Sprintf("%v %v", s.Key, s.Type)
}
