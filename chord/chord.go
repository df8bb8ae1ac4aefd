package chord

import (
	"fmt"

	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/interval"
	"github.com/jsphweid/harmonics/note"
	"github.com/jsphweid/harmonics/pitch"
	"github.com/jsphweid/harmonics/util"
	"golang.org/x/exp/slices"
)

type Chord struct {
	Type Type
	Key  pitch.Class
}

func New(t Type, key pitch.Class) Chord {
	return Chord{Type: t, Key: key}
}

// FromIntervals builds the chord on key whose type has exactly the given
// intervals. It fails with ErrNoMatch instead of inventing a type.
func FromIntervals(key pitch.Class, intervals []interval.Interval) (Chord, error) {
	t, err := Match(intervals)
	if err != nil {
		return Chord{}, fmt.Errorf("chord on %v: %w", key, err)
	}
	return New(t, key), nil
}

func (c Chord) PitchClasses() []pitch.Class {
	var res []pitch.Class
	for _, i := range c.Type.Intervals() {
		res = append(res, c.Key.Next(i))
	}
	return res
}

// Notes voices the chord in root position with the root in octave.
// Extensions stay above the seventh instead of folding into the octave.
func (c Chord) Notes(octave int) []note.Note {
	root := note.New(c.Key, octave)
	var res []note.Note
	for _, i := range c.Type.Intervals() {
		n := root.Add(i)
		if len(res) > 0 {
			n = above(n, res[len(res)-1])
		}
		res = append(res, n)
	}
	return res
}

// Inversions lists every inversion after root position. Inversion k moves
// the k lowest notes above the rest, each raised by whole octaves until it
// clears the note below it.
func (c Chord) Inversions(octave int) [][]note.Note {
	root := c.Notes(octave)
	var res [][]note.Note
	for k := 1; k < len(root); k++ {
		voicing := append([]note.Note(nil), root[k:]...)
		for _, n := range root[:k] {
			voicing = append(voicing, above(n, voicing[len(voicing)-1]))
		}
		res = append(res, voicing)
	}
	return res
}

// above raises n by the fewest whole octaves that put it higher than floor.
func above(n, floor note.Note) note.Note {
	gap := n.HalfstepsTo(floor)
	if gap < 0 {
		return n
	}
	octaves := util.FloorDiv(gap, constants.HalfstepsPerOctave) + 1
	return n.AddHalfsteps(octaves * constants.HalfstepsPerOctave)
}

func (c Chord) Equal(o Chord) bool {
	return c.Key == o.Key && slices.Equal(c.Notes(0), o.Notes(0))
}

func (c Chord) String() string {
	return c.Key.String() + c.Type.String()
}
