package note

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/interval"
	"github.com/jsphweid/harmonics/pitch"
	"github.com/jsphweid/harmonics/util"
)

var ErrOutOfRange = errors.New("note out of MIDI range")

// Note is a pitch class in a given octave. Octaves change between B and C.
type Note struct {
	Class  pitch.Class
	Octave int
}

func New(class pitch.Class, octave int) Note {
	return Note{Class: class, Octave: octave}
}

// FromMIDIKey is the inverse of MIDIKey: key 0 is C of octave 0.
func FromMIDIKey(key int) (Note, error) {
	if key < 0 || key > constants.MaxMIDIKey {
		return Note{}, fmt.Errorf("key %d: %w", key, ErrOutOfRange)
	}
	return fromIndex(key), nil
}

func fromIndex(index int) Note {
	return Note{
		Class:  pitch.FromInt(index),
		Octave: util.FloorDiv(index, constants.HalfstepsPerOctave),
	}
}

// index is the unbounded linear pitch position, C0 = 0.
func (n Note) index() int {
	return n.Octave*constants.HalfstepsPerOctave + int(n.Class)
}

func (n Note) AddHalfsteps(halfsteps int) Note {
	return fromIndex(n.index() + halfsteps)
}

func (n Note) SubHalfsteps(halfsteps int) Note {
	return fromIndex(n.index() - halfsteps)
}

func (n Note) Add(i interval.Interval) Note {
	return n.AddHalfsteps(i.Halfstep)
}

func (n Note) Sub(i interval.Interval) Note {
	return n.SubHalfsteps(i.Halfstep)
}

// Distance is the interval class between n and o. It does not depend on
// which of the two notes is higher.
func (n Note) Distance(o Note) interval.Interval {
	return interval.FromHalfsteps(n.HalfstepsTo(o))
}

// HalfstepsTo counts the signed halfsteps from n up to o.
func (n Note) HalfstepsTo(o Note) int {
	return o.index() - n.index()
}

// Less orders notes by absolute pitch.
func (n Note) Less(o Note) bool {
	return n.index() < o.index()
}

// PianoKey numbers the 88 keys from A of octave -1 (key 1). Notes below
// the keyboard report key 0, so the lowest piano octave only holds A, B♭
// and B.
func (n Note) PianoKey() int {
	key := n.index() + constants.PianoKeyOffset
	if key < constants.LowestPianoKey {
		return 0
	}
	return key
}

func (n Note) MIDIKey() (int, error) {
	if n.Octave < constants.MinMIDIOctave || n.Octave > constants.MaxMIDIOctave {
		return 0, fmt.Errorf("%v: octave %d: %w", n, n.Octave, ErrOutOfRange)
	}
	key := n.index()
	if key > constants.MaxMIDIKey {
		return 0, fmt.Errorf("%v: key %d: %w", n, key, ErrOutOfRange)
	}
	return key, nil
}

// Frequency in Hz with key 49 tuned to 440 Hz.
func (n Note) Frequency() float64 {
	return n.FrequencyAt(constants.ReferenceFrequency)
}

// FrequencyAt uses reference as the pitch of piano key 49. The key is not
// clamped, so notes off the keyboard still get a frequency.
func (n Note) FrequencyAt(reference float64) float64 {
	key := n.index() + constants.PianoKeyOffset
	return reference * math.Pow(2, float64(key-constants.ReferencePianoKey)/12)
}

func (n Note) String() string {
	return fmt.Sprintf("%v%d", n.Class, n.Octave)
}
