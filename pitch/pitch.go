package pitch

import (
	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/interval"
	"github.com/jsphweid/harmonics/util"
)

// Class is one of the twelve equal-tempered pitch classes, numbered from C.
type Class int

const (
	C Class = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

var names = [constants.HalfstepsPerOctave]string{
	"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B",
}

func All() []Class {
	res := make([]Class, constants.HalfstepsPerOctave)
	for i := range res {
		res[i] = Class(i)
	}
	return res
}

// FromInt wraps any integer onto the circle of pitch classes.
func FromInt(n int) Class {
	return Class(util.Mod(n, constants.HalfstepsPerOctave))
}

// StepUp moves n halfsteps up. n is reduced to one octave first so that
// huge steps cannot overflow.
func (c Class) StepUp(n int) Class {
	return FromInt(int(c) + util.Mod(n, constants.HalfstepsPerOctave))
}

func (c Class) StepDown(n int) Class {
	return FromInt(int(c) - util.Mod(n, constants.HalfstepsPerOctave))
}

func (c Class) Next(i interval.Interval) Class {
	return c.StepUp(i.Halfstep)
}

func (c Class) Previous(i interval.Interval) Class {
	return c.StepDown(i.Halfstep)
}

// Distance counts halfsteps going up from c to o, in [0, 12).
func (c Class) Distance(o Class) int {
	return util.Mod(int(o)-int(c), constants.HalfstepsPerOctave)
}

func (c Class) String() string {
	return names[util.Mod(int(c), constants.HalfstepsPerOctave)]
}
