package tempo

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidTempo         = errors.New("tempo must be a positive, finite bpm")
	ErrInvalidTimeSignature = errors.New("invalid time signature")
)

// Type is a note length as a fraction of a whole note. Values other than
// the named ones are allowed, e.g. Type(1.0/5).
type Type float64

const (
	DoubleWhole  Type = 2
	Whole        Type = 1
	Half         Type = 1.0 / 2
	Quarter      Type = 1.0 / 4
	Eighth       Type = 1.0 / 8
	Sixteenth    Type = 1.0 / 16
	ThirtySecond Type = 1.0 / 32
	SixtyFourth  Type = 1.0 / 64
)

func (t Type) String() string {
	switch t {
	case DoubleWhole:
		return "double whole"
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	case Eighth:
		return "eighth"
	case Sixteenth:
		return "sixteenth"
	case ThirtySecond:
		return "thirty-second"
	case SixtyFourth:
		return "sixty-fourth"
	}
	return fmt.Sprintf("%g of whole", float64(t))
}

type Modifier int

const (
	Default Modifier = iota
	Dotted
	DoubleDotted
	Triplet
	Quintuplet
)

func (m Modifier) Factor() float64 {
	switch m {
	case Dotted:
		return 1.5
	case DoubleDotted:
		return 1.75
	case Triplet:
		return 2.0 / 3
	case Quintuplet:
		return 4.0 / 5
	}
	return 1
}

func (m Modifier) String() string {
	switch m {
	case Dotted:
		return "dotted"
	case DoubleDotted:
		return "double dotted"
	case Triplet:
		return "triplet"
	case Quintuplet:
		return "quintuplet"
	}
	return ""
}

type NoteValue struct {
	Type     Type
	Modifier Modifier
}

func NewNoteValue(t Type, m Modifier) NoteValue {
	return NoteValue{Type: t, Modifier: m}
}

// Fraction of a whole note, modifier applied.
func (v NoteValue) Fraction() float64 {
	return float64(v.Type) * v.Modifier.Factor()
}

func (v NoteValue) String() string {
	if v.Modifier == Default {
		return v.Type.String()
	}
	return v.Modifier.String() + " " + v.Type.String()
}

type TimeSignature struct {
	Beats int
	Value Type
}

func NewTimeSignature(beats int, value Type) (TimeSignature, error) {
	if beats <= 0 || !(value > 0) || math.IsInf(float64(value), 1) {
		return TimeSignature{}, fmt.Errorf("%d/%g: %w", beats, 1/float64(value), ErrInvalidTimeSignature)
	}
	return TimeSignature{Beats: beats, Value: value}, nil
}

func (s TimeSignature) String() string {
	return fmt.Sprintf("%d/%g", s.Beats, 1/float64(s.Value))
}

type Tempo struct {
	Signature TimeSignature
	BPM       float64
}

func New(signature TimeSignature, bpm float64) (Tempo, error) {
	if !(bpm > 0) || math.IsInf(bpm, 1) {
		return Tempo{}, fmt.Errorf("%g bpm: %w", bpm, ErrInvalidTempo)
	}
	if signature.Beats <= 0 || !(signature.Value > 0) || math.IsInf(float64(signature.Value), 1) {
		return Tempo{}, fmt.Errorf("%v: %w", signature, ErrInvalidTimeSignature)
	}
	return Tempo{Signature: signature, BPM: bpm}, nil
}

// Seconds is the real length of v: one beat lasts 60/BPM seconds and the
// beat is the signature's note value.
func (t Tempo) Seconds(v NoteValue) float64 {
	return (60 / t.BPM) * (float64(v.Type) / float64(t.Signature.Value)) * v.Modifier.Factor()
}

func (t Tempo) Duration(v NoteValue) time.Duration {
	return time.Duration(t.Seconds(v) * float64(time.Second))
}

// BarSeconds is the length of one full measure.
func (t Tempo) BarSeconds() float64 {
	return float64(t.Signature.Beats) * t.Seconds(NoteValue{Type: t.Signature.Value})
}

func (t Tempo) String() string {
	return fmt.Sprintf("%v at %g bpm", t.Signature, t.BPM)
}
