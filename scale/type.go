package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/harmonics/interval"
	"golang.org/x/exp/slices"
)

var ErrNoMatch = errors.New("no scale type matches intervals")

type kind int

const (
	custom kind = iota
	major
	minor
	harmonicMinor
	melodicMinor
	dorian
	phrygian
	lydian
	mixolydian
	locrian
	pentatonicMajor
	pentatonicMinor
	blues
	wholeTone
	chromatic
)

// Type is either one of the named scales or a custom interval sequence.
type Type struct {
	kind      kind
	name      string
	intervals []interval.Interval
}

var (
	Major           = Type{kind: major}
	Minor           = Type{kind: minor}
	HarmonicMinor   = Type{kind: harmonicMinor}
	MelodicMinor    = Type{kind: melodicMinor}
	Dorian          = Type{kind: dorian}
	Phrygian        = Type{kind: phrygian}
	Lydian          = Type{kind: lydian}
	Mixolydian      = Type{kind: mixolydian}
	Locrian         = Type{kind: locrian}
	PentatonicMajor = Type{kind: pentatonicMajor}
	PentatonicMinor = Type{kind: pentatonicMinor}
	Blues           = Type{kind: blues}
	WholeTone       = Type{kind: wholeTone}
	Chromatic       = Type{kind: chromatic}
)

var Named = []Type{
	Major, Minor, HarmonicMinor, MelodicMinor,
	Dorian, Phrygian, Lydian, Mixolydian, Locrian,
	PentatonicMajor, PentatonicMinor, Blues, WholeTone, Chromatic,
}

// Custom builds an unnamed scale. A leading unison is added when missing
// and the intervals are sorted so that the notes ascend.
func Custom(name string, intervals ...interval.Interval) Type {
	return Type{kind: custom, name: name, intervals: interval.Normalize(intervals)}
}

// FromTones builds a custom scale from consecutive steps. The step that
// would close the octave can be left out.
func FromTones(name string, tones ...interval.Tone) Type {
	var intervals []interval.Interval
	current := interval.Unison
	for _, t := range tones {
		current = current.Add(t.Interval())
		if current.Halfstep >= interval.Octave.Halfstep {
			break
		}
		intervals = append(intervals, current)
	}
	return Custom(name, intervals...)
}

func (t Type) Intervals() []interval.Interval {
	switch t.kind {
	case major:
		return stack(2, 2, 1, 2, 2, 2)
	case minor:
		return stack(2, 1, 2, 2, 1, 2)
	case harmonicMinor:
		return stack(2, 1, 2, 2, 1, 3)
	case melodicMinor:
		return stack(2, 1, 2, 2, 2, 2)
	case dorian:
		return stack(2, 1, 2, 2, 2, 1)
	case phrygian:
		return stack(1, 2, 2, 2, 1, 2)
	case lydian:
		return stack(2, 2, 2, 1, 2, 2)
	case mixolydian:
		return stack(2, 2, 1, 2, 2, 1)
	case locrian:
		return stack(1, 2, 2, 1, 2, 2)
	case pentatonicMajor:
		return []interval.Interval{interval.Unison, interval.MajorSecond, interval.MajorThird, interval.PerfectFifth, interval.MajorSixth}
	case pentatonicMinor:
		return []interval.Interval{interval.Unison, interval.MinorThird, interval.PerfectFourth, interval.PerfectFifth, interval.MinorSeventh}
	case blues:
		return []interval.Interval{interval.Unison, interval.MinorThird, interval.PerfectFourth, interval.DiminishedFifth, interval.PerfectFifth, interval.MinorSeventh}
	case wholeTone:
		return []interval.Interval{interval.Unison, interval.MajorSecond, interval.MajorThird, interval.AugmentedFourth, interval.AugmentedFifth, interval.MinorSeventh}
	case chromatic:
		return []interval.Interval{
			interval.Unison, interval.MinorSecond, interval.MajorSecond, interval.MinorThird,
			interval.MajorThird, interval.PerfectFourth, interval.AugmentedFourth, interval.PerfectFifth,
			interval.MinorSixth, interval.MajorSixth, interval.MinorSeventh, interval.MajorSeventh,
		}
	case custom:
		return append([]interval.Interval(nil), t.intervals...)
	}
	panic(fmt.Sprintf("scale: unhandled kind %d", t.kind))
}

// stack turns heptatonic step sizes into intervals, one degree per step.
func stack(steps ...int) []interval.Interval {
	res := []interval.Interval{interval.Unison}
	halfstep := 0
	for i, s := range steps {
		halfstep += s
		res = append(res, interval.New(i+1, halfstep))
	}
	return res
}

func (t Type) Equal(o Type) bool {
	return slices.Equal(t.Intervals(), o.Intervals())
}

func (t Type) IsCustom() bool {
	return t.kind == custom
}

func (t Type) String() string {
	switch t.kind {
	case major:
		return "major"
	case minor:
		return "minor"
	case harmonicMinor:
		return "harmonic minor"
	case melodicMinor:
		return "melodic minor"
	case dorian:
		return "dorian"
	case phrygian:
		return "phrygian"
	case lydian:
		return "lydian"
	case mixolydian:
		return "mixolydian"
	case locrian:
		return "locrian"
	case pentatonicMajor:
		return "major pentatonic"
	case pentatonicMinor:
		return "minor pentatonic"
	case blues:
		return "blues"
	case wholeTone:
		return "whole tone"
	case chromatic:
		return "chromatic"
	}
	if t.name == "" {
		return "custom"
	}
	return t.name
}

// Match returns the named scale with exactly these intervals. Unison may be
// left out and the order is normalized to ascending pitch.
func Match(intervals []interval.Interval) (Type, error) {
	want := interval.Normalize(intervals)
	for _, t := range Named {
		if slices.Equal(t.Intervals(), want) {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("%v: %w", intervals, ErrNoMatch)
}
