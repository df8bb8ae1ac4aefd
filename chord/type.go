package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/harmonics/interval"
	"golang.org/x/exp/slices"
)

var ErrNoMatch = errors.New("no chord type matches intervals")

type Third int

const (
	MajorThird Third = iota
	MinorThird
)

func (t Third) Interval() interval.Interval {
	switch t {
	case MinorThird:
		return interval.MinorThird
	default:
		return interval.MajorThird
	}
}

// Fifth defaults to perfect.
type Fifth int

const (
	PerfectFifth Fifth = iota
	DiminishedFifth
	AugmentedFifth
)

func (f Fifth) Interval() interval.Interval {
	switch f {
	case DiminishedFifth:
		return interval.DiminishedFifth
	case AugmentedFifth:
		return interval.AugmentedFifth
	default:
		return interval.PerfectFifth
	}
}

type Seventh int

const (
	NoSeventh Seventh = iota
	DominantSeventh
	MajorSeventh
	DiminishedSeventh
)

func (s Seventh) Interval() (interval.Interval, bool) {
	switch s {
	case DominantSeventh:
		return interval.MinorSeventh, true
	case MajorSeventh:
		return interval.MajorSeventh, true
	case DiminishedSeventh:
		return interval.DiminishedSeventh, true
	}
	return interval.Interval{}, false
}

type Degree int

const (
	Ninth Degree = iota
	Eleventh
	Thirteenth
)

type Accidental int

const (
	Natural Accidental = iota
	Flat
	Sharp
)

func (a Accidental) String() string {
	switch a {
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	}
	return ""
}

// Extension is a 9th, 11th or 13th above the root, optionally altered by a
// halfstep.
type Extension struct {
	Degree     Degree
	Accidental Accidental
}

func (e Extension) Interval() interval.Interval {
	var i interval.Interval
	switch e.Degree {
	case Ninth:
		i = interval.New(8, 14)
	case Eleventh:
		i = interval.New(10, 17)
	case Thirteenth:
		i = interval.New(12, 21)
	}
	switch e.Accidental {
	case Flat:
		i.Halfstep--
	case Sharp:
		i.Halfstep++
	}
	return i
}

func (e Extension) String() string {
	var n int
	switch e.Degree {
	case Ninth:
		n = 9
	case Eleventh:
		n = 11
	case Thirteenth:
		n = 13
	}
	return fmt.Sprintf("%v%d", e.Accidental, n)
}

// Type describes a chord independently of its root. Two types are the same
// chord when Intervals returns the same set, which Equal checks.
type Type struct {
	Third      Third
	Fifth      Fifth
	Seventh    Seventh
	Extensions []Extension
}

// Intervals returns the chord tones above the root, starting at unison and
// ascending in pitch. An extension degree listed twice is only kept once.
func (t Type) Intervals() []interval.Interval {
	res := []interval.Interval{interval.Unison, t.Third.Interval(), t.Fifth.Interval()}
	if seventh, ok := t.Seventh.Interval(); ok {
		res = append(res, seventh)
	}
	exts := t.sortedExtensions()
	for _, e := range exts {
		res = append(res, e.Interval())
	}
	return res
}

func (t Type) sortedExtensions() []Extension {
	var exts []Extension
	seen := make(map[Degree]bool)
	for _, e := range t.Extensions {
		if seen[e.Degree] {
			continue
		}
		seen[e.Degree] = true
		exts = append(exts, e)
	}
	sort.Slice(exts, func(i, j int) bool {
		return exts[i].Degree < exts[j].Degree
	})
	return exts
}

func (t Type) Equal(o Type) bool {
	return slices.Equal(t.Intervals(), o.Intervals())
}

// Len is the number of chord tones, root included.
func (t Type) Len() int {
	return len(t.Intervals())
}

func (t Type) String() string {
	base := t.base()
	exts := t.sortedExtensions()
	if len(exts) == 0 {
		return base
	}
	labels := make([]string, len(exts))
	for i, e := range exts {
		labels[i] = e.String()
	}
	if t.Seventh == NoSeventh {
		return base + "(add" + strings.Join(labels, ",add") + ")"
	}
	return base + "(" + strings.Join(labels, ",") + ")"
}

func (t Type) base() string {
	switch {
	case t.Third == MajorThird && t.Fifth == PerfectFifth && t.Seventh == DominantSeventh:
		return "7"
	case t.Third == MajorThird && t.Fifth == PerfectFifth && t.Seventh == MajorSeventh:
		return "maj7"
	case t.Third == MinorThird && t.Fifth == PerfectFifth && t.Seventh == DominantSeventh:
		return "min7"
	case t.Third == MinorThird && t.Fifth == PerfectFifth && t.Seventh == MajorSeventh:
		return "minmaj7"
	case t.Third == MinorThird && t.Fifth == DiminishedFifth && t.Seventh == DominantSeventh:
		return "min7♭5"
	case t.Third == MinorThird && t.Fifth == DiminishedFifth && t.Seventh == DiminishedSeventh:
		return "dim7"
	case t.Third == MajorThird && t.Fifth == AugmentedFifth && t.Seventh == DominantSeventh:
		return "aug7"
	case t.Third == MajorThird && t.Fifth == AugmentedFifth && t.Seventh == MajorSeventh:
		return "augmaj7"
	}

	var triad string
	switch {
	case t.Third == MajorThird && t.Fifth == PerfectFifth:
		triad = "maj"
	case t.Third == MinorThird && t.Fifth == PerfectFifth:
		triad = "min"
	case t.Third == MinorThird && t.Fifth == DiminishedFifth:
		triad = "dim"
	case t.Third == MajorThird && t.Fifth == AugmentedFifth:
		triad = "aug"
	case t.Third == MajorThird && t.Fifth == DiminishedFifth:
		triad = "maj♭5"
	default:
		triad = "min♯5"
	}
	switch t.Seventh {
	case DominantSeventh:
		return triad + "7"
	case MajorSeventh:
		return triad + "maj7"
	case DiminishedSeventh:
		return triad + "dim7"
	}
	return triad
}

// Match finds the chord type whose intervals are exactly the given set. The
// root may be left out and order does not matter.
func Match(intervals []interval.Interval) (Type, error) {
	want := interval.Normalize(intervals)
	for _, t := range allTypes {
		if slices.Equal(t.Intervals(), want) {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("%v: %w", intervals, ErrNoMatch)
}

var allTypes = candidates()

func candidates() []Type {
	var extSets [][]Extension
	var build func(d Degree, acc []Extension)
	build = func(d Degree, acc []Extension) {
		if d > Thirteenth {
			extSets = append(extSets, append([]Extension(nil), acc...))
			return
		}
		build(d+1, acc)
		for _, a := range []Accidental{Natural, Flat, Sharp} {
			build(d+1, append(acc, Extension{Degree: d, Accidental: a}))
		}
	}
	build(Ninth, nil)

	var res []Type
	for _, third := range []Third{MajorThird, MinorThird} {
		for _, fifth := range []Fifth{PerfectFifth, DiminishedFifth, AugmentedFifth} {
			for _, seventh := range []Seventh{NoSeventh, DominantSeventh, MajorSeventh, DiminishedSeventh} {
				for _, exts := range extSets {
					res = append(res, Type{Third: third, Fifth: fifth, Seventh: seventh, Extensions: exts})
				}
			}
		}
	}
	return res
}
