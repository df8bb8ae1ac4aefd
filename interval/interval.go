package interval

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/util"
)

// Interval is the distance between two pitches counted both in scale
// degrees and in halfsteps. Two intervals are equal when both counts match,
// so a preset and New with the same pair compare equal with ==.
type Interval struct {
	Degree   int
	Halfstep int
}

var (
	Unison            = Interval{0, 0}
	MinorSecond       = Interval{1, 1}
	MajorSecond       = Interval{1, 2}
	AugmentedSecond   = Interval{1, 3}
	MinorThird        = Interval{2, 3}
	MajorThird        = Interval{2, 4}
	PerfectFourth     = Interval{3, 5}
	AugmentedFourth   = Interval{3, 6}
	DiminishedFifth   = Interval{4, 6}
	PerfectFifth      = Interval{4, 7}
	AugmentedFifth    = Interval{4, 8}
	MinorSixth        = Interval{5, 8}
	MajorSixth        = Interval{5, 9}
	DiminishedSeventh = Interval{6, 9}
	MinorSeventh      = Interval{6, 10}
	MajorSeventh      = Interval{6, 11}
	Octave            = Interval{7, 12}
)

type preset struct {
	interval Interval
	name     string
}

var presets = []preset{
	{Unison, "unison"},
	{MinorSecond, "minor second"},
	{MajorSecond, "major second"},
	{AugmentedSecond, "augmented second"},
	{MinorThird, "minor third"},
	{MajorThird, "major third"},
	{PerfectFourth, "perfect fourth"},
	{AugmentedFourth, "augmented fourth"},
	{DiminishedFifth, "diminished fifth"},
	{PerfectFifth, "perfect fifth"},
	{AugmentedFifth, "augmented fifth"},
	{MinorSixth, "minor sixth"},
	{MajorSixth, "major sixth"},
	{DiminishedSeventh, "diminished seventh"},
	{MinorSeventh, "minor seventh"},
	{MajorSeventh, "major seventh"},
	{Octave, "octave"},
}

// byHalfstep picks the spelling used when only a halfstep count is known.
var byHalfstep = [constants.HalfstepsPerOctave + 1]Interval{
	Unison,
	MinorSecond,
	MajorSecond,
	MinorThird,
	MajorThird,
	PerfectFourth,
	DiminishedFifth,
	PerfectFifth,
	MinorSixth,
	MajorSixth,
	MinorSeventh,
	MajorSeventh,
	Octave,
}

// New returns the interval spanning degree scale steps and halfstep
// semitones. Pairs that do not belong to a named preset are kept verbatim.
// Intervals have no direction, so negative counts are taken by magnitude.
func New(degree, halfstep int) Interval {
	return Interval{Degree: magnitude(degree), Halfstep: magnitude(halfstep)}
}

// magnitude is util.Abs saturated at math.MaxInt.
func magnitude(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	return util.Abs(n)
}

// Presets lists the named intervals from unison to octave.
func Presets() []Interval {
	res := make([]Interval, len(presets))
	for i, p := range presets {
		res[i] = p.interval
	}
	return res
}

// FromHalfsteps maps a distance in halfsteps onto an interval class.
// Negative distances count the same as positive ones and anything wider
// than an octave is folded back into it, with whole octaves reported as
// Octave.
func FromHalfsteps(halfsteps int) Interval {
	// the truncated remainder is always smaller than an octave, so taking its
	// magnitude cannot overflow
	h := util.Abs(halfsteps % constants.HalfstepsPerOctave)
	if h == 0 && halfsteps != 0 {
		h = constants.HalfstepsPerOctave
	}
	return byHalfstep[h]
}

// Normalize puts a set of intervals in canonical order: one leading unison
// whether or not it was given, then ascending halfsteps, with ties broken
// by degree.
func Normalize(intervals []Interval) []Interval {
	res := []Interval{Unison}
	for _, i := range intervals {
		if i != Unison {
			res = append(res, i)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Halfstep != res[j].Halfstep {
			return res[i].Halfstep < res[j].Halfstep
		}
		return res[i].Degree < res[j].Degree
	})
	return res
}

// IsPreset reports whether i is one of the named intervals.
func (i Interval) IsPreset() bool {
	_, ok := i.presetName()
	return ok
}

func (i Interval) presetName() (string, bool) {
	for _, p := range presets {
		if p.interval == i {
			return p.name, true
		}
	}
	return "", false
}

// Add stacks o on top of i.
func (i Interval) Add(o Interval) Interval {
	return New(i.Degree+o.Degree, i.Halfstep+o.Halfstep)
}

// Invert returns the complement of i within an octave, e.g. a major third
// becomes a minor sixth. Compound intervals are reduced first.
func (i Interval) Invert() Interval {
	degree := util.Mod(i.Degree, Octave.Degree)
	halfstep := util.Mod(i.Halfstep, Octave.Halfstep)
	if degree == 0 && halfstep == 0 {
		return i
	}
	return New(Octave.Degree-degree, Octave.Halfstep-halfstep)
}

func (i Interval) String() string {
	if name, ok := i.presetName(); ok {
		return name
	}
	return fmt.Sprintf("custom(degree: %d, halfstep: %d)", i.Degree, i.Halfstep)
}
