package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReturnsPresetForKnownPairs(t *testing.T) {
	assert := assert.New(t)
	for _, p := range Presets() {
		i := New(p.Degree, p.Halfstep)
		assert.Equal(p, i)
		assert.True(i.IsPreset())
		assert.NotContains(i.String(), "custom")
	}
	assert.Len(Presets(), 17)
}

func TestNewKeepsCustomPairs(t *testing.T) {
	assert := assert.New(t)
	i := New(8, 14)
	assert.False(i.IsPreset())
	assert.Equal(8, i.Degree)
	assert.Equal(14, i.Halfstep)
	assert.Equal("custom(degree: 8, halfstep: 14)", i.String())
	assert.Equal(i, New(8, 14))
}

func TestNewTakesMagnitudes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MinorThird, New(-2, -3))
	assert.Equal(New(7, 12), New(-7, 12))
	i := New(math.MinInt, math.MinInt)
	assert.GreaterOrEqual(i.Degree, 0)
	assert.GreaterOrEqual(i.Halfstep, 0)
}

func TestPresetNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("minor third", MinorThird.String())
	assert.Equal("perfect fifth", New(4, 7).String())
	assert.Equal("unison", Unison.String())
}

func TestFromHalfsteps(t *testing.T) {
	cases := []struct {
		halfsteps int
		expected  Interval
	}{
		{0, Unison},
		{3, MinorThird},
		{-3, MinorThird},
		{6, DiminishedFifth},
		{12, Octave},
		{15, MinorThird},
		{24, Octave},
		{-19, PerfectFifth},
		{-12, Octave},
		// |math.MinInt| overflows; its remainder is 8
		{math.MinInt, MinorSixth},
		{math.MinInt + 1, PerfectFifth},
		{math.MaxInt, PerfectFifth},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, FromHalfsteps(c.halfsteps), "halfsteps=%d", c.halfsteps)
	}
}

func TestNormalize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		[]Interval{Unison, MajorThird, PerfectFifth},
		Normalize([]Interval{PerfectFifth, Unison, MajorThird, Unison}),
	)
	assert.Equal(
		[]Interval{Unison, AugmentedFourth, DiminishedFifth},
		Normalize([]Interval{DiminishedFifth, AugmentedFourth}),
	)
	assert.Equal([]Interval{Unison}, Normalize(nil))
}

func TestAddAndInvert(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(PerfectFifth, MinorThird.Add(MajorThird))
	assert.Equal(Octave, PerfectFifth.Add(PerfectFourth))
	assert.Equal(MinorSixth, MajorThird.Invert())
	assert.Equal(PerfectFourth, PerfectFifth.Invert())
	assert.Equal(MajorSecond, New(8, 14).Invert().Invert())
	assert.Equal(Unison, Unison.Invert())
}

func TestToneConversion(t *testing.T) {
	assert := assert.New(t)

	tone, ok := MinorSecond.Tone()
	assert.True(ok)
	assert.Equal(HalfTone, tone)

	tone, ok = MajorSecond.Tone()
	assert.True(ok)
	assert.Equal(WholeTone, tone)

	tone, ok = AugmentedSecond.Tone()
	assert.True(ok)
	assert.Equal(OneAndHalfTone, tone)

	_, ok = MinorThird.Tone()
	assert.False(ok)
	_, ok = PerfectFifth.Tone()
	assert.False(ok)

	for _, tone := range []Tone{HalfTone, WholeTone, OneAndHalfTone} {
		back, ok := tone.Interval().Tone()
		assert.True(ok)
		assert.Equal(tone, back)
	}
}
