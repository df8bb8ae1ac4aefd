package scale

import (
	"testing"

	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/interval"
	"github.com/jsphweid/harmonics/note"
	"github.com/jsphweid/harmonics/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorAndMinorOnC(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		[]pitch.Class{pitch.C, pitch.D, pitch.E, pitch.F, pitch.G, pitch.A, pitch.B},
		New(Major, pitch.C).PitchClasses(),
	)
	assert.Equal(
		[]pitch.Class{pitch.C, pitch.D, pitch.Eb, pitch.F, pitch.G, pitch.Ab, pitch.Bb},
		New(Minor, pitch.C).PitchClasses(),
	)
}

func TestIntervalsStartAtUnison(t *testing.T) {
	for _, st := range Named {
		t.Run(st.String(), func(t *testing.T) {
			intervals := st.Intervals()
			require.NotEmpty(t, intervals)
			assert.Equal(t, interval.Unison, intervals[0])
			for i := 1; i < len(intervals); i++ {
				assert.Less(t, intervals[i-1].Halfstep, intervals[i].Halfstep)
			}
		})
	}
}

func TestNotesCrossOctave(t *testing.T) {
	notes := New(Major, pitch.A).Notes(3)
	assert.Equal(t, []note.Note{
		note.New(pitch.A, 3),
		note.New(pitch.B, 3),
		note.New(pitch.Db, 4),
		note.New(pitch.D, 4),
		note.New(pitch.E, 4),
		note.New(pitch.Gb, 4),
		note.New(pitch.Ab, 4),
	}, notes)
}

func TestMIDIKeys(t *testing.T) {
	assert := assert.New(t)
	keys := New(Major, pitch.C).MIDIKeys()
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11, 12}, keys[:8])
	assert.Equal(127, keys[len(keys)-1])
	assert.Len(keys, 75)
	for i := 1; i < len(keys); i++ {
		assert.Less(keys[i-1], keys[i])
	}

	chromatic := New(Chromatic, pitch.C).MIDIKeys()
	assert.Len(chromatic, 128)
}

func TestContains(t *testing.T) {
	assert := assert.New(t)
	s := New(Major, pitch.G)
	assert.True(s.Contains(pitch.Gb))
	assert.False(s.Contains(pitch.F))
}

func TestTriadHarmonicFieldOfCMajor(t *testing.T) {
	field, err := New(Major, pitch.C).HarmonicField(chord.Triad)
	require.NoError(t, err)

	var labels []string
	for _, c := range field {
		labels = append(labels, c.String())
	}
	assert.Equal(t, []string{"Cmaj", "Dmin", "Emin", "Fmaj", "Gmaj", "Amin", "Bdim"}, labels)
	assert.Equal(t, chord.DiminishedFifth, field[6].Type.Fifth)
	assert.True(t, field[6].Equal(chord.New(chord.DiminishedTriad, pitch.B)))
}

func TestSeventhHarmonicFieldOfCMajor(t *testing.T) {
	field, err := New(Major, pitch.C).HarmonicField(chord.SeventhShape)
	require.NoError(t, err)

	var labels []string
	for _, c := range field {
		labels = append(labels, c.String())
	}
	assert.Equal(t, []string{"Cmaj7", "Dmin7", "Emin7", "Fmaj7", "G7", "Amin7", "Bmin7♭5"}, labels)
}

func TestHarmonicFieldUsesOnlyScaleTones(t *testing.T) {
	s := New(HarmonicMinor, pitch.A)
	for _, shape := range chord.Shapes() {
		field, err := s.HarmonicField(shape)
		require.NoError(t, err, shape.String())
		require.Len(t, field, 7)
		for _, c := range field {
			assert.Len(t, c.Type.Intervals(), shape.Tones())
			for _, p := range c.PitchClasses() {
				assert.True(t, s.Contains(p), "%v in %v", p, c)
			}
		}
	}
}

func TestHarmonicMinorSevenths(t *testing.T) {
	field, err := New(HarmonicMinor, pitch.C).HarmonicField(chord.SeventhShape)
	require.NoError(t, err)
	assert.True(t, field[0].Type.Equal(chord.MinorMajor7))
	assert.True(t, field[2].Type.Equal(chord.Type{Third: chord.MajorThird, Fifth: chord.AugmentedFifth, Seventh: chord.MajorSeventh}))
	assert.True(t, field[6].Type.Equal(chord.Diminished7))
}

func TestHarmonicFieldFailsForNonTertianScale(t *testing.T) {
	_, err := New(Chromatic, pitch.C).HarmonicField(chord.Triad)
	assert.ErrorIs(t, err, chord.ErrNoMatch)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Len(t, fieldErr.Degrees, 12)
}

func TestFieldDegreesKeepsMatchedChords(t *testing.T) {
	assert := assert.New(t)
	s := New(Blues, pitch.C)
	degrees := s.FieldDegrees(chord.Triad)
	require.Len(t, degrees, 6)

	for i, fd := range degrees {
		assert.Equal(i+1, fd.Number)
		assert.Len(fd.Intervals, 3)
		if fd.Number == 2 {
			assert.NoError(fd.Err)
			assert.Equal("E♭min", fd.Chord.String())
			continue
		}
		assert.ErrorIs(fd.Err, chord.ErrNoMatch, "degree %d", fd.Number)
	}
	assert.Equal(pitch.Gb, degrees[3].Root)

	_, err := s.HarmonicField(chord.Triad)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal([]int{1, 3, 4, 5, 6}, fieldErr.Degrees)
	assert.Contains(err.Error(), "no chord on degrees [1 3 4 5 6]")
}

func TestCustomAndFromTones(t *testing.T) {
	assert := assert.New(t)
	built := FromTones("my major",
		interval.WholeTone, interval.WholeTone, interval.HalfTone,
		interval.WholeTone, interval.WholeTone, interval.WholeTone, interval.HalfTone,
	)
	assert.True(built.IsCustom())
	assert.True(built.Equal(Major))
	assert.Equal("my major", built.String())

	hungarian := Custom("", interval.MajorSecond, interval.MinorThird, interval.AugmentedFourth, interval.PerfectFifth, interval.MinorSixth, interval.MajorSeventh)
	assert.Equal(interval.Unison, hungarian.Intervals()[0])
	assert.Equal("custom", hungarian.String())

	shuffled := Custom("", interval.PerfectFifth, interval.MajorThird, interval.MajorSecond)
	assert.Equal([]interval.Interval{interval.Unison, interval.MajorSecond, interval.MajorThird, interval.PerfectFifth}, shuffled.Intervals())
	notes := New(shuffled, pitch.C).Notes(4)
	for i := 1; i < len(notes); i++ {
		assert.True(notes[i-1].Less(notes[i]), "%v", notes)
	}
}

func TestMatch(t *testing.T) {
	assert := assert.New(t)
	got, err := Match([]interval.Interval{
		interval.MajorSixth, interval.MajorSecond, interval.MajorThird, interval.PerfectFifth,
	})
	assert.NoError(err)
	assert.Equal("major pentatonic", got.String())

	_, err = Match([]interval.Interval{interval.MajorSecond, interval.MinorSixth})
	assert.ErrorIs(err, ErrNoMatch)
}

func TestString(t *testing.T) {
	assert.Equal(t, "E♭ dorian", New(Dorian, pitch.Eb).String())
}
