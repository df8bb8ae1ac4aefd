package chord

// Shape is a family of chords built by stacking thirds, as used when
// building a harmonic field.
type Shape int

const (
	Triad Shape = iota
	SeventhShape
	NinthShape
	EleventhShape
	ThirteenthShape
)

// Tones is the number of stacked thirds, root included.
func (s Shape) Tones() int {
	switch s {
	case SeventhShape:
		return 4
	case NinthShape:
		return 5
	case EleventhShape:
		return 6
	case ThirteenthShape:
		return 7
	}
	return 3
}

func (s Shape) String() string {
	switch s {
	case SeventhShape:
		return "seventh"
	case NinthShape:
		return "ninth"
	case EleventhShape:
		return "eleventh"
	case ThirteenthShape:
		return "thirteenth"
	}
	return "triad"
}

func Shapes() []Shape {
	return []Shape{Triad, SeventhShape, NinthShape, EleventhShape, ThirteenthShape}
}
