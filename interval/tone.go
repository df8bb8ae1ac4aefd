package interval

// Tone is the coarse step unit scales are often written in.
type Tone int

const (
	HalfTone Tone = iota + 1
	WholeTone
	OneAndHalfTone
)

func (t Tone) Interval() Interval {
	switch t {
	case HalfTone:
		return MinorSecond
	case WholeTone:
		return MajorSecond
	case OneAndHalfTone:
		return AugmentedSecond
	}
	return Unison
}

func (t Tone) String() string {
	switch t {
	case HalfTone:
		return "half"
	case WholeTone:
		return "whole"
	case OneAndHalfTone:
		return "one and half"
	}
	return "unknown"
}

// Tone converts single-degree steps into tones. Any other interval has no
// tone representation.
func (i Interval) Tone() (Tone, bool) {
	if i.Degree != 1 {
		return 0, false
	}
	switch i.Halfstep {
	case 1:
		return HalfTone, true
	case 2:
		return WholeTone, true
	case 3:
		return OneAndHalfTone, true
	}
	return 0, false
}
