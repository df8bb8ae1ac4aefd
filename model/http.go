package model

type NoteResponse struct {
	Name      string  `json:"name"`
	Class     string  `json:"class"`
	Octave    int     `json:"octave"`
	PianoKey  int     `json:"piano_key"`
	MIDIKey   *int    `json:"midi_key"`
	Frequency float64 `json:"frequency"`
}

type ChordResponse struct {
	Name       string           `json:"name"`
	Intervals  []string         `json:"intervals"`
	Notes      []NoteResponse   `json:"notes"`
	Inversions [][]NoteResponse `json:"inversions,omitempty"`
}

type ScaleResponse struct {
	Name          string   `json:"name"`
	PitchClasses  []string `json:"pitch_classes"`
	MIDIKeys      []int    `json:"midi_keys"`
	HarmonicField []string `json:"harmonic_field,omitempty"`
	// degrees, counted from 1, whose harmonic_field entry is empty
	UnmatchedDegrees []int `json:"unmatched_degrees,omitempty"`
}

type DurationResponse struct {
	Tempo   string  `json:"tempo"`
	Value   string  `json:"value"`
	Seconds float64 `json:"seconds"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
