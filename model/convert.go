package model

import (
	"github.com/jsphweid/harmonics/note"
)

// FromNote projects n for JSON. MIDIKey stays nil when n has no MIDI key.
func FromNote(n note.Note, a4 float64) NoteResponse {
	res := NoteResponse{
		Name:      n.String(),
		Class:     n.Class.String(),
		Octave:    n.Octave,
		PianoKey:  n.PianoKey(),
		Frequency: n.FrequencyAt(a4),
	}
	if key, err := n.MIDIKey(); err == nil {
		res.MIDIKey = &key
	}
	return res
}

func FromNotes(notes []note.Note, a4 float64) []NoteResponse {
	res := make([]NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = FromNote(n, a4)
	}
	return res
}
