package event

import (
	"fmt"
	"time"

	"github.com/jsphweid/harmonics/note"
	"github.com/jsphweid/harmonics/tempo"
	"gitlab.com/gomidi/midi/v2"
)

// Event is a note to be played for a note value.
type Event struct {
	Note     note.Note
	Value    tempo.NoteValue
	Velocity uint8
}

// Rendered holds the MIDI messages for an event and how long to wait
// between them.
type Rendered struct {
	On     midi.Message
	Off    midi.Message
	Length time.Duration
}

func New(n note.Note, v tempo.NoteValue, velocity uint8) Event {
	return Event{Note: n, Value: v, Velocity: velocity}
}

// Render fails when the note has no MIDI key.
func (e Event) Render(t tempo.Tempo, channel uint8) (Rendered, error) {
	key, err := e.Note.MIDIKey()
	if err != nil {
		return Rendered{}, fmt.Errorf("rendering %v: %w", e.Note, err)
	}
	return Rendered{
		On:     midi.NoteOn(channel, uint8(key), e.Velocity),
		Off:    midi.NoteOff(channel, uint8(key)),
		Length: t.Duration(e.Value),
	}, nil
}

// RenderAll renders a chord or melody step where all events start together.
func RenderAll(events []Event, t tempo.Tempo, channel uint8) ([]Rendered, error) {
	var res []Rendered
	for _, e := range events {
		r, err := e.Render(t, channel)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// FromNotes gives every note the same value and velocity.
func FromNotes(notes []note.Note, v tempo.NoteValue, velocity uint8) []Event {
	res := make([]Event, len(notes))
	for i, n := range notes {
		res[i] = New(n, v, velocity)
	}
	return res
}
