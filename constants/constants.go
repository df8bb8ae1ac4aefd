package constants

const HalfstepsPerOctave = 12

// Piano keys are numbered from 1; C of octave 0 sits on key 4 and the
// reference A on key 49.
const PianoKeyOffset = 4
const ReferencePianoKey = 49
const ReferenceFrequency = 440.0

// TODO: the top of the keyboard (key 88) is not enforced; notes above it
// still get a key number.
const LowestPianoKey = 1

const MinMIDIOctave = 0
const MaxMIDIOctave = 10
const MaxMIDIKey = 127

// Octaves accepted from users: the piano's lowest octave up to the top of
// the MIDI range.
const MinOctave = -1
const MaxOctave = 10
