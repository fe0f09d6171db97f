package model

import "github.com/jsphweid/missingtone/pitch"

type ChordType int

const (
	Maj ChordType = iota
	Min
	Dim
	Aug
	Sus2
	Sus4
	Maj7
	Dom7
	Min7
	Dim7
	HDim7
)

// Regime decides how chord tones are spread over octaves.
type Regime int

const (
	// tones ascend close to the root
	Stacked Regime = iota
	// every tone picks its own octave, so any inversion can appear
	Free
)

type Note struct {
	Spelling pitch.Spelling
	Octave   int
}

type VisibleNote struct {
	Note
	StaffPosition float64
	Ledger        pitch.Ledger
}

type MissingAnswer struct {
	Index      int
	Spelling   pitch.Spelling
	PitchClass pitch.PitchClass

	// NOTE: only used for playback, the tone is never placed on the staff
	Octave int
}

type Chord struct {
	Root pitch.Spelling
	Type ChordType

	// every tone, root first, before one is dropped
	Tones   []pitch.Spelling
	Visible []VisibleNote
	Missing MissingAnswer

	// first surviving note; not the root when the root is the missing tone
	DisplayRoot Note

	// union of the visible notes' flags
	Ledger pitch.Ledger
}

type Verdict struct {
	Correct   bool
	Submitted pitch.Spelling
	Answer    pitch.Spelling
}
