// Package interval spells the notes reached by moving a number of half-steps
// away from a root.
package interval

import "github.com/jsphweid/missingtone/pitch"

// Note returns the spelling of the note halfSteps above root.
//
// The result starts as the flat-preferring name of the target pitch class.
// When the letter distance from the root has the wrong parity for a
// plausible third/fifth/seventh skip, the enharmonic spelling is used
// instead. This is a heuristic and misspells some augmented and diminished
// intervals.
func Note(root pitch.Spelling, halfSteps int) pitch.Spelling {
	safe := root
	if safe.Accidental == pitch.Sharp {
		safe = Enharmonic(safe)
	}
	note := safe.PitchClass().Add(halfSteps % 12).Spelling()

	r, n := root.Letter, note.Letter
	if (r < n && (n-r)%2 != 0) || (r > n && (r-n)%2 == 0) {
		return Enharmonic(note)
	}
	return note
}

var respellings = map[pitch.Spelling]pitch.Spelling{
	{Letter: pitch.E, Accidental: pitch.Sharp}:   {Letter: pitch.F},
	{Letter: pitch.F, Accidental: pitch.Natural}: {Letter: pitch.E, Accidental: pitch.Sharp},
	{Letter: pitch.F, Accidental: pitch.Flat}:    {Letter: pitch.E},
	{Letter: pitch.B, Accidental: pitch.Sharp}:   {Letter: pitch.C},
	{Letter: pitch.C, Accidental: pitch.Flat}:    {Letter: pitch.B},
	{Letter: pitch.C, Accidental: pitch.Natural}: {Letter: pitch.B, Accidental: pitch.Sharp},
}

// Enharmonic swaps a spelling for its enharmonic partner. Flats become the
// sharp of the letter below, sharps become the flat of the letter above, and
// the naturals other than C and F are returned unchanged. Fb and Cb map to
// E and B, which map back to themselves.
func Enharmonic(s pitch.Spelling) pitch.Spelling {
	if r, ok := respellings[s]; ok {
		return r
	}
	switch s.Accidental {
	case pitch.Flat:
		return pitch.Spelling{Letter: s.Letter.Prev(), Accidental: pitch.Sharp}
	case pitch.Sharp:
		return pitch.Spelling{Letter: s.Letter.Next(), Accidental: pitch.Flat}
	}
	return s
}
