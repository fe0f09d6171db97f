package note

import (
	"strconv"

	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/pkg/errors"
)

var ErrMalformedNoteString = errors.New("malformed note string")

// lowest clip in the playback bank is Ab3
const clipBase = 56

// Parse reads "root b/# octave" strings such as e5, C#4 or Bb5.
func Parse(s string) (model.Note, error) {
	if len(s) != 2 && len(s) != 3 {
		return model.Note{}, errors.Wrapf(ErrMalformedNoteString, "%q", s)
	}
	l, err := pitch.ParseLetter(s[:1])
	if err != nil {
		return model.Note{}, errors.Wrapf(err, "note %q", s)
	}

	acc := pitch.Natural
	if len(s) == 3 {
		switch s[1] {
		case 'b':
			acc = pitch.Flat
		case '#':
			acc = pitch.Sharp
		default:
			return model.Note{}, errors.Wrapf(ErrMalformedNoteString, "%q has no accidental in the middle", s)
		}
	}

	octave, err := strconv.Atoi(s[len(s)-1:])
	if err != nil {
		return model.Note{}, errors.Wrapf(ErrMalformedNoteString, "%q has no octave digit", s)
	}

	return model.Note{
		Spelling: pitch.Spelling{Letter: l, Accidental: acc},
		Octave:   octave,
	}, nil
}

// String renders the parseable form, e.g. "C#4".
func String(n model.Note) string {
	return n.Spelling.String() + strconv.Itoa(n.Octave)
}

// Format renders the display form, e.g. "C♯4".
func Format(n model.Note) string {
	return n.Spelling.Pretty() + strconv.Itoa(n.Octave)
}

// Key is the MIDI key number, C4 = 60. Accidentals are applied after the
// octave, so B#4 sounds as C5.
func Key(n model.Note) uint8 {
	// A and B belong to the octave that starts at the C below them
	fromC := int(n.Spelling.Letter.PitchClass()) - int(pitch.C.PitchClass())
	if fromC < 0 {
		fromC += 12
	}
	return uint8(12*(n.Octave+1) + fromC + n.Spelling.Accidental.Shift())
}

// FromKey spells a MIDI key with the flat-preferring name.
func FromKey(key uint8) model.Note {
	fromC := int(key) % 12
	return model.Note{
		Spelling: pitch.C.PitchClass().Add(fromC).Spelling(),
		Octave:   int(key)/12 - 1,
	}
}

// ClipIndex is the position of the note in a playback bank of short clips
// that starts at Ab3.
func ClipIndex(n model.Note) int {
	return int(Key(n)) - clipBase
}
