package score

import (
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
)

// Evaluate compares the player's note against the chord's missing tone by
// pitch class, so any enharmonic spelling of the answer is accepted.
func Evaluate(letter pitch.Letter, accidental pitch.Accidental, c model.Chord) model.Verdict {
	submitted := pitch.Spelling{Letter: letter, Accidental: accidental}
	return model.Verdict{
		Correct:   submitted.PitchClass() == c.Missing.Spelling.PitchClass(),
		Submitted: submitted,
		Answer:    c.Missing.Spelling,
	}
}

// Tally is the running in-memory score of a session.
type Tally struct {
	Points int
	Rounds int
}

func (t *Tally) Record(v model.Verdict) {
	t.Rounds++
	if v.Correct {
		t.Points++
	}
}

func (t *Tally) Miss() {
	t.Rounds++
}
