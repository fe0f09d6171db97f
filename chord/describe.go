package chord

import (
	"fmt"

	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
)

func article(s pitch.Spelling, capital bool) string {
	a := "a"
	if s.StartsWithVowel() {
		a = "an"
	}
	if capital {
		return "A" + a[1:]
	}
	return a
}

// Describe names the chord the way the player reads it, e.g. "Ab Major".
func Describe(c model.Chord) string {
	return c.Root.String() + " " + Name(c.Type)
}

// Prompt is the round's instruction. The article follows the spelled root,
// not the display root.
func Prompt(c model.Chord) string {
	return fmt.Sprintf("Make %s %s chord", article(c.Root, false), Describe(c))
}

// Explain is shown after a wrong answer.
func Explain(c model.Chord) string {
	return fmt.Sprintf("%s %s chord contains %s %s",
		article(c.Root, true), Describe(c), article(c.Missing.Spelling, false), c.Missing.Spelling)
}
