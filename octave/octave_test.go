package octave

import (
	"math/rand"
	"testing"

	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/util"
	"github.com/stretchr/testify/assert"
)

var letters = []pitch.Letter{pitch.A, pitch.B, pitch.C, pitch.D, pitch.E, pitch.F, pitch.G}

func collect(n int, draw func(rng util.Rand) int) map[int]bool {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		seen[draw(rng)] = true
	}
	return seen
}

func TestStackedRootRanges(t *testing.T) {
	cases := []struct {
		name     string
		letter   pitch.Letter
		seventh  bool
		expected map[int]bool
	}{
		{"A", pitch.A, false, map[int]bool{3: true, 4: true}},
		{"B seventh", pitch.B, true, map[int]bool{3: true, 4: true}},
		{"C", pitch.C, true, map[int]bool{4: true, 5: true}},
		{"D", pitch.D, false, map[int]bool{4: true, 5: true}},
		{"E triad", pitch.E, false, map[int]bool{4: true, 5: true}},
		{"F triad", pitch.F, false, map[int]bool{4: true, 5: true}},
		{"E seventh", pitch.E, true, map[int]bool{4: true}},
		{"F seventh", pitch.F, true, map[int]bool{4: true}},
		{"G", pitch.G, false, map[int]bool{4: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seen := collect(200, func(rng util.Rand) int {
				return Assign(rng, model.Stacked, Placement{Letter: c.letter, IsRoot: true, RootLetter: c.letter, Seventh: c.seventh})
			})
			assert.Equal(t, c.expected, seen)
		})
	}
}

func TestStackedNonRoot(t *testing.T) {
	cases := []struct {
		name     string
		letter   pitch.Letter
		root     pitch.Letter
		expected int
	}{
		{"root at or below B lifts every tone", pitch.E, pitch.A, 5},
		{"C over B root", pitch.C, pitch.B, 5},
		{"E over C root", pitch.E, pitch.C, 4},
		{"G over C root", pitch.G, pitch.C, 4},
		{"C over G root wraps", pitch.C, pitch.G, 5},
		{"D over G root wraps", pitch.D, pitch.G, 5},
		{"B over G root", pitch.B, pitch.G, 4},
		{"A over F root", pitch.A, pitch.F, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// non-root tones never draw
			rng := util.NewSequenceRand()
			got := Assign(rng, model.Stacked, Placement{Letter: c.letter, RootLetter: c.root, RootOctave: 4})
			assert.Equal(t, c.expected, got)
		})
	}
}

func TestStackedNonRootStaysWithinOneOctave(t *testing.T) {
	for _, root := range letters {
		for _, l := range letters {
			if l == root {
				continue
			}
			for rootOctave := 3; rootOctave <= 5; rootOctave++ {
				got := Assign(util.NewSequenceRand(), model.Stacked, Placement{Letter: l, RootLetter: root, RootOctave: rootOctave})
				assert.Contains(t, []int{rootOctave, rootOctave + 1}, got)
			}
		}
	}
}

func TestFreeRanges(t *testing.T) {
	cases := []struct {
		letter   pitch.Letter
		expected map[int]bool
	}{
		{pitch.A, map[int]bool{3: true, 4: true, 5: true}},
		{pitch.B, map[int]bool{3: true, 4: true, 5: true}},
		{pitch.C, map[int]bool{4: true, 5: true, 6: true}},
		{pitch.D, map[int]bool{4: true, 5: true}},
		{pitch.G, map[int]bool{4: true, 5: true}},
	}
	for _, c := range cases {
		t.Run(c.letter.String(), func(t *testing.T) {
			seen := collect(300, func(rng util.Rand) int {
				// root-ness does not matter in the free regime
				return Assign(rng, model.Free, Placement{Letter: c.letter, IsRoot: c.letter == pitch.C, RootLetter: pitch.C})
			})
			assert.Equal(t, c.expected, seen)
		})
	}
}
