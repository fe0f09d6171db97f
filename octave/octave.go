package octave

import (
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/util"
)

type Placement struct {
	Letter     pitch.Letter
	IsRoot     bool
	RootLetter pitch.Letter

	// only meaningful for non-root tones under the stacked regime
	RootOctave int
	Seventh    bool
}

// Assign picks the octave for one chord tone. Random ranges are half-open.
func Assign(rng util.Rand, regime model.Regime, p Placement) int {
	if regime == model.Free {
		return free(rng, p.Letter)
	}
	if p.IsRoot {
		return stackedRoot(rng, p.Letter, p.Seventh)
	}
	return stackedAbove(p)
}

func stackedRoot(rng util.Rand, l pitch.Letter, seventh bool) int {
	switch {
	case l <= pitch.B:
		return util.RandRange(rng, 3, 5)
	case l <= pitch.D, l <= pitch.F && !seventh:
		return util.RandRange(rng, 4, 6)
	}
	return 4
}

// tones that fall alphabetically below the root (but above B) wrap into the
// next octave so the chord keeps ascending
func stackedAbove(p Placement) int {
	if p.RootLetter <= pitch.B {
		return p.RootOctave + 1
	}
	if p.Letter < p.RootLetter && p.Letter > pitch.B {
		return p.RootOctave + 1
	}
	return p.RootOctave
}

func free(rng util.Rand, l pitch.Letter) int {
	switch {
	case l <= pitch.B:
		return util.RandRange(rng, 3, 6)
	case l == pitch.C:
		return util.RandRange(rng, 4, 7)
	}
	return util.RandRange(rng, 4, 6)
}
