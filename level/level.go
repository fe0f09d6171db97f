package level

import (
	"strings"
	"time"

	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrUnknownMode = errors.New("unknown mode")

var Modes = []model.Mode{model.Easy, model.Medium, model.Hard, model.Jazz}

func spellings(names ...string) []pitch.Spelling {
	res := make([]pitch.Spelling, len(names))
	for i, n := range names {
		res[i] = pitch.MustSpelling(n)
	}
	return res
}

var allRoots = spellings("C", "C#", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B")

var levels = map[model.Mode]model.Level{
	model.Easy: {
		Mode:      model.Easy,
		Roots:     spellings("C", "G", "D", "A", "F", "Bb", "Ab"),
		Types:     []model.ChordType{model.Maj, model.Min},
		RoundTime: 5 * time.Second,
		Regime:    model.Stacked,
	},
	model.Medium: {
		Mode:      model.Medium,
		Roots:     allRoots,
		Types:     []model.ChordType{model.Maj, model.Min},
		RoundTime: 5 * time.Second,
		Regime:    model.Stacked,
	},
	model.Hard: {
		Mode:      model.Hard,
		Roots:     allRoots,
		Types:     []model.ChordType{model.Maj, model.Min, model.Dim, model.Aug},
		RoundTime: 8 * time.Second,
		Regime:    model.Free,
	},
	model.Jazz: {
		Mode:      model.Jazz,
		Roots:     allRoots,
		Types:     []model.ChordType{model.Sus2, model.Sus4, model.Maj7, model.Dom7, model.Min7, model.Dim7, model.HDim7},
		RoundTime: 8 * time.Second,
		Regime:    model.Free,
	},
}

func ParseMode(s string) (model.Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

func Get(m model.Mode) (model.Level, error) {
	l, ok := levels[m]
	if !ok {
		return model.Level{}, errors.Wrapf(ErrUnknownMode, "%d", int(m))
	}
	return l, nil
}

// Pick draws the root, then the chord type.
func Pick(rng util.Rand, l model.Level) (pitch.Spelling, model.ChordType) {
	root := util.Choice(rng, l.Roots)
	return root, util.Choice(rng, l.Types)
}

func Allows(l model.Level, root pitch.Spelling, t model.ChordType) bool {
	return slices.Contains(l.Roots, root) && slices.Contains(l.Types, t)
}
