package chord

import (
	"strings"

	"github.com/jsphweid/missingtone/interval"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/octave"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/util"
	"github.com/pkg/errors"
)

var ErrUnknownChordType = errors.New("unknown chord type")

type chordType struct {
	symbol  string
	name    string
	offsets []int
}

var types = map[model.ChordType]chordType{
	model.Maj:   {"Maj", "Major", []int{0, 4, 7}},
	model.Min:   {"Min", "Minor", []int{0, 3, 7}},
	model.Dim:   {"Dim", "Diminished", []int{0, 3, 6}},
	model.Aug:   {"Aug", "Augmented", []int{0, 4, 8}},
	model.Sus2:  {"Sus2", "Suspended 2nd", []int{0, 2, 7}},
	model.Sus4:  {"Sus4", "Suspended 4th", []int{0, 5, 7}},
	model.Maj7:  {"Maj7", "Major 7th", []int{0, 4, 7, 11}},
	model.Dom7:  {"Dom7", "7th", []int{0, 4, 7, 10}},
	model.Min7:  {"Min7", "Minor 7th", []int{0, 3, 7, 10}},
	model.Dim7:  {"Dim7", "Fully Diminished 7th", []int{0, 3, 6, 9}},
	model.HDim7: {"HDim7", "Half Diminished 7th", []int{0, 3, 6, 10}},
}

var bySymbol = func() map[string]model.ChordType {
	m := make(map[string]model.ChordType)
	for t, ct := range types {
		m[strings.ToLower(ct.symbol)] = t
	}
	return m
}()

func lookup(t model.ChordType) (chordType, error) {
	ct, ok := types[t]
	if !ok {
		return chordType{}, errors.Wrapf(ErrUnknownChordType, "%d", int(t))
	}
	return ct, nil
}

// ParseType accepts the short symbols ("Maj", "Min7", "HDim7", ...) in any case.
func ParseType(s string) (model.ChordType, error) {
	t, ok := bySymbol[strings.ToLower(s)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownChordType, "%q", s)
	}
	return t, nil
}

// Offsets returns the half-steps above the root of every tone, root first.
func Offsets(t model.ChordType) ([]int, error) {
	ct, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), ct.offsets...), nil
}

func Symbol(t model.ChordType) string {
	return types[t].symbol
}

func Name(t model.ChordType) string {
	return types[t].name
}

func IsSeventh(t model.ChordType) bool {
	return t >= model.Maj7
}

// Tones spells every tone of the chord, root first.
func Tones(root pitch.Spelling, t model.ChordType) ([]pitch.Spelling, error) {
	offsets, err := Offsets(t)
	if err != nil {
		return nil, err
	}
	tones := make([]pitch.Spelling, len(offsets))
	for i, off := range offsets {
		tones[i] = interval.Note(root, off)
	}
	return tones, nil
}

// Build spells the chord, drops one tone at random as the answer and voices
// the rest.
//
// The first draw picks the missing tone. Every tone, the missing one
// included, then gets an octave in order, so the root octave is known even
// when the root is the one left out.
func Build(rng util.Rand, root pitch.Spelling, t model.ChordType, regime model.Regime) (model.Chord, error) {
	tones, err := Tones(root, t)
	if err != nil {
		return model.Chord{}, err
	}

	c := model.Chord{
		Root:  root,
		Type:  t,
		Tones: tones,
	}
	missing := rng.Intn(len(tones))

	// Cb and Fb are voiced as B and E, so the stack follows tones[0]
	voiced := tones[0]
	rootOctave := -1
	for i, s := range tones {
		oct := octave.Assign(rng, regime, octave.Placement{
			Letter:     s.Letter,
			IsRoot:     s.Letter == voiced.Letter,
			RootLetter: voiced.Letter,
			RootOctave: rootOctave,
			Seventh:    IsSeventh(t),
		})
		if i == 0 {
			rootOctave = oct
		}

		if i == missing {
			c.Missing = model.MissingAnswer{
				Index:      i,
				Spelling:   s,
				PitchClass: s.PitchClass(),
				Octave:     oct,
			}
			continue
		}

		pos := pitch.StaffPosition(s.Letter, oct)
		vn := model.VisibleNote{
			Note:          model.Note{Spelling: s, Octave: oct},
			StaffPosition: pos,
			Ledger:        pitch.LedgerFor(pos),
		}
		c.Visible = append(c.Visible, vn)
		c.Ledger = c.Ledger.Merge(vn.Ledger)
	}
	c.DisplayRoot = c.Visible[0].Note

	return c, nil
}
