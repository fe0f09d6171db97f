package pitch

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidLetter     = errors.New("invalid pitch letter")
	ErrInvalidAccidental = errors.New("invalid accidental")
)

// Letter is one of the seven natural note names, ordered A through G.
type Letter int

const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
)

const letterNames = "ABCDEFG"

// slot of each natural on the 12 slot wheel, see PitchClass
var naturals = [7]PitchClass{1, 3, 4, 6, 8, 9, 11}

func ParseLetter(s string) (Letter, error) {
	if len(s) != 1 {
		return 0, errors.Wrapf(ErrInvalidLetter, "%q", s)
	}
	i := strings.IndexByte(letterNames, strings.ToUpper(s)[0])
	if i < 0 {
		return 0, errors.Wrapf(ErrInvalidLetter, "%q", s)
	}
	return Letter(i), nil
}

func (l Letter) String() string {
	if l < A || l > G {
		return "?"
	}
	return string(letterNames[l])
}

// Next steps up one letter, wrapping G to A.
func (l Letter) Next() Letter {
	return (l + 1) % 7
}

// Prev steps down one letter, wrapping A to G.
func (l Letter) Prev() Letter {
	return (l + 6) % 7
}

func (l Letter) PitchClass() PitchClass {
	return naturals[l]
}

// PitchClassOf looks up the pitch class of a natural letter name.
func PitchClassOf(s string) (PitchClass, error) {
	l, err := ParseLetter(s)
	if err != nil {
		return 0, err
	}
	return l.PitchClass(), nil
}

type Accidental int

const (
	Natural Accidental = iota
	Flat
	Sharp
)

// Shift is the number of half-steps the accidental moves a natural.
func (a Accidental) Shift() int {
	switch a {
	case Flat:
		return -1
	case Sharp:
		return 1
	}
	return 0
}

func (a Accidental) String() string {
	switch a {
	case Flat:
		return "b"
	case Sharp:
		return "#"
	}
	return ""
}

// Symbol is the display form used on screen.
func (a Accidental) Symbol() string {
	switch a {
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	}
	return ""
}

// Cycle follows the order a player toggles through: natural, sharp, flat.
func (a Accidental) Cycle() Accidental {
	switch a {
	case Natural:
		return Sharp
	case Sharp:
		return Flat
	}
	return Natural
}

func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case "", "n":
		return Natural, nil
	case "b", "♭":
		return Flat, nil
	case "#", "♯":
		return Sharp, nil
	}
	return Natural, errors.Wrapf(ErrInvalidAccidental, "%q", s)
}

// PitchClass is a slot on the chromatic wheel. Slot 0 is Ab, so the naturals
// land on A=1, B=3, C=4, D=6, E=8, F=9, G=11. All arithmetic is modulo 12.
type PitchClass int

var defaultSpellings = [12]Spelling{
	{A, Flat}, {A, Natural}, {B, Flat}, {B, Natural},
	{C, Natural}, {D, Flat}, {D, Natural}, {E, Flat},
	{E, Natural}, {F, Natural}, {G, Flat}, {G, Natural},
}

func (p PitchClass) Add(halfSteps int) PitchClass {
	return PitchClass(((int(p)+halfSteps)%12 + 12) % 12)
}

// Spelling is the flat-preferring name of the pitch class.
func (p PitchClass) Spelling() Spelling {
	return defaultSpellings[p.Add(0)]
}

func (p PitchClass) String() string {
	return p.Spelling().String()
}

// Spelling is a letter plus accidental. Enharmonic spellings are distinct
// values that share a PitchClass.
type Spelling struct {
	Letter     Letter
	Accidental Accidental
}

func ParseSpelling(s string) (Spelling, error) {
	if len(s) == 0 {
		return Spelling{}, errors.Wrap(ErrInvalidLetter, "empty spelling")
	}
	l, err := ParseLetter(s[:1])
	if err != nil {
		return Spelling{}, err
	}
	a, err := ParseAccidental(s[1:])
	if err != nil {
		return Spelling{}, err
	}
	return Spelling{l, a}, nil
}

// MustSpelling is ParseSpelling for static tables.
func MustSpelling(s string) Spelling {
	sp, err := ParseSpelling(s)
	if err != nil {
		panic(err)
	}
	return sp
}

func (s Spelling) PitchClass() PitchClass {
	return s.Letter.PitchClass().Add(s.Accidental.Shift())
}

func (s Spelling) String() string {
	return s.Letter.String() + s.Accidental.String()
}

func (s Spelling) Pretty() string {
	return s.Letter.String() + s.Accidental.Symbol()
}

// StartsWithVowel reports whether the spoken name takes "an".
func (s Spelling) StartsWithVowel() bool {
	return s.Letter == A || s.Letter == E
}
