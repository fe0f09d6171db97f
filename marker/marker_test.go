package marker

import (
	"testing"
	"time"

	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/stretchr/testify/assert"
)

func TestSnap(t *testing.T) {
	cases := map[float64]float64{
		0.1:   0,
		0.3:   0.5,
		0.25:  0,
		0.75:  1,
		-2.74: -2.5,
		9:     4,
		-12:   -4,
	}
	for in, expected := range cases {
		assert.Equal(t, expected, Snap(in), "%v", in)
	}
}

func TestNewMarkerStartsOnB4(t *testing.T) {
	m := New()
	assert.Equal(t, model.Note{Spelling: pitch.Spelling{Letter: pitch.B}, Octave: 4}, m.Note())
}

func TestMoveTo(t *testing.T) {
	m := New()
	assert := assert.New(t)

	assert.True(m.MoveTo(1.6))
	assert.Equal(1.5, m.Position())
	assert.Equal(model.Note{Spelling: pitch.Spelling{Letter: pitch.E}, Octave: 5}, m.Note())

	assert.False(m.MoveTo(1.4))

	assert.True(m.MoveTo(-3.9))
	assert.Equal(model.Note{Spelling: pitch.Spelling{Letter: pitch.A}, Octave: 3}, m.Note())
	assert.Equal(pitch.Ledger{Below1: true, Below2: true}, m.Ledger())
}

func TestMoveClearsAccidental(t *testing.T) {
	m := New()
	m.CycleAccidental()
	assert.Equal(t, pitch.Sharp, m.Note().Spelling.Accidental)
	m.MoveTo(2)
	assert.Equal(t, pitch.Natural, m.Note().Spelling.Accidental)
}

func TestCycleAccidental(t *testing.T) {
	m := New()
	m.CycleAccidental()
	m.CycleAccidental()
	assert.Equal(t, pitch.Flat, m.Note().Spelling.Accidental)
	m.CycleAccidental()
	assert.Equal(t, pitch.Natural, m.Note().Spelling.Accidental)
}

func TestOnSettleFiresOnceForABurst(t *testing.T) {
	m := New()
	settled := make(chan model.Note, 10)
	m.OnSettle(20*time.Millisecond, func(n model.Note) {
		settled <- n
	})

	m.MoveTo(0.5)
	m.MoveTo(1)
	m.MoveTo(1.5)
	m.CycleAccidental()

	select {
	case n := <-settled:
		assert.Equal(t, model.Note{Spelling: pitch.Spelling{Letter: pitch.E, Accidental: pitch.Sharp}, Octave: 5}, n)
	case <-time.After(time.Second):
		t.Fatal("marker never settled")
	}

	select {
	case n := <-settled:
		t.Fatalf("unexpected second settle: %v", n)
	case <-time.After(60 * time.Millisecond):
	}
}
