package marker

import (
	"math"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
)

const (
	MinPosition = -4
	MaxPosition = 4
)

// Snap rounds a raw pointer coordinate to the nearest line or space and
// keeps it on the playable range.
func Snap(y float64) float64 {
	v := math.RoundToEven(2*y) / 2
	return math.Max(MinPosition, math.Min(MaxPosition, v))
}

// Marker is the note the player drags onto the staff.
type Marker struct {
	mu       sync.Mutex
	position float64
	note     model.Note
	ledger   pitch.Ledger

	settle   func(func())
	onSettle func(model.Note)
}

// New places the marker at the middle of the staff.
func New() *Marker {
	m := &Marker{}
	m.place(0)
	return m
}

func (m *Marker) place(pos float64) {
	l, octave := pitch.FromStaffPosition(pos)
	m.position = pos
	m.note = model.Note{Spelling: pitch.Spelling{Letter: l}, Octave: octave}
	m.ledger = pitch.LedgerFor(pos)
}

// OnSettle calls fn with the marker's note once it has stopped changing for
// the given duration. fn runs on its own goroutine.
func (m *Marker) OnSettle(after time.Duration, fn func(model.Note)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settle = debounce.New(after)
	m.onSettle = fn
}

// MoveTo snaps y onto the staff and moves the marker there, clearing any
// accidental. It reports whether the marker moved.
func (m *Marker) MoveTo(y float64) bool {
	pos := Snap(y)

	m.mu.Lock()
	defer m.mu.Unlock()
	if pos == m.position {
		return false
	}
	m.place(pos)
	m.changed()
	return true
}

func (m *Marker) CycleAccidental() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.note.Spelling.Accidental = m.note.Spelling.Accidental.Cycle()
	m.changed()
}

// caller holds mu
func (m *Marker) changed() {
	if m.settle == nil {
		return
	}
	n, fn := m.note, m.onSettle
	m.settle(func() { fn(n) })
}

func (m *Marker) Note() model.Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.note
}

func (m *Marker) Position() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Marker) Ledger() pitch.Ledger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ledger
}
