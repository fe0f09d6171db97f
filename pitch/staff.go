package pitch

import "math"

// Each staff step (line or space) is half a unit; an octave spans 3.5 units.
// C4 sits at -3.
const (
	StepHeight   = 0.5
	OctaveHeight = 3.5

	// A3, the lowest letter in the table below, in half-steps of the staff
	lowestStep = -8
)

// offsets relative to each letter's reference octave
var staffOffsets = [7]struct {
	pos float64
	ref int
}{
	A: {-4, 3},
	B: {-3.5, 3},
	C: {-3, 4},
	D: {-2.5, 4},
	E: {-2, 4},
	F: {-1.5, 4},
	G: {-1, 4},
}

func StaffPosition(l Letter, octave int) float64 {
	o := staffOffsets[l]
	return o.pos + OctaveHeight*float64(octave-o.ref)
}

// FromStaffPosition maps a vertical coordinate back to a natural letter and
// octave. Coordinates off the half-unit grid snap to the nearest step. The
// octave buckets cover octaves 3 through 6.
func FromStaffPosition(pos float64) (Letter, int) {
	steps := int(math.RoundToEven(pos/StepHeight)) - lowestStep
	l := Letter(((steps % 7) + 7) % 7)
	return l, octaveBucket(float64(steps+lowestStep) * StepHeight)
}

func octaveBucket(pos float64) int {
	switch {
	case pos < -3:
		return 3
	case pos < 0.5:
		return 4
	case pos < 4:
		return 5
	}
	return 6
}

const (
	above2Threshold = 4
	above1Threshold = 3
	below1Threshold = -3
	below2Threshold = -4
)

// Ledger holds the four ledger line flags the renderer shows around the
// staff. The thresholds overlap so several flags can be set at once.
type Ledger struct {
	Above2 bool
	Above1 bool
	Below1 bool
	Below2 bool
}

func LedgerFor(pos float64) Ledger {
	return Ledger{
		Above2: pos >= above2Threshold,
		Above1: pos >= above1Threshold,
		Below1: pos <= below1Threshold,
		Below2: pos <= below2Threshold,
	}
}

func (l Ledger) Merge(o Ledger) Ledger {
	return Ledger{
		Above2: l.Above2 || o.Above2,
		Above1: l.Above1 || o.Above1,
		Below1: l.Below1 || o.Below1,
		Below2: l.Below2 || o.Below2,
	}
}
