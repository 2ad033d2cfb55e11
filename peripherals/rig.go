package peripherals

import (
	"time"

	"github.com/forcelightning/mazebot/grid"
)

// Rig composes the simulated peripherals into something that satisfies
// explorer.Sensor and explorer.Actuator: it drives a Sequencer against a
// ground-truth grid.Grid standing in for the physical maze, the way a real
// build would drive it against ultrasonic/IR readings off the walls
// themselves.
type Rig struct {
	Truth      *grid.Grid
	Sequencer  *Sequencer
	Ultrasonic [4]Ultrasonic // one per relative side, Front/Right/Back/Left
	Magnet     Magnetometer

	// current and currentCell track the rig's last-known facing and cell,
	// so the Ultrasonic/Magnet closures wired in NewRig can read position
	// without holding a navigator reference of their own.
	current     grid.CardinalDirection
	currentCell int
}

// cellSizeCM is the nominal physical size of one maze cell, used to convert
// an open run of cells into a simulated ultrasonic reading.
const cellSizeCM = 18.0

// NewRig builds a Rig whose four ultrasonic channels and magnetometer read
// off truth, and whose motors/encoder are freshly zeroed. The ultrasonic
// and magnetometer PulseFunc/HeadingFunc closures are wired against the
// rig's own tracked position (see Sense/Move), so reading them at any time
// reflects the rig's current cell and facing.
func NewRig(truth *grid.Grid) *Rig {
	r := &Rig{
		Truth: truth,
		Sequencer: &Sequencer{
			Motors:  &DriveMotors{},
			Encoder: &Encoder{},
		},
	}
	for i := range r.Ultrasonic {
		side := grid.RelativeDirection(i)
		r.Ultrasonic[i].PulseFunc = func() time.Duration {
			return r.simulatedPulse(side)
		}
	}
	r.Magnet.HeadingFunc = func() grid.CardinalDirection {
		return r.current
	}
	return r
}

// Sense reports the NORTH-relative gap bitmask at nav's current cell by
// reading truth's adjacency directly, standing in for four ultrasonic
// pings converted from robot-relative to world-relative using facing.
func (r *Rig) Sense(g *grid.Grid, nav *grid.Navigator, facing grid.CardinalDirection) grid.GapBitmask {
	r.current = facing
	r.currentCell = nav.Current

	cell := r.Truth.Cells[nav.Current]
	var mask grid.GapBitmask
	for d := grid.North; d <= grid.West; d++ {
		mask = mask.WithGap(d, cell.Adjacent[d] != grid.NoCell)
	}
	return mask
}

// simulatedPulse stands in for one ultrasonic channel's echo width: it
// counts the open run of cells from the rig's current position on the
// given relative side and converts it to a round-trip pulse duration.
func (r *Rig) simulatedPulse(side grid.RelativeDirection) time.Duration {
	dir := grid.CardinalDirection((uint8(r.current) + uint8(side)) % 4)

	cell := r.currentCell
	run := 0
	for {
		n := r.Truth.Cells[cell].Adjacent[dir]
		if n == grid.NoCell {
			break
		}
		cell = n
		run++
		if run > r.Truth.Rows*r.Truth.Cols {
			break
		}
	}

	distanceCM := float64(run) * cellSizeCM
	microseconds := distanceCM / soundSpeedCmPerUs
	return time.Duration(microseconds) * time.Microsecond
}

// Move turns the rig to face dir (if it isn't already) and then drives it
// one cell forward, updating nav in place. The Sequencer is driven with a
// no-op tick, so a move takes no simulated time.
func (r *Rig) Move(nav *grid.Navigator, dir grid.CardinalDirection) {
	tick := func() { time.Sleep(0) }

	if nav.Orientation != dir {
		r.Sequencer.TurnTo(nav.Orientation, dir, tick)
		nav.Orientation = dir
	}
	r.Sequencer.MoveForward(tick)

	next, ok := r.Truth.Neighbour(nav.Current, dir)
	if ok {
		nav.Current = next
	}

	r.current = nav.Orientation
	r.currentCell = nav.Current
}
