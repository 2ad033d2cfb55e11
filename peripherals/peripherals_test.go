package peripherals

import (
	"testing"
	"time"

	"github.com/forcelightning/mazebot/explorer"
	"github.com/forcelightning/mazebot/grid"
)

func TestMotorSetDutyClamps(t *testing.T) {
	var m Motor
	m.SetDuty(150)
	if m.Duty() != 100 {
		t.Fatalf("Duty() = %d, want 100", m.Duty())
	}
	m.SetDuty(-150)
	if m.Duty() != -100 {
		t.Fatalf("Duty() = %d, want -100", m.Duty())
	}
	m.Stop()
	if m.Duty() != 0 {
		t.Fatalf("Duty() after Stop = %d, want 0", m.Duty())
	}
}

func TestEncoderResetAndTick(t *testing.T) {
	var e Encoder
	e.Tick()
	e.Tick()
	if e.Steps() != 2 {
		t.Fatalf("Steps() = %d, want 2", e.Steps())
	}
	e.Reset()
	if e.Steps() != 0 {
		t.Fatalf("Steps() after Reset = %d, want 0", e.Steps())
	}
}

func TestUltrasonicTimeout(t *testing.T) {
	u := Ultrasonic{PulseFunc: func() time.Duration { return Timeout }}
	if got := u.GetCM(); got != -1 {
		t.Fatalf("GetCM() = %v, want -1 at timeout", got)
	}
}

func TestSequencerTurnToCountsSteps(t *testing.T) {
	seq := &Sequencer{Motors: &DriveMotors{}, Encoder: &Encoder{}}
	ticks := 0
	seq.TurnTo(grid.North, grid.East, func() { ticks++ })
	if ticks != StepsPerQuarterTurn {
		t.Fatalf("ticks = %d, want %d", ticks, StepsPerQuarterTurn)
	}
}

func TestSequencerTurnToSameFacingIsNoop(t *testing.T) {
	seq := &Sequencer{Motors: &DriveMotors{}, Encoder: &Encoder{}}
	ticks := 0
	seq.TurnTo(grid.North, grid.North, func() { ticks++ })
	if ticks != 0 {
		t.Fatalf("ticks = %d, want 0 for no-op turn", ticks)
	}
}

func TestRigImplementsExplorerInterfaces(t *testing.T) {
	var _ explorer.Sensor = (*Rig)(nil)
	var _ explorer.Actuator = (*Rig)(nil)
}

func TestRigMoveAndSense(t *testing.T) {
	truth := grid.NewGrid(3, 3)
	a, _ := truth.CellAt(grid.Coordinate{X: 0, Y: 0})
	b, _ := truth.CellAt(grid.Coordinate{X: 1, Y: 0})
	truth.Cells[a].Adjacent[grid.East] = b
	truth.Cells[b].Adjacent[grid.West] = a

	rig := NewRig(truth)
	nav := &grid.Navigator{Current: a, Start: a, Orientation: grid.North}

	mask := rig.Sense(nil, nav, nav.Orientation)
	if !mask.HasGap(grid.East) {
		t.Fatal("expected east gap reported")
	}
	if mask.HasGap(grid.North) {
		t.Fatal("expected no north gap reported")
	}

	rig.Move(nav, grid.East)
	if nav.Current != b {
		t.Fatalf("nav.Current = %d, want %d", nav.Current, b)
	}
	if nav.Orientation != grid.East {
		t.Fatalf("nav.Orientation = %s, want East", nav.Orientation)
	}
}
