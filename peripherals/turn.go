package peripherals

import "github.com/forcelightning/mazebot/grid"

// turnDuty is the commanded duty cycle while turning in place (one wheel
// forward, one reverse) or moving straight ahead.
const (
	turnDuty    = 40
	forwardDuty = 60
)

// Sequencer drives a single discrete motion — an in-place turn or a
// one-cell forward move — to completion by polling an Encoder against the
// step counts in encoder.go, the simulated stand-in for the original
// firmware's turn_params_t state machine.
type Sequencer struct {
	Motors  *DriveMotors
	Encoder *Encoder
}

// DriveMotors is the left/right motor pair needed to turn in place or move
// straight.
type DriveMotors struct {
	Left, Right Motor
}

// TurnTo rotates in place from `facing` to `target`, choosing the shorter
// turn direction, and returns once the encoder has accumulated the
// corresponding step count. tick is called once per simulated encoder
// pulse so callers (tests, the simulated rig) can advance time.
func (s *Sequencer) TurnTo(facing, target grid.CardinalDirection, tick func()) {
	rel := grid.RelativeDirectionFromTo(facing, target)

	var steps int
	var leftDuty, rightDuty int
	switch rel {
	case grid.Front:
		return
	case grid.Back:
		steps = StepsPerHalfTurn
		leftDuty, rightDuty = turnDuty, -turnDuty
	case grid.Right:
		steps = StepsPerQuarterTurn
		leftDuty, rightDuty = turnDuty, -turnDuty
	case grid.Left:
		steps = StepsPerQuarterTurn
		leftDuty, rightDuty = -turnDuty, turnDuty
	}

	s.Encoder.Reset()
	s.Motors.Left.SetDuty(leftDuty)
	s.Motors.Right.SetDuty(rightDuty)

	for s.Encoder.Steps() < steps {
		tick()
		s.Encoder.Tick()
	}

	s.Motors.Left.Stop()
	s.Motors.Right.Stop()
}

// MoveForward drives straight ahead for one cell's travel distance.
func (s *Sequencer) MoveForward(tick func()) {
	s.Encoder.Reset()
	s.Motors.Left.SetDuty(forwardDuty)
	s.Motors.Right.SetDuty(forwardDuty)

	for s.Encoder.Steps() < StepsPerCellMove {
		tick()
		s.Encoder.Tick()
	}

	s.Motors.Left.Stop()
	s.Motors.Right.Stop()
}
