package peripherals

// Motor is a shallow wrapper around a single drive motor's commanded duty
// cycle, the simulated stand-in for a PWM-driven DC motor.
type Motor struct {
	duty int // percent, [-100, 100]; negative reverses direction
}

// SetDuty commands a new duty cycle, clamped to [-100, 100].
func (m *Motor) SetDuty(percent int) {
	switch {
	case percent > 100:
		percent = 100
	case percent < -100:
		percent = -100
	}
	m.duty = percent
}

// Duty reports the motor's last commanded duty cycle.
func (m *Motor) Duty() int {
	return m.duty
}

// Stop commands zero duty cycle.
func (m *Motor) Stop() {
	m.duty = 0
}
