package peripherals

import "time"

// Timeout mirrors the original driver's pulse timeout, the point at which
// an echo is treated as "nothing in range" rather than awaited forever.
const Timeout = 26100 * time.Microsecond

// soundSpeedCmPerUs is used to convert an echo pulse width to a distance,
// matching the original driver's get_cm conversion.
const soundSpeedCmPerUs = 0.0343 / 2

// Ultrasonic is a shallow wrapper around a single HC-SR04-style rangefinder.
// PulseFunc is swappable so tests and the simulated rig can supply a
// synthetic echo width instead of toggling real GPIO pins.
type Ultrasonic struct {
	PulseFunc func() time.Duration
}

// GetCM returns the measured distance in centimetres, or -1 if PulseFunc
// reports a pulse at or beyond Timeout (nothing in range).
func (u *Ultrasonic) GetCM() float64 {
	pulse := u.PulseFunc()
	if pulse >= Timeout {
		return -1
	}
	return float64(pulse.Microseconds()) * soundSpeedCmPerUs
}
