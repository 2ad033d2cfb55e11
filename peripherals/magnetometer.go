package peripherals

import "github.com/forcelightning/mazebot/grid"

// Magnetometer is a shallow wrapper around a compass heading reading,
// quantized to the nearest cardinal direction the navigator can act on.
type Magnetometer struct {
	HeadingFunc func() grid.CardinalDirection
}

// Heading reports the sensor's current cardinal reading.
func (m *Magnetometer) Heading() grid.CardinalDirection {
	return m.HeadingFunc()
}
