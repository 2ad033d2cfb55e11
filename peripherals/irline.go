package peripherals

// IRLine is a shallow wrapper around a single-channel IR reflectance
// sensor, used here as a line/wall-gap detector: it reports true when the
// surface directly ahead reflects the way open floor does, false when it
// reads the way a wall (or printed line) does.
type IRLine struct {
	ReadFunc func() bool
}

// Gap reports whether the sensor currently sees open floor.
func (s *IRLine) Gap() bool {
	return s.ReadFunc()
}
