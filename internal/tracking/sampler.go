// Package tracking turns sensor frames into a smoothed cursor position.
package tracking

import "github.com/vedantwpatil/hand-cursor/internal/sensor"

// Sampler pulls body data out of sensor frames. Its body slice is sized on
// the first frame and reused afterwards.
type Sampler struct {
	bodies []sensor.Body
}

// Sample acquires the sensor's current frame and returns the first tracked
// body in it. hasData is false when no frame could be acquired. A frame
// with no tracked body returns a nil body with hasData true. The returned
// body is only valid until the next call.
func (s *Sampler) Sample(src sensor.Sensor) (body *sensor.Body, hasData bool) {
	frame, release, ok := src.AcquireFrame()
	defer release()
	if !ok {
		return nil, false
	}

	if s.bodies == nil {
		s.bodies = make([]sensor.Body, src.BodyCount())
	}
	n := frame.CopyBodies(s.bodies)

	for i := 0; i < n; i++ {
		if s.bodies[i].Tracked {
			return &s.bodies[i], true
		}
	}
	return nil, true
}
