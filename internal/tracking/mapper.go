package tracking

import (
	"github.com/vedantwpatil/hand-cursor/internal/config"
	"github.com/vedantwpatil/hand-cursor/internal/sensor"
)

// SelectHand returns the hand that drives the cursor: the right hand if it
// reaches further than cal.ReachThreshold in front of the spine base,
// otherwise the left hand under the same rule.
func SelectHand(b *sensor.Body, cal config.Calibration) (sensor.Hand, bool) {
	spineZ := b.Joint(sensor.JointSpineBase).Z
	for _, h := range []sensor.Hand{sensor.HandRight, sensor.HandLeft} {
		if b.Joint(h.Joint()).Z-spineZ < -cal.ReachThreshold {
			return h, true
		}
	}
	return sensor.HandLeft, false
}

// RawOffset is the hand displacement from the spine base before scaling to
// pixels. Y is flipped so it grows downward like screen coordinates.
func RawOffset(b *sensor.Body, hand sensor.Hand, cal config.Calibration) (x, y float64) {
	handPos := b.Joint(hand.Joint())
	spine := b.Joint(sensor.JointSpineBase)

	offsetX := cal.LeftHandOffsetX
	if hand == sensor.HandRight {
		offsetX = cal.RightHandOffsetX
	}
	return handPos.X - spine.X + offsetX, spine.Y - handPos.Y + cal.VerticalOffset
}

// Target maps a raw offset onto a width x height screen.
func Target(x, y float64, s config.Settings, width, height int) CursorPosition {
	return CursorPosition{
		X: x * s.Sensitivity * float64(width),
		Y: (y + s.Calibration.VerticalBias) * s.Sensitivity * float64(height),
	}
}

// Mapper holds the cursor state carried between frames.
type Mapper struct {
	cursor      CursorPosition
	rawX, rawY  float64
	tracked     bool
	drivingHand sensor.Hand
}

// Update moves the smoothed cursor toward the driving hand of b. ok is
// false when neither hand is extended, which also marks tracking lost.
func (m *Mapper) Update(b *sensor.Body, s config.Settings, width, height int) (hand sensor.Hand, ok bool) {
	hand, ok = SelectHand(b, s.Calibration)
	if !ok {
		m.tracked = false
		return hand, false
	}

	m.rawX, m.rawY = RawOffset(b, hand, s.Calibration)
	m.cursor = Smooth(m.cursor, Target(m.rawX, m.rawY, s, width, height), s.Smoothing)
	m.tracked = true
	m.drivingHand = hand
	return hand, true
}

// Sync makes the on-screen cursor at (x, y) the smoothing origin when the
// smoothed position no longer rounds to it. That happens when the OS clamps
// a move to the desktop or the mouse is moved by hand.
func (m *Mapper) Sync(x, y int) {
	if cx, cy := m.cursor.Round(); cx != x || cy != y {
		m.cursor = CursorPosition{X: float64(x), Y: float64(y)}
	}
}

// Smooth moves cur toward target by (1 - smoothing) of the gap.
func Smooth(cur, target CursorPosition, smoothing float64) CursorPosition {
	return cur.Add(target.Subtract(cur).Scale(1 - smoothing))
}

// Position is the smoothed cursor position.
func (m *Mapper) Position() CursorPosition { return m.cursor }

// Raw is the last mapped offset before scaling and smoothing.
func (m *Mapper) Raw() (x, y float64) { return m.rawX, m.rawY }

// Tracked reports whether the last frame established the cursor.
func (m *Mapper) Tracked() bool { return m.tracked }

// DrivingHand is the hand used by the last successful Update.
func (m *Mapper) DrivingHand() sensor.Hand { return m.drivingHand }

// MarkLost clears the tracked flag.
func (m *Mapper) MarkLost() { m.tracked = false }
