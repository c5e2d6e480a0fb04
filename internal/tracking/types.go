package tracking

import "math"

// CursorPosition is a point on screen in pixels. It stays fractional between
// frames so smoothing does not drift from repeated rounding.
type CursorPosition struct {
	X float64
	Y float64
}

// Scale scales a CursorPosition by a scalar.
func (p CursorPosition) Scale(s float64) CursorPosition {
	return CursorPosition{X: p.X * s, Y: p.Y * s}
}

// Add adds two CursorPositions.
func (p1 CursorPosition) Add(p2 CursorPosition) CursorPosition {
	return CursorPosition{X: p1.X + p2.X, Y: p1.Y + p2.Y}
}

// Subtract subtracts p2 from p1.
func (p1 CursorPosition) Subtract(p2 CursorPosition) CursorPosition {
	return CursorPosition{X: p1.X - p2.X, Y: p1.Y - p2.Y}
}

// Distance is the Euclidean distance between p1 and p2.
func (p1 CursorPosition) Distance(p2 CursorPosition) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// Round returns the nearest whole pixel.
func (p CursorPosition) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
