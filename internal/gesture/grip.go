// Package gesture turns hand states and cursor rest into mouse clicks.
package gesture

import "github.com/vedantwpatil/hand-cursor/internal/sensor"

// Buttons injects left-button transitions.
type Buttons interface {
	LeftDown() error
	LeftUp() error
}

// Grip emits a button down when a hand closes and a button up when it opens
// again. Each hand starts released.
type Grip struct {
	pressed [2]bool

	// held is set while an injected button down awaits its up.
	held bool
}

// Observe feeds the latest state of hand. It returns the error from the
// injected event, if one was emitted.
func (g *Grip) Observe(hand sensor.Hand, state sensor.HandState, b Buttons) (emitted bool, err error) {
	switch {
	case state == sensor.HandClosed && !g.pressed[hand]:
		g.pressed[hand] = true
		g.held = true
		return true, b.LeftDown()
	case state == sensor.HandOpen && g.pressed[hand]:
		g.pressed[hand] = false
		g.held = false
		return true, b.LeftUp()
	}
	return false, nil
}

// Arm marks both hands pressed so a hand that is already closed when it
// next drives the cursor does not click.
func (g *Grip) Arm() {
	g.pressed = [2]bool{true, true}
}

// Release lifts a button still held down by a grip and arms both hands.
func (g *Grip) Release(b Buttons) error {
	held := g.held
	g.held = false
	g.Arm()
	if !held {
		return nil
	}
	return b.LeftUp()
}

// Pressed reports whether hand is in the pressed state.
func (g *Grip) Pressed(hand sensor.Hand) bool {
	return g.pressed[hand]
}
