// Package pointer moves the OS cursor and injects left-button events.
package pointer

import (
	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
	"github.com/pkg/errors"
)

// Pointer is the global, focus-independent mouse the controller drives.
type Pointer interface {
	Location() (x, y int)
	Move(x, y int)
	LeftDown() error
	LeftUp() error
	Click()
	ScreenSize() (width, height int)
}

// Robot drives the real cursor through robotgo.
type Robot struct {
	// Display selects the monitor whose size is reported by ScreenSize.
	// A negative value uses the primary screen size robotgo reports.
	Display int
}

// NewRobot returns a Robot mapping onto display.
func NewRobot(display int) *Robot {
	return &Robot{Display: display}
}

func (r *Robot) Location() (int, int) {
	return robotgo.Location()
}

func (r *Robot) Move(x, y int) {
	robotgo.Move(x, y)
}

func (r *Robot) LeftDown() error {
	return errors.Wrap(robotgo.Toggle("left"), "left button down")
}

func (r *Robot) LeftUp() error {
	return errors.Wrap(robotgo.Toggle("left", "up"), "left button up")
}

func (r *Robot) Click() {
	robotgo.Click("left", false)
}

func (r *Robot) ScreenSize() (int, int) {
	if r.Display >= 0 && r.Display < screenshot.NumActiveDisplays() {
		bounds := screenshot.GetDisplayBounds(r.Display)
		return bounds.Dx(), bounds.Dy()
	}
	return robotgo.GetScreenSize()
}
