package gesture

import (
	"time"

	"github.com/vedantwpatil/hand-cursor/internal/tracking"
)

// Clicker injects a full left click.
type Clicker interface {
	Click()
}

// Dwell clicks once the cursor has rested near the same spot for long
// enough. It is driven by a fixed-interval tick.
type Dwell struct {
	interval time.Duration
	prev     tracking.CursorPosition
	elapsed  time.Duration
}

// NewDwell returns a Dwell ticked every interval.
func NewDwell(interval time.Duration) *Dwell {
	return &Dwell{interval: interval}
}

// Tick inspects the cursor at pos. While tracked is false it only clears the
// accumulated rest time. Otherwise rest time grows by one interval when pos
// is within radius of the previous tick's position and resets when it is
// not; exceeding dwellTime clicks and starts over.
func (d *Dwell) Tick(pos tracking.CursorPosition, tracked bool, radius float64, dwellTime time.Duration, c Clicker) (clicked bool) {
	if !tracked {
		d.elapsed = 0
		return false
	}

	if pos.Distance(d.prev) <= radius {
		d.elapsed += d.interval
		if d.elapsed > dwellTime {
			c.Click()
			d.elapsed = 0
			clicked = true
		}
	} else {
		d.elapsed = 0
	}

	d.prev = pos
	return clicked
}

// Elapsed is the rest time accumulated so far.
func (d *Dwell) Elapsed() time.Duration { return d.elapsed }

// Reset clears the accumulated rest time.
func (d *Dwell) Reset() { d.elapsed = 0 }
