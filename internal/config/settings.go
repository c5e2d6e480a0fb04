package config

import (
	"time"

	"github.com/pkg/errors"
)

// MaxSmoothing bounds Settings.Smoothing. Above it the cursor barely moves.
const MaxSmoothing = 0.95

var (
	ErrInvalidSensitivity = errors.New("sensitivity must be positive")
	ErrInvalidSmoothing   = errors.New("smoothing must be within [0, 0.95]")
	ErrInvalidDwellTime   = errors.New("dwell time must be positive")
	ErrInvalidDwellRadius = errors.New("dwell radius must be positive")
	ErrInvalidCalibration = errors.New("invalid calibration")
)

// Calibration holds the empirically tuned constants of the hand-to-screen
// mapping. The defaults recentre the reachable range of an adult standing
// about two metres from the sensor.
type Calibration struct {
	// RightHandOffsetX and LeftHandOffsetX shift each hand's horizontal
	// displacement from the spine base.
	RightHandOffsetX float64
	LeftHandOffsetX  float64

	// VerticalOffset is added to the spine-to-hand height difference.
	VerticalOffset float64

	// VerticalBias is added again after the offset, before scaling to pixels.
	VerticalBias float64

	// ReachThreshold is how far in front of the spine base (metres, toward
	// the sensor) a hand must be to drive the cursor.
	ReachThreshold float64
}

// DefaultCalibration returns the stock mapping constants.
func DefaultCalibration() Calibration {
	return Calibration{
		RightHandOffsetX: 0.05,
		LeftHandOffsetX:  0.3,
		VerticalOffset:   0.51,
		VerticalBias:     0.25,
		ReachThreshold:   0.15,
	}
}

// Settings are the cursor and click parameters that may change while the
// controller runs.
type Settings struct {
	// Sensitivity scales mapped hand displacement to screen size.
	Sensitivity float64

	// Smoothing is the exponential smoothing weight of the previous cursor
	// position. 0 follows the hand exactly.
	Smoothing float64

	// ClickEnabled turns clicking on. GripMode then selects grip clicks over
	// dwell clicks.
	ClickEnabled bool
	GripMode     bool

	// DwellTime is how long the cursor must rest within DwellRadius pixels
	// to trigger a dwell click.
	DwellTime   time.Duration
	DwellRadius float64

	Calibration Calibration
}

func DefaultSettings() Settings {
	return Settings{
		Sensitivity:  3.5,
		Smoothing:    0.2,
		ClickEnabled: true,
		GripMode:     false,
		DwellTime:    time.Second,
		DwellRadius:  10,
		Calibration:  DefaultCalibration(),
	}
}

// GripActive reports whether grip gestures drive clicks.
func (s Settings) GripActive() bool {
	return s.ClickEnabled && s.GripMode
}

// DwellActive reports whether resting the cursor drives clicks.
func (s Settings) DwellActive() bool {
	return s.ClickEnabled && !s.GripMode
}

// Validate rejects settings that would make the cursor erratic or frozen.
func (s Settings) Validate() error {
	if !(s.Sensitivity > 0) {
		return errors.Wrapf(ErrInvalidSensitivity, "got %v", s.Sensitivity)
	}
	if !(s.Smoothing >= 0 && s.Smoothing <= MaxSmoothing) {
		return errors.Wrapf(ErrInvalidSmoothing, "got %v", s.Smoothing)
	}
	if s.DwellTime <= 0 {
		return errors.Wrapf(ErrInvalidDwellTime, "got %v", s.DwellTime)
	}
	if !(s.DwellRadius > 0) {
		return errors.Wrapf(ErrInvalidDwellRadius, "got %v", s.DwellRadius)
	}
	if !(s.Calibration.ReachThreshold >= 0) {
		return errors.Wrapf(ErrInvalidCalibration, "reach threshold %v is negative", s.Calibration.ReachThreshold)
	}
	return nil
}
