// Package controller drives the OS cursor from a body-tracking sensor.
//
// All frame and tick handling runs on one goroutine, so the sampler, mapper
// and gesture state need no locking. Settings are the only state shared with
// other goroutines.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/vedantwpatil/hand-cursor/internal/config"
	"github.com/vedantwpatil/hand-cursor/internal/gesture"
	"github.com/vedantwpatil/hand-cursor/internal/pointer"
	"github.com/vedantwpatil/hand-cursor/internal/sensor"
	"github.com/vedantwpatil/hand-cursor/internal/timeutil"
	"github.com/vedantwpatil/hand-cursor/internal/tracking"
)

// ErrAlreadyStarted is returned by Start on a running controller.
var ErrAlreadyStarted = errors.New("controller already started")

type Controller struct {
	sensor  sensor.Sensor
	pointer pointer.Pointer
	clock   timeutil.Clock
	logger  zerolog.Logger

	settingsMu sync.RWMutex
	settings   config.Settings

	// Owned by the event loop.
	sampler       tracking.Sampler
	mapper        tracking.Mapper
	grip          gesture.Grip
	dwell         *gesture.Dwell
	gripActive    bool
	width, height int

	lifecycleMu sync.Mutex
	running     bool
	started     time.Time
	ticker      timeutil.Ticker
	cancel      context.CancelFunc
	done        chan struct{}
}

type Option func(*Controller)

// WithClock replaces the wall clock driving the dwell ticker.
func WithClock(clock timeutil.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New builds a controller. It fails if settings do not validate.
func New(s sensor.Sensor, p pointer.Pointer, settings config.Settings, opts ...Option) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		sensor:   s,
		pointer:  p,
		clock:    timeutil.RealClock{},
		logger:   zerolog.Nop(),
		settings: settings,
		dwell:    gesture.NewDwell(config.TickInterval),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start opens the sensor, reads the screen size and begins processing frames
// and dwell ticks until Stop is called or ctx is cancelled. A sensor that
// fails to open is reported here and not retried.
func (c *Controller) Start(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.running {
		return ErrAlreadyStarted
	}

	if err := c.sensor.Open(); err != nil {
		return errors.Wrap(err, "open sensor")
	}

	c.width, c.height = c.pointer.ScreenSize()
	c.logger.Info().Int("width", c.width).Int("height", c.height).Msg("controller started")

	c.started = c.clock.Now()
	ctx, c.cancel = context.WithCancel(ctx)
	c.ticker = c.clock.NewTicker(config.TickInterval)
	c.done = make(chan struct{})
	c.running = true

	go c.run(ctx, c.ticker, c.done)
	return nil
}

func (c *Controller) run(ctx context.Context, ticker timeutil.Ticker, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.sensor.FrameArrived():
			c.handleFrame()
		case <-ticker.C():
			c.handleTick()
		}
	}
}

// Stop halts processing and releases the sensor. It may be called any number
// of times, with or without a prior Start.
func (c *Controller) Stop() error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if !c.running {
		return nil
	}
	c.running = false

	c.cancel()
	<-c.done
	c.ticker.Stop()

	var err error
	err = multierr.Append(err, errors.Wrap(c.grip.Release(c.pointer), "release grip"))
	err = multierr.Append(err, errors.Wrap(c.sensor.Close(), "close sensor"))
	c.logger.Info().Dur("uptime", c.clock.Now().Sub(c.started)).Msg("controller stopped")
	return err
}

// Settings returns a copy of the current settings.
func (c *Controller) Settings() config.Settings {
	c.settingsMu.RLock()
	defer c.settingsMu.RUnlock()
	return c.settings
}

// UpdateSettings applies fn to a copy of the settings and installs the result
// if it validates. The change is seen from the next frame or tick.
func (c *Controller) UpdateSettings(fn func(*config.Settings)) error {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	next := c.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	c.settings = next
	return nil
}

// ToggleClick flips ClickEnabled and returns the new value.
func (c *Controller) ToggleClick() bool {
	var enabled bool
	err := c.UpdateSettings(func(s *config.Settings) {
		s.ClickEnabled = !s.ClickEnabled
		enabled = s.ClickEnabled
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("click toggle rejected")
		return c.Settings().ClickEnabled
	}
	c.logger.Info().Bool("enabled", enabled).Msg("click toggled")
	return enabled
}

// ToggleGripMode switches between grip and dwell clicking and returns true
// if grip mode is now on. A button held by a grip is lifted on the next
// frame or tick after grip mode turns off.
func (c *Controller) ToggleGripMode() bool {
	var grip bool
	err := c.UpdateSettings(func(s *config.Settings) {
		s.GripMode = !s.GripMode
		grip = s.GripMode
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("click mode toggle rejected")
		return c.Settings().GripMode
	}
	c.logger.Info().Bool("grip", grip).Msg("click mode toggled")
	return grip
}
