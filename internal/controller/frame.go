package controller

import (
	"github.com/vedantwpatil/hand-cursor/internal/config"
	"github.com/vedantwpatil/hand-cursor/internal/sensor"
	"github.com/vedantwpatil/hand-cursor/internal/tracking"
)

func (c *Controller) handleFrame() {
	s := c.Settings()
	c.applyClickMode(s)
	wasTracked := c.mapper.Tracked()
	defer func() {
		if now := c.mapper.Tracked(); now != wasTracked {
			c.logger.Debug().Bool("tracked", now).Msg("tracking changed")
		}
	}()

	body, hasData := c.sampler.Sample(c.sensor)
	if !hasData || body == nil {
		// A frame without a tracked body also drops tracking.
		c.mapper.MarkLost()
		return
	}

	prevHand := c.mapper.DrivingHand()
	c.mapper.Sync(c.pointer.Location())
	hand, ok := c.mapper.Update(body, s, c.width, c.height)
	if !ok {
		c.grip.Arm()
		return
	}
	if !wasTracked || hand != prevHand {
		c.logger.Debug().Str("hand", hand.String()).Msg("driving hand")
	}

	x, y := c.mapper.Position().Round()
	c.pointer.Move(x, y)

	if s.GripActive() {
		c.observeGrip(hand, body.HandState(hand))
	}
}

func (c *Controller) observeGrip(hand sensor.Hand, state sensor.HandState) {
	emitted, err := c.grip.Observe(hand, state, c.pointer)
	if err != nil {
		c.logger.Warn().Err(err).Str("hand", hand.String()).Msg("grip button event failed")
		return
	}
	if emitted {
		c.logger.Debug().Str("hand", hand.String()).Str("state", state.String()).Msg("grip button event")
	}
}

// applyClickMode lifts a grip-held button once grip clicking stops.
func (c *Controller) applyClickMode(s config.Settings) {
	active := s.GripActive()
	if c.gripActive && !active {
		if err := c.grip.Release(c.pointer); err != nil {
			c.logger.Warn().Err(err).Msg("grip release failed")
		}
	}
	c.gripActive = active
}

func (c *Controller) handleTick() {
	s := c.Settings()
	c.applyClickMode(s)
	if !s.DwellActive() {
		c.dwell.Reset()
		return
	}

	x, y := c.pointer.Location()
	pos := tracking.CursorPosition{X: float64(x), Y: float64(y)}
	if c.dwell.Tick(pos, c.mapper.Tracked(), s.DwellRadius, s.DwellTime, c.pointer) {
		c.logger.Debug().Int("x", x).Int("y", y).Msg("dwell click")
	}
}
