// Package clock measures frame delta time for the render loop.
package clock

import "time"

// Clock measures wall-clock seconds between frames using the monotonic clock.
// The zero value is not usable; create one with NewClock.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	ticks uint64
}

// ClockOption is a functional option for configuring a Clock.
type ClockOption func(*Clock)

// WithNow replaces the time source. Intended for tests.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ClockOption: functional option to set the time source
func WithNow(now func() time.Time) ClockOption {
	return func(c *Clock) {
		c.now = now
	}
}

// NewClock creates a Clock started at the current time.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - *Clock: the newly created clock
func NewClock(options ...ClockOption) *Clock {
	c := &Clock{now: time.Now}
	for _, opt := range options {
		opt(c)
	}
	c.start = c.now()
	c.last = c.start
	return c
}

// Tick marks the start of a new frame and returns the seconds elapsed since the previous Tick.
// The first Tick measures from NewClock. The result is never negative.
//
// Returns:
//   - float32: seconds since the previous frame
func (c *Clock) Tick() float32 {
	now := c.now()
	dt := now.Sub(c.last)
	c.last = now
	c.ticks++
	if dt < 0 {
		return 0
	}
	return float32(dt.Seconds())
}

// Elapsed returns the seconds between NewClock and the most recent Tick.
func (c *Clock) Elapsed() float32 {
	d := c.last.Sub(c.start)
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}

// Ticks returns how many frames have been ticked.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}
