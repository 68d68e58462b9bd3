// SPDX-License-Identifier: EPL-2.0

// Package simtest provides deterministic test doubles for the simulation.
package simtest

import "time"

// Clock is a fake clock for testing. It satisfies the codec.Clock
// interface (without importing it to avoid cycles): Sleep advances the
// fake time instead of blocking, so a simulated cycle measures exactly
// its configured delay.
type Clock struct {
	now time.Time
	// Skew is added to the fake time on every Sleep, simulating
	// host-scheduler jitter. Zero means perfectly tight timing.
	Skew time.Duration
}

// NewClock creates a fake clock starting at the given instant.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time { return c.now }

func (c *Clock) Sleep(d time.Duration) {
	c.now = c.now.Add(d + c.Skew)
}

// Advance moves the fake time forward without a Sleep call.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
