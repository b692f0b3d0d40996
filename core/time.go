// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// DefaultEventPollDelay is used when the configuration leaves the delay unset
const DefaultEventPollDelay = 50 * time.Millisecond

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	var interval time.Duration
	if cfg.FramesPerSecond == 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / time.Duration(cfg.FramesPerSecond)
	}

	eventDelay := time.Duration(cfg.EventPollDelay) * time.Millisecond
	if eventDelay <= 0 {
		eventDelay = DefaultEventPollDelay
	}

	return &Time{
		fps:         cfg.FramesPerSecond,
		frameTime:   interval,
		fpsTicker:   time.NewTicker(interval),
		eventDelay:  eventDelay,
		eventTicker: time.NewTicker(eventDelay),
	}
}

// Time contains all the time services and tickers
type Time struct {
	fps       int
	frameTime time.Duration
	fpsTicker *time.Ticker

	eventDelay  time.Duration
	eventTicker *time.Ticker
}

// Fps gets the set frames per second
func (t *Time) Fps() int {
	return t.fps
}

// FrameTime is the interval between two frame ticks
func (t *Time) FrameTime() time.Duration {
	return t.frameTime
}

// EventDelay is the interval between two event ticks
func (t *Time) EventDelay() time.Duration {
	return t.eventDelay
}

// FpsTicker gets the initialized fps ticker
func (t *Time) FpsTicker() *time.Ticker {
	return t.fpsTicker
}

// EventTicker gets the initialized event ticker for the event loop
func (t *Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// Stop stops both tickers
func (t *Time) Stop() {
	t.fpsTicker.Stop()
	t.eventTicker.Stop()
}
