// Package anim provides a tick-driven tween. Nothing here starts timers or
// goroutines: the host advances animations by calling Step from its frame
// loop.
package anim

import "time"

// Clock returns the current time. Tests substitute a manual clock.
type Clock func() time.Time

// Simple interpolates linearly between two values over a fixed duration.
type Simple struct {
	clock    Clock
	from     float64
	to       float64
	value    float64
	started  time.Time
	duration time.Duration
	callback func()
	running  bool
}

func NewSimple(clock Clock) *Simple {
	if clock == nil {
		clock = time.Now
	}
	return &Simple{clock: clock}
}

// Start begins animating from -> to. A running animation is replaced.
func (a *Simple) Start(callback func(), from, to float64, duration time.Duration) {
	a.from = from
	a.to = to
	a.value = from
	a.callback = callback
	a.duration = duration
	a.started = a.clock()
	a.running = true
	if duration <= 0 {
		a.finish()
	}
}

func (a *Simple) Stop() {
	a.running = false
	a.callback = nil
}

func (a *Simple) Animating() bool { return a.running }

// Value returns the current value while animating and final otherwise.
func (a *Simple) Value(final float64) float64 {
	if !a.running {
		return final
	}
	return a.value
}

// Step advances the animation to now and runs the callback.
func (a *Simple) Step(now time.Time) {
	if !a.running {
		return
	}
	elapsed := now.Sub(a.started)
	if elapsed >= a.duration {
		a.finish()
		return
	}
	progress := float64(elapsed) / float64(a.duration)
	if progress < 0 {
		progress = 0
	}
	a.value = a.from + (a.to-a.from)*progress
	if a.callback != nil {
		a.callback()
	}
}

func (a *Simple) finish() {
	a.value = a.to
	a.running = false
	callback := a.callback
	a.callback = nil
	if callback != nil {
		callback()
	}
}
