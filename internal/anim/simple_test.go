package anim

import (
	"testing"
	"time"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func TestSimpleProgress(t *testing.T) {
	clock := &manualClock{now: time.Unix(100, 0)}
	a := NewSimple(clock.Now)
	calls := 0
	a.Start(func() { calls++ }, 0, 1, 100*time.Millisecond)

	if !a.Animating() || a.Value(1) != 0 {
		t.Fatalf("animation must start at from")
	}
	a.Step(clock.now.Add(50 * time.Millisecond))
	if v := a.Value(1); v < 0.49 || v > 0.51 {
		t.Fatalf("unexpected midpoint value %v", v)
	}
	a.Step(clock.now.Add(200 * time.Millisecond))
	if a.Animating() {
		t.Fatalf("animation must finish after its duration")
	}
	if a.Value(0.25) != 0.25 {
		t.Fatalf("finished animation must report the final value")
	}
	if calls != 2 {
		t.Fatalf("callback calls = %d, want 2", calls)
	}
}

func TestSimpleRestartFromCurrentValue(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	a := NewSimple(clock.Now)
	a.Start(nil, 0, 1, 100*time.Millisecond)
	a.Step(clock.now.Add(60 * time.Millisecond))
	current := a.Value(1)

	clock.now = clock.now.Add(60 * time.Millisecond)
	a.Start(nil, current, 0, 100*time.Millisecond)
	if a.Value(0) != current {
		t.Fatalf("restart must continue from %v, got %v", current, a.Value(0))
	}
	a.Step(clock.now.Add(100 * time.Millisecond))
	if a.Animating() || a.Value(0) != 0 {
		t.Fatalf("restarted animation must reach its new target")
	}
}

func TestSimpleStopDropsCallback(t *testing.T) {
	a := NewSimple(nil)
	called := false
	a.Start(func() { called = true }, 0, 1, time.Hour)
	a.Stop()
	a.Step(time.Now().Add(2 * time.Hour))
	if called || a.Animating() {
		t.Fatalf("stopped animation must stay silent")
	}
}

func TestSimpleZeroDurationFinishesImmediately(t *testing.T) {
	a := NewSimple(nil)
	called := false
	a.Start(func() { called = true }, 1, 0, 0)
	if !called || a.Animating() || a.Value(5) != 5 {
		t.Fatalf("zero-duration animation must complete synchronously")
	}
}
