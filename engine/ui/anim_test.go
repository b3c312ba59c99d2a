package ui

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestAnimationSample(t *testing.T) {
	a := NewAnimation(0, 1, 150*ms, time.Time{})
	tests := []struct {
		elapsed time.Duration
		want    float32
	}{
		{0, 0},
		{75 * ms, 0.875},
		{150 * ms, 1},
		{400 * ms, 1},
	}
	for _, tt := range tests {
		if got := a.Sample(tt.elapsed); got != tt.want {
			t.Errorf("Sample(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestAnimationZeroDuration(t *testing.T) {
	now := time.Now()
	a := NewAnimation(3, 9, 0, now)
	if !a.CompleteAt(now) || a.ValueAt(now) != 9 {
		t.Errorf("zero-length animation: complete %v value %v", a.CompleteAt(now), a.ValueAt(now))
	}
}

func TestAnimatedValueKeepsRunningOnSameTarget(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := NewAnimatedValue(0)

	v.Set(1, 150*ms, t0)
	if got := v.Update(t0.Add(75 * ms)); got != 0.875 {
		t.Fatalf("midway = %v, want 0.875", got)
	}

	// Hover code repeats the same target every frame.
	v.Set(1, 150*ms, t0.Add(75*ms))
	if got := v.Update(t0.Add(150 * ms)); got != 1 {
		t.Errorf("end = %v, want 1", got)
	}
	if v.Animating() {
		t.Error("animation should retire once complete")
	}

	// A new target eases from the displayed value.
	v.Set(0, 150*ms, t0.Add(150*ms))
	if got := v.Update(t0.Add(225 * ms)); got != 0.125 {
		t.Errorf("reverse midway = %v, want 0.125", got)
	}
	if v.Target() != 0 {
		t.Errorf("Target = %v", v.Target())
	}
}

func TestAnimatedValueRetargetSamplesRunningCurve(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := NewAnimatedValue(0)

	// Retarget halfway with no Update in between.
	v.Set(1, 150*ms, t0)
	v.Set(0, 150*ms, t0.Add(75*ms))
	if got := v.Update(t0.Add(75 * ms)); got != 0.875 {
		t.Fatalf("value at retarget = %v, want 0.875", got)
	}
	if got := v.Update(t0.Add(150 * ms)); got != 0.109375 {
		t.Errorf("reverse midway = %v, want 0.109375", got)
	}
}
