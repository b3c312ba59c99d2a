package ui

import "time"

// Animation eases from Start to Target over Duration with an ease-out cubic.
type Animation struct {
	Start    float32
	Target   float32
	Began    time.Time
	Duration time.Duration
}

func NewAnimation(start, target float32, d time.Duration, now time.Time) Animation {
	return Animation{Start: start, Target: target, Began: now, Duration: d}
}

// Sample returns the value after elapsed. Once elapsed reaches Duration the
// result is Target exactly.
func (a Animation) Sample(elapsed time.Duration) float32 {
	if elapsed >= a.Duration {
		return a.Target
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float32(float64(elapsed) / float64(a.Duration))
	inv := 1 - t
	eased := 1 - inv*inv*inv
	return a.Start + (a.Target-a.Start)*eased
}

func (a Animation) ValueAt(now time.Time) float32 {
	return a.Sample(now.Sub(a.Began))
}

func (a Animation) CompleteAt(now time.Time) bool {
	return now.Sub(a.Began) >= a.Duration
}

// AnimatedValue is a float that glides toward the last requested target.
// It is a plain value so it can live in the state store.
type AnimatedValue struct {
	current float32
	target  float32
	anim    *Animation
}

func NewAnimatedValue(initial float32) AnimatedValue {
	return AnimatedValue{current: initial, target: initial}
}

// Set starts easing toward target from the value shown at now. Repeating the
// same target does not restart the curve.
func (v *AnimatedValue) Set(target float32, d time.Duration, now time.Time) {
	if target == v.target {
		return
	}
	if v.anim != nil {
		v.current = v.anim.ValueAt(now)
	}
	v.target = target
	a := NewAnimation(v.current, target, d, now)
	v.anim = &a
}

// Update samples the running animation and retires it once complete.
func (v *AnimatedValue) Update(now time.Time) float32 {
	if v.anim == nil {
		return v.current
	}
	v.current = v.anim.ValueAt(now)
	if v.anim.CompleteAt(now) {
		v.anim = nil
	}
	return v.current
}

func (v AnimatedValue) Value() float32  { return v.current }
func (v AnimatedValue) Target() float32 { return v.target }
func (v AnimatedValue) Animating() bool { return v.anim != nil }

// animate drives the hover-style animation stored under local and returns
// the eased value for this frame.
func animate(ctx *Ctx, local uint64, target float32, d time.Duration) float32 {
	h := UseStateWithID(ctx, local, func() AnimatedValue { return NewAnimatedValue(0) })
	now := ctx.store.Now()
	v := h.Get()
	v.Set(target, d, now)
	out := v.Update(now)
	h.Set(v)
	return out
}
