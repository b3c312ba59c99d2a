package ui

import (
	"time"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/theme"
)

type op struct {
	Kind  string
	Rect  Rect
	Color colors.Color
	Text  string
}

// recorder is a Rasterizer that keeps every call for inspection.
type recorder struct {
	ops []op
}

func (r *recorder) FillRect(rc Rect, c colors.Color) {
	r.ops = append(r.ops, op{Kind: "rect", Rect: rc, Color: c})
}

func (r *recorder) FillRoundedRect(rc Rect, _ float32, c colors.Color) {
	r.ops = append(r.ops, op{Kind: "rounded", Rect: rc, Color: c})
}

func (r *recorder) DrawShadow(rc Rect, _, _ float32, c colors.Color) {
	r.ops = append(r.ops, op{Kind: "shadow", Rect: rc, Color: c})
}

func (r *recorder) DrawText(x, y, size float32, s string, c colors.Color) float32 {
	w, h := r.MeasureText(size, s)
	r.ops = append(r.ops, op{Kind: "text", Rect: Rect{X: x, Y: y, W: w, H: h}, Color: c, Text: s})
	return w
}

func (r *recorder) MeasureText(size float32, s string) (float32, float32) {
	return float32(len(s)) * size / 2, size
}

func (r *recorder) SetClip(rc Rect, ok bool) {
	if !ok {
		rc = Rect{}
	}
	r.ops = append(r.ops, op{Kind: "clip", Rect: rc})
}

// drawn returns the recorded ops without clip changes.
func (r *recorder) drawn() []op {
	var out []op
	for _, o := range r.ops {
		if o.Kind != "clip" {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) reset() { r.ops = r.ops[:0] }

// fixedClock is a settable time source for stores under test.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSurface() (*Surface, *recorder, *fixedClock) {
	clk := &fixedClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	store := NewStore(theme.Dark(), WithClock(clk.now))
	return NewSurface(store, rec), rec, clk
}
