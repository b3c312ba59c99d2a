package ui

// Rect is an axis-aligned box in pixels, top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// R builds a Rect, clamping negative sizes to zero.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: maxf(w, 0), H: maxf(h, 0)}
}

// Contains reports whether (x, y) lies inside r; all four edges are inclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }
func (r Rect) Empty() bool     { return r.W <= 0 || r.H <= 0 }

func (r Rect) Translate(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks r by p on every side.
func (r Rect) Inset(p float32) Rect {
	return R(r.X+p, r.Y+p, r.W-2*p, r.H-2*p)
}

// Intersect returns the overlap of r and o; disjoint rects give a zero-size
// rect anchored inside o.
func (r Rect) Intersect(o Rect) Rect {
	x0 := maxf(r.X, o.X)
	y0 := maxf(r.Y, o.Y)
	x1 := minf(r.Right(), o.Right())
	y1 := minf(r.Bottom(), o.Bottom())
	return R(x0, y0, x1-x0, y1-y0)
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
