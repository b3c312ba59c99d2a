package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/theme"
)

type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// Measurer reports the size text would occupy.
type Measurer interface {
	MeasureText(size float32, s string) (w, h float32)
}

// frame is shared by every Ctx of one frame.
type frame struct {
	store   *Store
	in      *core.InputState
	draw    *DrawList
	measure Measurer
	widgets int
}

// Ctx is the UI context handed to every composition scope.
//
// Rects live in content space: positions as if no scroll container were
// scrolled. scrollY is the total scroll between content space and the
// screen, and is subtracted when drawing and hit-testing.
type Ctx struct {
	*frame

	cursor  Rect
	clip    Rect
	hasClip bool
	scrollY float32
	axis    Axis
	maxX    float32
	maxY    float32
	counter uint64
	depth   int
}

// NewCtx returns a root context covering bounds.
func NewCtx(store *Store, in *core.InputState, draw *DrawList, bounds Rect) *Ctx {
	if in == nil {
		in = &core.InputState{}
	}
	return &Ctx{
		frame:  &frame{store: store, in: in, draw: draw},
		cursor: bounds,
		maxX:   bounds.X,
		maxY:   bounds.Y,
	}
}

// child derives a nested context with its cursor at (x, y).
func (c *Ctx) child(x, y, w, h float32, axis Axis) *Ctx {
	return &Ctx{
		frame:   c.frame,
		cursor:  R(x, y, w, h),
		clip:    c.clip,
		hasClip: c.hasClip,
		scrollY: c.scrollY,
		axis:    axis,
		maxX:    x,
		maxY:    y,
		counter: c.counter,
		depth:   c.depth + 1,
	}
}

// adopt takes back the id counter a child advanced.
func (c *Ctx) adopt(child *Ctx) {
	c.counter = child.counter
}

func (c *Ctx) Cursor() Rect                 { return c.cursor }
func (c *Ctx) SetCursor(r Rect)             { c.cursor = r }
func (c *Ctx) Axis() Axis                   { return c.axis }
func (c *Ctx) Depth() int                   { return c.depth }
func (c *Ctx) Store() *Store                { return c.store }
func (c *Ctx) Input() *core.InputState      { return c.in }
func (c *Ctx) Theme() theme.Theme           { return c.store.Theme() }
func (c *Ctx) ScrollY() float32             { return c.scrollY }
func (c *Ctx) Clip() (Rect, bool)           { return c.clip, c.hasClip }
func (c *Ctx) Extent() (maxX, maxY float32) { return c.maxX, c.maxY }

// SetMeasurer sets the text measurer for this frame.
func (c *Ctx) SetMeasurer(m Measurer) { c.measure = m }

// PushID opens an identity scope. The returned func closes it; calls after
// the first do nothing.
func (c *Ctx) PushID(id uint64) func() {
	c.store.pushID(id)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		c.store.popID()
	}
}

// NextID hands out the next widget ordinal of this context.
func (c *Ctx) NextID() uint64 {
	id := c.counter
	c.counter++
	return id
}

// enter mints a widget id, opens its scope and counts the widget.
func (c *Ctx) enter() (uint64, func()) {
	id := c.NextID()
	c.widgets++
	return id, c.PushID(id)
}

// Place records a leaf of box r, grows the extents and moves the cursor
// past it along the context axis.
func (c *Ctx) Place(r Rect) Rect {
	c.maxX = maxf(c.maxX, r.Right())
	c.maxY = maxf(c.maxY, r.Bottom())
	switch c.axis {
	case Horizontal:
		used := r.Right() - c.cursor.X
		c.cursor.X = r.Right()
		c.cursor.W = maxf(c.cursor.W-used, 0)
	default:
		c.cursor.Y = r.Bottom()
	}
	return r
}

// Space advances the cursor without drawing.
func (c *Ctx) Space(w, h float32) Rect {
	return c.Place(R(c.cursor.X, c.cursor.Y, w, h))
}

// IsHovered tests r, given in content space, against the pointer.
func (c *Ctx) IsHovered(r Rect) bool {
	x, y := c.in.MouseX, c.in.MouseY
	if c.hasClip && !c.clip.Contains(x, y) {
		return false
	}
	return c.toScreen(r).Contains(x, y)
}

// IsHoveredAbsolute tests a screen-space rect with no clip or scroll.
func (c *Ctx) IsHoveredAbsolute(r Rect) bool {
	return r.Contains(c.in.MouseX, c.in.MouseY)
}

func (c *Ctx) Clicked(r Rect) bool { return c.IsHovered(r) && c.in.MousePressed }
func (c *Ctx) Pressed(r Rect) bool { return c.IsHovered(r) && c.in.MouseDown }

func (c *Ctx) toScreen(r Rect) Rect {
	return r.Translate(0, -c.scrollY)
}

// clipTo narrows the clip to r, given in screen space.
func (c *Ctx) clipTo(r Rect) {
	if c.hasClip {
		r = r.Intersect(c.clip)
	}
	c.clip, c.hasClip = r, true
}

// cmd converts a content-space command to screen space under the current
// clip. It returns false when the command is fully clipped.
func (c *Ctx) cmd(cm Cmd) (Cmd, bool) {
	cm.Rect = c.toScreen(cm.Rect)
	cm.Clip, cm.HasClip = c.clip, c.hasClip
	if c.hasClip && c.clip.Intersect(cm.Rect).Empty() {
		return cm, false
	}
	return cm, true
}

func (c *Ctx) emit(cm Cmd) {
	if cm, ok := c.cmd(cm); ok {
		c.draw.Push(cm)
	}
}

// fillLater fills a reserved slot once the box is known.
func (c *Ctx) fillLater(s Slot, cm Cmd) {
	if cm, ok := c.cmd(cm); ok {
		c.draw.Fill(s, cm)
	}
}

func (c *Ctx) FillRect(r Rect, col colors.Color) {
	c.emit(Cmd{Kind: CmdRect, Rect: r, Color: col})
}

func (c *Ctx) FillRoundedRect(r Rect, radius float32, col colors.Color) {
	c.emit(Cmd{Kind: CmdRoundedRect, Rect: r, Radius: radius, Color: col})
}

func (c *Ctx) DrawShadow(r Rect, radius, blur float32, col colors.Color) {
	c.emit(Cmd{Kind: CmdShadow, Rect: r, Radius: radius, Blur: blur, Color: col})
}

// DrawText queues s at (x, y) and returns its measured size. Empty strings
// and zero-size glyphs are measured but not drawn.
func (c *Ctx) DrawText(x, y, size float32, s string, col colors.Color) (w, h float32) {
	w, h = c.MeasureText(size, s)
	if s == "" || (w <= 0 && h <= 0) {
		return w, h
	}
	c.emit(Cmd{Kind: CmdText, Rect: Rect{X: x, Y: y, W: w, H: h}, Size: size, Text: s, Color: col})
	return w, h
}

// MeasureText uses the surface's rasterizer, or a fixed-width estimate when
// the context has none.
func (c *Ctx) MeasureText(size float32, s string) (w, h float32) {
	if c.measure != nil {
		return c.measure.MeasureText(size, s)
	}
	return float32(len([]rune(s))) * size * 0.5, size
}
