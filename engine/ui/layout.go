package ui

import "github.com/hubastard/canopy/engine/theme"

// box is the provisional frame of a container before its content runs.
type box struct {
	x, y   float32
	w, h   float32
	fixedW bool
	fixedH bool
	pad    float32
}

// background paints a container. Each func returns the commands to draw
// for the resolved rect, in paint order.
type background func(r Rect) []Cmd

// compose runs content in a child context laid out along axis, resolves
// the container size and advances c past it.
func (c *Ctx) compose(b box, axis Axis, bg background, layers int, content func(*Ctx)) Rect {
	// Auto-sized backgrounds need the content size, so their commands go
	// into slots reserved ahead of the children.
	known := b.fixedH && (axis == Vertical || b.fixedW)
	var slots []Slot
	if bg != nil {
		if known {
			for _, cm := range bg(R(b.x, b.y, b.w, b.h)) {
				c.emit(cm)
			}
		} else {
			slots = make([]Slot, layers)
			for i := range slots {
				slots[i] = c.draw.Reserve()
			}
		}
	}

	innerW := b.w - 2*b.pad
	innerH := float32(0)
	if b.fixedH {
		innerH = b.h - 2*b.pad
	}
	sub := c.child(b.x+b.pad, b.y+b.pad, innerW, innerH, axis)
	if content != nil {
		content(sub)
	}
	c.adopt(sub)

	w, h := b.w, b.h
	if !b.fixedW {
		w = (sub.maxX - (b.x + b.pad)) + b.pad
	}
	if !b.fixedH {
		h = (sub.maxY - (b.y + b.pad)) + b.pad
	}
	r := R(b.x, b.y, w, h)

	if bg != nil && !known {
		for i, cm := range bg(r) {
			if i < len(slots) {
				c.fillLater(slots[i], cm)
			}
		}
	}
	return c.Place(r)
}

// Column stacks children vertically; height is explicit or fitted to the
// children. An explicit width is the room given to children and the column
// occupies it plus padding on both sides. Without one the column fills the
// available width and children get that minus padding.
func Column(ctx *Ctx, mod Modifier, content func(*Ctx)) Rect {
	_, release := ctx.enter()
	defer release()

	b := containerBox(ctx, mod)
	if b.fixedW {
		b.w += 2 * b.pad
	} else {
		b.w, b.fixedW = ctx.cursor.W, true
	}
	return ctx.compose(b, Vertical, plainBackground(mod, 0), 1, content)
}

// Row lays children out left to right. Both dimensions fit the children
// unless set on mod.
func Row(ctx *Ctx, mod Modifier, content func(*Ctx)) Rect {
	_, release := ctx.enter()
	defer release()

	b := containerBox(ctx, mod)
	if !b.fixedW {
		b.w = ctx.cursor.W
	}
	return ctx.compose(b, Horizontal, plainBackground(mod, theme.CardBorderRadius), 1, content)
}

// Card is a padded column drawn on a raised rounded surface. Its padding is
// always theme.CardPadding; mod.Padding is ignored.
func Card(ctx *Ctx, mod Modifier, content func(*Ctx)) Rect {
	_, release := ctx.enter()
	defer release()

	t := ctx.Theme()
	b := containerBox(ctx, mod)
	b.pad = theme.CardPadding
	b.w, b.fixedW = mod.widthOr(ctx.cursor.W), true
	surface := mod.bgOr(t.Colors.Surface.WithAlpha(240))
	shadow := t.Colors.Shadow
	bg := func(r Rect) []Cmd {
		return []Cmd{
			{Kind: CmdShadow, Rect: r.Translate(0, theme.CardShadowOffset), Radius: theme.CardBorderRadius, Blur: theme.CardShadowBlur, Color: shadow},
			{Kind: CmdRoundedRect, Rect: r, Radius: theme.CardBorderRadius, Color: surface},
		}
	}
	return ctx.compose(b, Vertical, bg, 2, content)
}

// ScrollView shows content through a fixed-height viewport with wheel and
// thumb-drag scrolling. Its ScrollState persists under the view's identity.
func ScrollView(ctx *Ctx, mod Modifier, content func(*Ctx)) Rect {
	id, release := ctx.enter()
	defer release()

	t := ctx.Theme()
	pad := mod.Padding
	r := R(ctx.cursor.X, ctx.cursor.Y, mod.widthOr(ctx.cursor.W), mod.heightOr(theme.ScrollViewHeight))
	st := UseStateWithID(ctx, id, func() ScrollState { return ScrollState{} })
	s := st.Get()

	if bg, ok := mod.BackgroundColor(); ok {
		ctx.FillRoundedRect(r, theme.CardBorderRadius, bg)
	}

	s.ViewportHeight = maxf(r.H-2*pad, 0)
	s.Hovered = ctx.IsHovered(r)
	if s.Hovered && ctx.in.ScrollDelta != 0 {
		s.Scroll(ctx.in.ScrollDelta)
	}

	view := R(r.X+pad, r.Y+pad, r.W-2*pad-theme.ScrollbarWidth, s.ViewportHeight)
	sub := ctx.child(view.X, view.Y, view.W, 0, Vertical)
	sub.scrollY = ctx.scrollY + s.Offset
	sub.clipTo(ctx.toScreen(view))
	if content != nil {
		content(sub)
	}
	ctx.adopt(sub)

	s.ContentHeight = sub.maxY - view.Y
	s.Clamp()

	trackX := r.Right() - theme.ScrollbarWidth
	if s.CanScroll() {
		ctx.FillRect(R(trackX, view.Y, theme.ScrollbarWidth, s.ViewportHeight), t.Colors.Border.WithAlpha(50))
		trackY := view.Y - ctx.scrollY
		thumb, _ := s.ThumbRect(trackX, trackY)
		over := ctx.IsHoveredAbsolute(thumb)
		s.Drag(ctx.in, thumb, over)
		thumb, _ = s.ThumbRect(trackX, trackY)
		col := t.Colors.TextMuted
		if over || s.Dragging {
			col = t.Colors.TextSecondary
		}
		ctx.FillRoundedRect(thumb.Translate(0, ctx.scrollY), theme.ScrollbarWidth/2, col.WithAlpha(100))
	} else {
		s.Dragging = false
	}
	st.Set(s)

	return ctx.Place(r)
}

func containerBox(ctx *Ctx, mod Modifier) box {
	b := box{x: ctx.cursor.X, y: ctx.cursor.Y, pad: mod.Padding}
	b.w, b.fixedW = mod.FixedWidth()
	b.h, b.fixedH = mod.FixedHeight()
	return b
}

func plainBackground(mod Modifier, radius float32) background {
	col, ok := mod.BackgroundColor()
	if !ok {
		return nil
	}
	kind := CmdRect
	if radius > 0 {
		kind = CmdRoundedRect
	}
	return func(r Rect) []Cmd {
		return []Cmd{{Kind: kind, Rect: r, Radius: radius, Color: col}}
	}
}
