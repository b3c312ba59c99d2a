package ui

import "github.com/hubastard/canopy/engine/colors"

// Modifier carries the optional styling and sizing a container or widget
// accepts. The zero value means no padding, no background and auto size.
type Modifier struct {
	Padding float32

	background colors.Color
	hasBg      bool
	width      float32
	hasW       bool
	height     float32
	hasH       bool
}

func Pad(v float32) Modifier     { return Modifier{}.Pad(v) }
func Bg(c colors.Color) Modifier { return Modifier{}.Bg(c) }
func Sz(w, h float32) Modifier   { return Modifier{}.Size(w, h) }

func (m Modifier) Pad(v float32) Modifier {
	m.Padding = v
	return m
}

func (m Modifier) Bg(c colors.Color) Modifier {
	m.background, m.hasBg = c, true
	return m
}

func (m Modifier) Size(w, h float32) Modifier {
	return m.W(w).H(h)
}

func (m Modifier) W(w float32) Modifier {
	m.width, m.hasW = w, true
	return m
}

func (m Modifier) H(h float32) Modifier {
	m.height, m.hasH = h, true
	return m
}

func (m Modifier) BackgroundColor() (colors.Color, bool) { return m.background, m.hasBg }
func (m Modifier) FixedWidth() (float32, bool)           { return m.width, m.hasW }
func (m Modifier) FixedHeight() (float32, bool)          { return m.height, m.hasH }

func (m Modifier) widthOr(def float32) float32 {
	if m.hasW {
		return m.width
	}
	return def
}

func (m Modifier) heightOr(def float32) float32 {
	if m.hasH {
		return m.height
	}
	return def
}

func (m Modifier) bgOr(def colors.Color) colors.Color {
	if m.hasBg {
		return m.background
	}
	return def
}
