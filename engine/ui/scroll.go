package ui

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/theme"
)

// ScrollState is the persisted state of one scroll container.
type ScrollState struct {
	Offset         float32
	ContentHeight  float32
	ViewportHeight float32

	Hovered         bool
	Dragging        bool
	DragStartY      float32
	DragStartOffset float32
}

func (s *ScrollState) MaxOffset() float32 {
	return maxf(s.ContentHeight-s.ViewportHeight, 0)
}

// Scroll moves the content by delta pixels; positive delta scrolls up.
func (s *ScrollState) Scroll(delta float32) {
	s.Offset = clamp(s.Offset-delta, 0, s.MaxOffset())
}

func (s *ScrollState) ScrollTo(y float32) {
	s.Offset = clamp(y, 0, s.MaxOffset())
}

// Clamp pulls Offset back into range after the content or viewport changed.
func (s *ScrollState) Clamp() {
	s.ScrollTo(s.Offset)
}

func (s *ScrollState) CanScroll() bool {
	return s.ContentHeight > s.ViewportHeight
}

// ThumbRect places the scrollbar thumb in a track starting at (x, trackY).
// It reports false when everything fits.
func (s *ScrollState) ThumbRect(x, trackY float32) (Rect, bool) {
	if !s.CanScroll() {
		return Rect{}, false
	}
	h := maxf(s.ViewportHeight/s.ContentHeight*s.ViewportHeight, theme.ScrollbarMinHeight)
	y := trackY + s.Offset/(s.ContentHeight-s.ViewportHeight)*(s.ViewportHeight-h)
	return Rect{X: x, Y: y, W: theme.ScrollbarWidth, H: h}, true
}

// Drag advances the thumb drag state machine for one frame. over reports
// whether the pointer is on thumb in screen space.
func (s *ScrollState) Drag(in *core.InputState, thumb Rect, over bool) {
	if over && in.MousePressed {
		s.Dragging = true
		s.DragStartY = in.MouseY
		s.DragStartOffset = s.Offset
	}
	if s.Dragging && !in.MouseDown {
		s.Dragging = false
	}
	if !s.Dragging {
		return
	}
	travel := s.ViewportHeight - thumb.H
	scrollRange := s.ContentHeight - s.ViewportHeight
	if travel <= 0 || scrollRange <= 0 {
		return
	}
	ratio := (in.MouseY - s.DragStartY) / travel
	s.ScrollTo(s.DragStartOffset + ratio*scrollRange)
}
