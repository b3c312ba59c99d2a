package ui

import "github.com/hubastard/canopy/engine/colors"

// Rasterizer turns draw commands into pixels. Coordinates are screen pixels
// and colors blend with straight alpha.
type Rasterizer interface {
	FillRect(r Rect, c colors.Color)
	FillRoundedRect(r Rect, radius float32, c colors.Color)
	DrawShadow(r Rect, radius, blur float32, c colors.Color)
	// DrawText draws s with its top-left corner at (x, y) and returns the
	// horizontal advance.
	DrawText(x, y, size float32, s string, c colors.Color) float32
	MeasureText(size float32, s string) (w, h float32)
	// SetClip limits subsequent drawing to r; ok=false removes the clip.
	SetClip(r Rect, ok bool)
}

type CmdKind uint8

const (
	CmdNone CmdKind = iota // reserved slot never filled
	CmdRect
	CmdRoundedRect
	CmdShadow
	CmdText
)

// Cmd is one recorded draw operation in screen space.
type Cmd struct {
	Kind    CmdKind
	Rect    Rect
	Radius  float32
	Blur    float32
	Size    float32
	Text    string
	Color   colors.Color
	Clip    Rect
	HasClip bool
}

// Slot is a position in a DrawList reserved for a command recorded later.
type Slot int

// DrawList records commands during layout and replays them in order once the
// frame is built. Reserved slots let a container paint its background below
// children whose size decides that background.
type DrawList struct {
	cmds []Cmd
}

func NewDrawList(capacity int) *DrawList {
	return &DrawList{cmds: make([]Cmd, 0, capacity)}
}

func (d *DrawList) Reset()   { d.cmds = d.cmds[:0] }
func (d *DrawList) Len() int { return len(d.cmds) }

func (d *DrawList) Cmds() []Cmd { return d.cmds }

func (d *DrawList) Push(c Cmd) {
	if c.Kind != CmdText && c.Rect.Empty() {
		return
	}
	d.cmds = append(d.cmds, c)
}

// Reserve appends an empty command and returns its slot.
func (d *DrawList) Reserve() Slot {
	d.cmds = append(d.cmds, Cmd{})
	return Slot(len(d.cmds) - 1)
}

// Fill writes c into a reserved slot.
func (d *DrawList) Fill(s Slot, c Cmd) {
	if int(s) < 0 || int(s) >= len(d.cmds) {
		return
	}
	d.cmds[s] = c
}

// Replay issues every command to r and returns how many were drawn.
func (d *DrawList) Replay(r Rasterizer) int {
	var (
		n       int
		clip    Rect
		clipped bool
	)
	r.SetClip(Rect{}, false)
	for i := range d.cmds {
		c := &d.cmds[i]
		if c.Kind == CmdNone {
			continue
		}
		if c.HasClip != clipped || c.Clip != clip {
			clip, clipped = c.Clip, c.HasClip
			r.SetClip(clip, clipped)
		}
		switch c.Kind {
		case CmdRect:
			r.FillRect(c.Rect, c.Color)
		case CmdRoundedRect:
			r.FillRoundedRect(c.Rect, c.Radius, c.Color)
		case CmdShadow:
			r.DrawShadow(c.Rect, c.Radius, c.Blur, c.Color)
		case CmdText:
			r.DrawText(c.Rect.X, c.Rect.Y, c.Size, c.Text, c.Color)
		}
		n++
	}
	if clipped {
		r.SetClip(Rect{}, false)
	}
	return n
}
