// Package raster draws UI commands into a CPU pixmap with gogpu/gg.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/ui"
)

// maxShadowLayers bounds the rings used to approximate a blurred shadow.
const maxShadowLayers = 8

// Canvas is a ui.Rasterizer backed by a gg software context. Text needs a
// font; without one DrawText and MeasureText report zero.
type Canvas struct {
	dc      *gg.Context
	font    *text.Font
	err     error
	clip    ui.Rect
	hasClip bool
	saved   []byte
}

var _ ui.Rasterizer = (*Canvas)(nil)

func New(w, h int, font *text.Font) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: canvas size %dx%d must be positive", w, h)
	}
	return &Canvas{dc: gg.NewContext(w, h), font: font}, nil
}

func (c *Canvas) Width() int         { return c.dc.Width() }
func (c *Canvas) Height() int        { return c.dc.Height() }
func (c *Canvas) Font() *text.Font   { return c.font }
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Pixels returns the RGBA8 framebuffer, row-major from the top-left.
// The slice aliases the canvas and is replaced by Resize.
func (c *Canvas) Pixels() []byte { return c.dc.ResizeTarget().Data() }

// Resize reallocates the pixmap when the size changes; contents are lost.
func (c *Canvas) Resize(w, h int) error {
	if err := c.dc.Resize(w, h); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}

// Clear drops the clip and fills every pixel with col.
func (c *Canvas) Clear(col colors.Color) {
	c.hasClip = false
	c.dc.ResetClip()
	f := col.Float()
	c.dc.ClearWithColor(gg.RGBA{R: float64(f[0]), G: float64(f[1]), B: float64(f[2]), A: float64(f[3])})
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %q: %w", path, err)
	}
	return nil
}

// Err returns the fill errors collected since the last call and clears them.
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) setColor(col colors.Color) {
	f := col.Float()
	c.dc.SetRGBA(float64(f[0]), float64(f[1]), float64(f[2]), float64(f[3]))
}

func (c *Canvas) fill() {
	if err := c.dc.Fill(); err != nil {
		if c.err == nil {
			core.Logger().Debug("raster fill failed", "err", err)
		}
		c.err = errors.Join(c.err, err)
	}
}

func (c *Canvas) FillRect(r ui.Rect, col colors.Color) {
	if r.Empty() || col.A == 0 {
		return
	}
	c.setColor(col)
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	c.fill()
}

func (c *Canvas) FillRoundedRect(r ui.Rect, radius float32, col colors.Color) {
	if r.Empty() || col.A == 0 {
		return
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		c.FillRect(r, col)
		return
	}
	c.setColor(col)
	c.dc.DrawRoundedRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), float64(radius))
	c.fill()
}

// DrawShadow approximates a blurred drop shadow with concentric rounded
// rects, widest and faintest first. The summed alpha at the centre is col.A.
func (c *Canvas) DrawShadow(r ui.Rect, radius, blur float32, col colors.Color) {
	if r.Empty() || col.A == 0 {
		return
	}
	n := int(math.Ceil(float64(blur)))
	if n <= 0 {
		c.FillRoundedRect(r, radius, col)
		return
	}
	n = min(n, maxShadowLayers)
	step := blur / float32(n)
	layer := shadowLayerAlpha(col.A, n)
	for i := n - 1; i >= 0; i-- {
		grow := step * float32(i)
		c.FillRoundedRect(r.Inset(-grow), radius+grow, col.WithAlpha(layer))
	}
}

// shadowLayerAlpha is the per-ring alpha whose n-fold composite reaches a.
func shadowLayerAlpha(a uint8, n int) uint8 {
	total := float64(a) / 255
	per := 1 - math.Pow(1-total, 1/float64(n))
	return uint8(math.Round(per * 255))
}

func (c *Canvas) DrawText(x, y, size float32, s string, col colors.Color) float32 {
	if c.font == nil || s == "" || size <= 0 {
		return 0
	}
	w, h := c.font.Measure(size, s)
	restore := c.guardClip(ui.R(x, y, w, h).Inset(-textOverhang))
	c.dc.SetFont(c.font.Face(size))
	c.setColor(col)
	c.dc.DrawString(s, float64(x), float64(y+c.font.Ascent(size)))
	restore()
	return w
}

// textOverhang covers glyph ink outside the advance box.
const textOverhang = 4

// guardClip saves the pixels of box that lie outside the clip and returns
// the func that puts them back. gg draws text straight into the pixmap,
// past the clip stack.
func (c *Canvas) guardClip(box ui.Rect) func() {
	if !c.hasClip {
		return func() {}
	}
	w, h := c.Width(), c.Height()
	x0, y0 := clampInt(int(math.Floor(float64(box.X))), 0, w), clampInt(int(math.Floor(float64(box.Y))), 0, h)
	x1, y1 := clampInt(int(math.Ceil(float64(box.Right()))), 0, w), clampInt(int(math.Ceil(float64(box.Bottom()))), 0, h)
	inside := func(px, py int) bool { return c.clip.Contains(float32(px)+0.5, float32(py)+0.5) }
	if x0 >= x1 || y0 >= y1 || (inside(x0, y0) && inside(x1-1, y1-1)) {
		return func() {}
	}

	pix := c.Pixels()
	row := (x1 - x0) * 4
	c.saved = c.saved[:0]
	for py := y0; py < y1; py++ {
		i := (py*w + x0) * 4
		c.saved = append(c.saved, pix[i:i+row]...)
	}
	return func() {
		for py := y0; py < y1; py++ {
			for px := x0; px < x1; px++ {
				if inside(px, py) {
					continue
				}
				src := ((py-y0)*(x1-x0) + (px - x0)) * 4
				dst := (py*w + px) * 4
				copy(pix[dst:dst+4], c.saved[src:src+4])
			}
		}
	}
}

func clampInt(v, lo, hi int) int { return max(lo, min(v, hi)) }

func (c *Canvas) MeasureText(size float32, s string) (w, h float32) {
	if c.font == nil || size <= 0 {
		return 0, 0
	}
	return c.font.Measure(size, s)
}

func (c *Canvas) SetClip(r ui.Rect, ok bool) {
	c.clip, c.hasClip = r, ok
	c.dc.ResetClip()
	if ok {
		c.dc.ClipRect(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	}
}
