package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit straight-alpha RGBA colour.
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Red         = Color{244, 63, 94, 255}
	Green       = Color{16, 185, 129, 255}
	Blue        = Color{79, 70, 229, 255}
	Yellow      = Color{250, 204, 21, 255}
	Slate800    = Color{30, 41, 59, 255}
	Slate900    = Color{15, 23, 42, 255}
	Transparent = Color{}
)

// RGBA builds a colour from 0-255 channels.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Lerp blends every channel, alpha included, t in [0,1].
func Lerp(a, b Color, t float32) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return Color{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Over composites src onto dst with out = src*a + dst*(1-a).
func Over(src, dst Color) Color {
	a := float32(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float32(s)*a + float32(d)*(1-a))
	}
	return Color{mix(src.R, dst.R), mix(src.G, dst.G), mix(src.B, dst.B), 255}
}

// Float returns the colour as normalised floats, for GL clears.
func (c Color) Float() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// Float64 returns the colour as normalised float64 channels.
func (c Color) Float64() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Hex formats the colour as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colors: invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid hex colour %q: %w", s, err)
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MarshalYAML writes the colour as a hex string.
func (c Color) MarshalYAML() (any, error) { return c.Hex(), nil }

// UnmarshalYAML reads a hex string.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
