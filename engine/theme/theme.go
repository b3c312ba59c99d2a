// Package theme holds the palette and metric scales widgets draw with.
package theme

import (
	"fmt"
	"os"

	"github.com/hubastard/canopy/engine/colors"
	"gopkg.in/yaml.v3"
)

type Colors struct {
	Background    colors.Color `yaml:"background"`
	Surface       colors.Color `yaml:"surface"`
	SurfaceHover  colors.Color `yaml:"surface_hover"`
	Primary       colors.Color `yaml:"primary"`
	PrimaryHover  colors.Color `yaml:"primary_hover"`
	Success       colors.Color `yaml:"success"`
	Error         colors.Color `yaml:"error"`
	TextPrimary   colors.Color `yaml:"text_primary"`
	TextSecondary colors.Color `yaml:"text_secondary"`
	TextMuted     colors.Color `yaml:"text_muted"`
	Border        colors.Color `yaml:"border"`
	Shadow        colors.Color `yaml:"shadow"`
}

type SpacingScale struct {
	XS  float32 `yaml:"xs"`
	SM  float32 `yaml:"sm"`
	MD  float32 `yaml:"md"`
	LG  float32 `yaml:"lg"`
	XL  float32 `yaml:"xl"`
	XXL float32 `yaml:"xxl"`
}

type RadiusScale struct {
	None float32 `yaml:"none"`
	SM   float32 `yaml:"sm"`
	MD   float32 `yaml:"md"`
	LG   float32 `yaml:"lg"`
	Full float32 `yaml:"full"`
}

type Theme struct {
	Name    string       `yaml:"name"`
	Colors  Colors       `yaml:"colors"`
	Spacing SpacingScale `yaml:"spacing"`
	Radius  RadiusScale  `yaml:"radius"`
}

func defaultSpacing() SpacingScale {
	return SpacingScale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48}
}

func defaultRadius() RadiusScale {
	return RadiusScale{None: 0, SM: 4, MD: 8, LG: 12, Full: 9999}
}

func Dark() Theme {
	return Theme{
		Name: "Dark",
		Colors: Colors{
			Background:    colors.Slate900,
			Surface:       colors.Slate800,
			SurfaceHover:  colors.RGBA(51, 65, 85, 255),
			Primary:       colors.Blue,
			PrimaryHover:  colors.RGBA(99, 102, 241, 255),
			Success:       colors.Green,
			Error:         colors.Red,
			TextPrimary:   colors.White,
			TextSecondary: colors.RGBA(148, 163, 184, 255),
			TextMuted:     colors.RGBA(71, 85, 105, 255),
			Border:        colors.RGBA(51, 65, 85, 255),
			Shadow:        colors.RGBA(0, 0, 0, 80),
		},
		Spacing: defaultSpacing(),
		Radius:  defaultRadius(),
	}
}

func Light() Theme {
	return Theme{
		Name: "Light",
		Colors: Colors{
			Background:    colors.RGBA(248, 250, 252, 255),
			Surface:       colors.White,
			SurfaceHover:  colors.RGBA(241, 245, 249, 255),
			Primary:       colors.RGBA(59, 130, 246, 255),
			PrimaryHover:  colors.RGBA(37, 99, 235, 255),
			Success:       colors.RGBA(22, 163, 74, 255),
			Error:         colors.RGBA(220, 38, 38, 255),
			TextPrimary:   colors.RGBA(15, 23, 42, 255),
			TextSecondary: colors.RGBA(71, 85, 105, 255),
			TextMuted:     colors.RGBA(148, 163, 184, 255),
			Border:        colors.RGBA(226, 232, 240, 255),
			Shadow:        colors.RGBA(0, 0, 0, 25),
		},
		Spacing: defaultSpacing(),
		Radius:  defaultRadius(),
	}
}

// Named returns a built-in theme by name ("dark" or "light").
func Named(name string) (Theme, error) {
	switch name {
	case "", "dark", "Dark":
		return Dark(), nil
	case "light", "Light":
		return Light(), nil
	}
	return Theme{}, fmt.Errorf("theme: unknown theme %q", name)
}

// Toggle flips between the built-in dark and light themes.
func Toggle(t Theme) Theme {
	if t.Name == "Dark" {
		return Light()
	}
	return Dark()
}

type fileTheme struct {
	Base  string `yaml:"base"`
	Theme `yaml:",inline"`
}

// Parse decodes a YAML theme. Keys that are absent keep the value of the
// base theme named by the "base" key (dark when empty).
func Parse(data []byte) (Theme, error) {
	var probe struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}
	base, err := Named(probe.Base)
	if err != nil {
		return Theme{}, err
	}
	ft := fileTheme{Base: probe.Base, Theme: base}
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}
	if ft.Name == "" {
		ft.Name = base.Name
	}
	return ft.Theme, nil
}

// LoadFile reads and parses a YAML theme file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %q: %w", path, err)
	}
	return Parse(data)
}
