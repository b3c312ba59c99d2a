package core

import (
	"fmt"
	"os"

	"github.com/hubastard/canopy/engine/colors"
	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"`

	// FontName is looked up in the platform font directories; FontPath wins
	// when set. The embedded Go font is used when neither resolves.
	FontName string `yaml:"font_name"`
	FontPath string `yaml:"font_path"`

	ThemeName string `yaml:"theme"`
	ThemeFile string `yaml:"theme_file"`

	LogLevel string `yaml:"log_level"`

	// ScratchCapacity is the initial size of the per-frame format buffer.
	ScratchCapacity int `yaml:"scratch_capacity"`
}

func DefaultConfig() Config {
	return Config{
		Title:           "canopy",
		Width:           1200,
		Height:          900,
		VSync:           true,
		ClearColor:      colors.Slate900,
		FontName:        "Arial",
		ThemeName:       "dark",
		LogLevel:        "info",
		ScratchCapacity: 4096,
	}
}

// ParseConfig overlays YAML data onto DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads path and overlays it onto DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.ScratchCapacity < 0 {
		return fmt.Errorf("config: scratch_capacity %d must not be negative", c.ScratchCapacity)
	}
	return nil
}
