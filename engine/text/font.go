package text

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"

	ggtext "github.com/gogpu/gg/text"
	"github.com/hubastard/canopy/engine/core"
	"golang.org/x/image/font/gofont/goregular"
)

// EmbeddedOrigin names the built-in fallback font.
const EmbeddedOrigin = "embedded:goregular"

// Font is a parsed font with one cached face per pixel size.
type Font struct {
	Source *ggtext.FontSource
	Origin string

	faces map[float32]ggtext.Face
}

func newFont(src *ggtext.FontSource, origin string) *Font {
	return &Font{Source: src, Origin: origin, faces: make(map[float32]ggtext.Face)}
}

// LoadFile parses the font at path.
func LoadFile(path string) (*Font, error) {
	src, err := ggtext.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	return newFont(src, path), nil
}

// Embedded returns the Go Regular font compiled into the binary.
func Embedded() (*Font, error) {
	src, err := ggtext.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return newFont(src, EmbeddedOrigin), nil
}

// Load resolves a font in order: path when set, the named system font,
// the platform defaults, then the embedded font. A path that fails to load
// is an error; the other steps fall through.
func Load(name, path string) (*Font, error) {
	log := core.Logger()
	if path != "" {
		return LoadFile(path)
	}
	var errs []error
	for _, p := range candidates(name) {
		f, err := LoadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Info("font loaded", "name", name, "path", p)
		return f, nil
	}
	f, err := Embedded()
	if err != nil {
		return nil, errors.Join(append(errs, err)...)
	}
	log.Warn("no system font found, using embedded font", "name", name, "tried", len(errs))
	return f, nil
}

// candidates lists the existing system font files for name.
func candidates(name string) []string {
	var out []string
	for _, p := range SystemFontPaths(runtime.GOOS, name) {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			out = append(out, p)
		}
	}
	return out
}

// Face returns the face for size, creating it on first use.
func (f *Font) Face(size float32) ggtext.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := f.Source.Face(float64(size))
	f.faces[size] = face
	return face
}

// Measure returns the advance width and line height of s at size.
func (f *Font) Measure(size float32, s string) (w, h float32) {
	face := f.Face(size)
	mw, _ := ggtext.Measure(s, face)
	return float32(mw), f.LineHeight(size)
}

// Ascent is the baseline offset from the top of a line at size.
func (f *Font) Ascent(size float32) float32 {
	return float32(math.Ceil(f.Face(size).Metrics().Ascent))
}

func (f *Font) LineHeight(size float32) float32 {
	return float32(math.Ceil(f.Face(size).Metrics().LineHeight()))
}

func (f *Font) Name() string { return f.Source.Name() }

func (f *Font) Close() error {
	clear(f.faces)
	return f.Source.Close()
}
