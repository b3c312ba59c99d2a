// Package assets embeds the GLSL sources used by the GL presenter.
package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed shaders/*.glsl
var shaders embed.FS

// LoadShader returns the named shader as a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaders.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// Shaders lists the embedded shader names.
func Shaders() []string {
	entries, _ := shaders.ReadDir("shaders")
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}
