package text

import (
	"os"
	"path/filepath"
)

// SystemFontPaths lists the files tried for name on goos, most specific
// first. The platform defaults come after the named candidates.
func SystemFontPaths(goos, name string) []string {
	var paths []string
	file := name + ".ttf"
	switch goos {
	case "windows":
		dir := filepath.Join(windowsDir(), "Fonts")
		if name != "" {
			paths = append(paths, filepath.Join(dir, file))
		}
		paths = append(paths, filepath.Join(dir, "arial.ttf"), filepath.Join(dir, "segoeui.ttf"))
	case "darwin":
		if name != "" {
			paths = append(paths,
				filepath.Join("/Library/Fonts", file),
				filepath.Join("/System/Library/Fonts/Supplemental", file),
			)
		}
		paths = append(paths, "/Library/Fonts/Arial.ttf", "/System/Library/Fonts/Supplemental/Arial.ttf")
	default:
		if name != "" {
			for _, dir := range []string{
				"/usr/share/fonts/truetype",
				"/usr/share/fonts/TTF",
				"/usr/local/share/fonts",
			} {
				paths = append(paths, filepath.Join(dir, file))
			}
		}
		paths = append(paths,
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		)
	}
	return paths
}

// FindSystemFont returns the first existing candidate for name on this OS.
func FindSystemFont(name string) (string, bool) {
	if c := candidates(name); len(c) > 0 {
		return c[0], true
	}
	return "", false
}

func windowsDir() string {
	if d := os.Getenv("WINDIR"); d != "" {
		return d
	}
	return `C:\Windows`
}
