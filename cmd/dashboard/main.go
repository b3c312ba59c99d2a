package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/platform"
	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/theme"
	"github.com/mattn/go-isatty"
)

type options struct {
	configPath string
	theme      string
	logLevel   string
	shotDir    string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.theme, "theme", "", "built-in theme (dark, light) or a YAML theme file")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&o.shotDir, "screenshots", ".", "directory for F12 screenshots")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(o options) (core.Config, error) {
	cfg, err := core.LoadConfig(o.configPath)
	if err != nil {
		return core.Config{}, err
	}
	if o.theme != "" {
		if _, err := theme.Named(o.theme); err == nil {
			cfg.ThemeName, cfg.ThemeFile = o.theme, ""
		} else {
			cfg.ThemeFile = o.theme
		}
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

func resolveTheme(cfg core.Config) (theme.Theme, error) {
	if cfg.ThemeFile != "" {
		return theme.LoadFile(cfg.ThemeFile)
	}
	return theme.Named(cfg.ThemeName)
}

// newLogger writes text to terminals and JSON everywhere else.
func newLogger(w io.Writer, tty bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if tty {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	log := newLogger(os.Stderr, isTerminal(os.Stderr), core.ParseLevel(cfg.LogLevel))
	core.SetLogger(log)
	slog.SetDefault(log)

	t, err := resolveTheme(cfg)
	if err != nil {
		return err
	}
	font, err := text.Load(cfg.FontName, cfg.FontPath)
	if err != nil {
		return err
	}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		win = w
		return w, err
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}
	defer func() {
		if win != nil {
			win.Destroy()
		}
	}()

	return core.Run(NewApp(t, font, o.shotDir), cfg, newWindow, newRenderer)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "dashboard:", err)
		os.Exit(1)
	}
}
