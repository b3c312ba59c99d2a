package main

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/raster"
	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/theme"
)

// App presents the shared canvas that the layers paint into.
type App struct {
	theme   theme.Theme
	font    *text.Font
	canvas  *raster.Canvas
	stats   *profiler.Stats
	shotDir string
}

func NewApp(t theme.Theme, font *text.Font, shotDir string) *App {
	return &App{theme: t, font: font, stats: profiler.NewStats(time.Second), shotDir: shotDir}
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	w, h := e.Window.FramebufferSize()
	canvas, err := raster.New(max(w, 1), max(h, 1), a.font)
	if err != nil {
		e.Logger().Error("canvas creation failed", "err", err)
		e.Window.RequestClose()
		return
	}
	a.canvas = canvas

	e.Layers.Push(NewDashboardLayer(canvas, a.theme, a.stats))
	e.Layers.Push(NewLayerDebug(canvas, a.stats, e.Config.ScratchCapacity))
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine) {
	if a.canvas == nil {
		return
	}
	if err := e.Renderer.Present(a.canvas.Pixels(), a.canvas.Width(), a.canvas.Height()); err != nil {
		e.Logger().Error("present failed", "err", err)
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyF12 {
		path, err := a.screenshot(time.Now())
		if err != nil {
			e.Logger().Error("screenshot failed", "err", err)
			return
		}
		e.Logger().Info("screenshot saved", "path", path)
	}
}

// screenshot writes the last painted frame as a timestamped PNG.
func (a *App) screenshot(now time.Time) (string, error) {
	if a.canvas == nil {
		return "", errors.New("no canvas")
	}
	path := filepath.Join(a.shotDir, "canopy-"+now.Format("20060102-150405")+".png")
	return path, a.canvas.SavePNG(path)
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.canvas != nil {
		closeLogged(e.Logger(), "canvas", a.canvas)
	}
	if a.font != nil {
		closeLogged(e.Logger(), "font", a.font)
	}
}

func closeLogged(l *slog.Logger, what string, c io.Closer) {
	if err := c.Close(); err != nil {
		l.Warn(what+" close failed", "err", err)
	}
}
