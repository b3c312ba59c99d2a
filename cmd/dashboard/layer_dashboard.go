package main

import (
	"time"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/raster"
	"github.com/hubastard/canopy/engine/theme"
	"github.com/hubastard/canopy/engine/ui"
)

// DashboardLayer owns the canvas clear and the main UI frame.
type DashboardLayer struct {
	canvas  *raster.Canvas
	surface *ui.Surface
	stats   *profiler.Stats
	last    time.Time
}

func NewDashboardLayer(canvas *raster.Canvas, t theme.Theme, stats *profiler.Stats) *DashboardLayer {
	store := ui.NewStore(t, ui.WithLogger(core.Logger().With("layer", "dashboard")))
	return &DashboardLayer{canvas: canvas, surface: ui.NewSurface(store, canvas), stats: stats}
}

func (l *DashboardLayer) OnAttach(e *core.Engine) {
	e.Logger().Info("dashboard attached", "theme", l.surface.Store().Theme().Name)
}

func (l *DashboardLayer) OnDetach(e *core.Engine) {
	e.Logger().Info("dashboard detached", "states", l.surface.Store().Len())
}

func (l *DashboardLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *DashboardLayer) OnRender(e *core.Engine) {
	defer profiler.Start("DashboardLayer.OnRender")()

	w, h := e.Window.FramebufferSize()
	if w <= 0 || h <= 0 {
		return
	}
	if err := l.canvas.Resize(w, h); err != nil {
		e.Logger().Error("canvas resize failed", "err", err)
		return
	}

	start := time.Now()
	in := e.Input.Snapshot()
	fs := l.render(&in, w, h)
	if err := l.canvas.Err(); err != nil {
		e.Logger().Warn("rasterizer errors this frame", "err", err)
	}

	if !l.last.IsZero() {
		l.stats.Record(start.Sub(l.last), profiler.Sample{
			FrameTime: time.Since(start),
			Commands:  fs.Commands,
			Widgets:   fs.Widgets,
			States:    fs.States,
		})
	}
	l.last = start
}

// render clears to the theme background and paints one dashboard frame.
func (l *DashboardLayer) render(in *core.InputState, w, h int) ui.FrameStats {
	l.canvas.Clear(l.surface.Store().Theme().Colors.Background)
	return l.surface.Frame(in, w, h, func(ctx *ui.Ctx) {
		buildDashboard(ctx, float32(w), float32(h))
	})
}

func (l *DashboardLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
