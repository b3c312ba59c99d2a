package main

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/raster"
	"github.com/hubastard/canopy/engine/scratch"
	"github.com/hubastard/canopy/engine/theme"
	"github.com/hubastard/canopy/engine/ui"
)

const (
	overlayWidth  float32 = 210
	overlayLine   float32 = 20
	overlayMargin float32 = 8
)

// LayerDebug draws frame statistics over the dashboard. F3 toggles it and
// Ctrl+P dumps the scope profile when built with -tags profile.
type LayerDebug struct {
	canvas  *raster.Canvas
	surface *ui.Surface
	stats   *profiler.Stats
	buf     *scratch.Buffer
	visible bool
}

func NewLayerDebug(canvas *raster.Canvas, stats *profiler.Stats, scratchCap int) *LayerDebug {
	store := ui.NewStore(theme.Dark(), ui.WithLogger(core.Logger().With("layer", "debug")))
	return &LayerDebug{
		canvas:  canvas,
		surface: ui.NewSurface(store, canvas),
		stats:   stats,
		buf:     scratch.New(scratchCap),
	}
}

func (l *LayerDebug) OnAttach(e *core.Engine)             {}
func (l *LayerDebug) OnDetach(e *core.Engine)             {}
func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine) {
	if !l.visible {
		return
	}
	defer profiler.Start("LayerDebug.OnRender")()
	l.render(l.canvas.Width(), l.canvas.Height())
}

func (l *LayerDebug) render(w, h int) ui.FrameStats {
	l.buf.Reset()
	return l.surface.Frame(nil, w, h, func(ctx *ui.Ctx) {
		drawOverlay(ctx, l.buf, l.stats, w, h)
	})
}

// drawOverlay paints a translucent panel in the top-left corner with one
// statistic per line and a health swatch.
func drawOverlay(ctx *ui.Ctx, b *scratch.Buffer, st *profiler.Stats, w, h int) {
	last := st.Last()
	lines := []func(){
		func() { b.S("FPS: ").F(st.FPS(), 0) },
		func() { b.S("Frame: ").Ms(st.FrameTime()) },
		func() { b.S("Res: ").I(w).C('x').I(h) },
		func() { b.S("Cmds: ").I(last.Commands).S("  Widgets: ").I(last.Widgets) },
		func() { b.S("States: ").I(last.States) },
		func() { b.S("Heap: ").Bytes(profiler.MemoryUsage()).S("  G: ").I(profiler.NumGoroutine()) },
	}

	panel := ui.R(0, 0, overlayWidth, float32(len(lines))*overlayLine+2*overlayMargin)
	ctx.FillRect(panel, colors.Black.WithAlpha(200))
	for i, line := range lines {
		m := b.Mark()
		line()
		ctx.DrawText(overlayMargin, overlayMargin+float32(i)*overlayLine, theme.FontSM, b.View(m), colors.White)
	}
	ctx.FillRect(ui.R(overlayWidth-22, 10, 12, 12), healthColor(profiler.HealthOf(st.FPS())))
	ctx.Place(panel)
}

func healthColor(h profiler.Health) colors.Color {
	switch h {
	case profiler.Smooth:
		return colors.Green
	case profiler.Choppy:
		return colors.RGBA(255, 200, 0, 255)
	}
	return colors.Red
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	switch {
	case k.Key == core.KeyF3:
		l.visible = !l.visible
		e.Logger().Debug("debug overlay toggled", "visible", l.visible)
		return true
	case k.Key == core.KeyP && k.Mods&core.ModCtrl != 0:
		if path, err := profiler.OpenProfilerGraph(); err != nil {
			e.Logger().Warn("profiler dump failed", "err", err)
		} else if path != "" {
			e.Logger().Info("speedscope dump written", "path", path)
		}
		return true
	}
	return false
}
