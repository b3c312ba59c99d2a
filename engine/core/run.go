package core

import (
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	log := Logger()

	if err := cfg.Validate(); err != nil {
		return err
	}

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), Config: cfg, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if !eng.Layers.Dispatch(eng, ev) {
			app.OnEvent(eng, ev)
		}
		switch e := ev.(type) {
		case EventResize:
			if e.W < 1 || e.H < 1 {
				return
			}
			rend.Resize(e.W, e.H)
		case EventCloseRequested:
			win.RequestClose()
		}
	})

	app.OnStart(eng)
	eng.Layers.ForEach(func(l Layer) { l.OnAttach(eng) })
	log.Info("engine started", "width", w, "height", h, "layers", eng.Layers.Len())

	// Fixed-timestep (60 Hz) updates, one render per loop iteration.
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor.Float()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		if steps == maxStep {
			log.Warn("update loop fell behind", "dropped", accum)
			accum = 0
		}

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng) })
		app.OnRender(eng)
		eng.frames++

		// Edges are consumed by exactly one frame.
		eng.Input.EndFrame()

		win.SwapBuffers()
	}

	eng.Layers.ForEach(func(l Layer) { l.OnDetach(eng) })
	app.OnShutdown(eng)
	log.Info("engine exit", "frames", eng.frames, "uptime", eng.Uptime())
	return nil
}
