package core

import (
	"log/slog"
	"time"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)              // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // called at a fixed tick (60Hz by default)
	OnRender(e *Engine)             // build and present one frame
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Config   Config
	start    time.Time
	frames   uint64
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Frame returns the number of frames rendered so far.
func (e *Engine) Frame() uint64 { return e.frames }

func (e *Engine) Logger() *slog.Logger { return Logger() }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer presents a CPU framebuffer to the window.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	// Present uploads tightly packed RGBA8 pixels (w*h*4 bytes) and draws them.
	Present(pixels []byte, w, h int) error
	Shutdown()
}
