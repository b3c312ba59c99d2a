package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeWindow struct {
	cb     func(Event)
	polls  int
	closed bool
	script map[int][]Event
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	for _, ev := range w.script[w.polls] {
		w.cb(ev)
	}
}
func (w *fakeWindow) SwapBuffers()                    {}
func (w *fakeWindow) ShouldClose() bool               { return w.closed || w.polls >= 10 }
func (w *fakeWindow) RequestClose()                   { w.closed = true }
func (w *fakeWindow) FramebufferSize() (int, int)     { return 640, 480 }
func (w *fakeWindow) SetTitle(string)                 {}
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }

type fakeRenderer struct{ log *[]string }

func (r *fakeRenderer) Init() error                    { return nil }
func (r *fakeRenderer) Resize(w, h int)                { *r.log = append(*r.log, fmt.Sprintf("resize %dx%d", w, h)) }
func (r *fakeRenderer) Clear(_, _, _, _ float32)       { *r.log = append(*r.log, "clear") }
func (r *fakeRenderer) Present([]byte, int, int) error { return nil }
func (r *fakeRenderer) Shutdown()                      { *r.log = append(*r.log, "shutdown") }

type fakeApp struct {
	log    *[]string
	events []Event
}

func (a *fakeApp) OnStart(e *Engine) {
	e.Layers.Push(&recLayer{name: "ui", log: a.log})
	*a.log = append(*a.log, "start")
}
func (a *fakeApp) OnUpdate(*Engine, float64)   {}
func (a *fakeApp) OnRender(*Engine)            { *a.log = append(*a.log, "present") }
func (a *fakeApp) OnEvent(_ *Engine, ev Event) { a.events = append(a.events, ev) }
func (a *fakeApp) OnShutdown(*Engine)          { *a.log = append(*a.log, "shutdown app") }

func TestRunLoop(t *testing.T) {
	var log []string
	win := &fakeWindow{script: map[int][]Event{
		2: {EventResize{W: 800, H: 600}, EventResize{W: 0, H: 0}},
		3: {EventCloseRequested{}},
	}}
	app := &fakeApp{log: &log}
	newWindow := func(Config) (Window, error) { return win, nil }
	newRenderer := func(Window, Config) (Renderer, error) { return &fakeRenderer{log: &log}, nil }

	if err := Run(app, DefaultConfig(), newWindow, newRenderer); err != nil {
		t.Fatalf("Run: %v", err)
	}

	frame := []string{"clear", "render ui", "present"}
	var want []string
	want = append(want, "resize 640x480", "start")
	want = append(want, frame...)
	want = append(want, "event ui", "resize 800x600", "event ui")
	want = append(want, frame...)
	want = append(want, "event ui")
	want = append(want, frame...)
	want = append(want, "shutdown app", "shutdown")
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("loop trace (-want +got):\n%s", diff)
	}
	if len(app.events) != 3 {
		t.Errorf("app saw %d events, want 3 unhandled", len(app.events))
	}
	if !win.closed {
		t.Error("close request not honoured")
	}
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")
	app := &fakeApp{log: new([]string)}
	okWindow := func(Config) (Window, error) { return &fakeWindow{}, nil }

	bad := DefaultConfig()
	bad.Width = 0
	if err := Run(app, bad, okWindow, nil); err == nil {
		t.Error("invalid config accepted")
	}
	if err := Run(app, DefaultConfig(), func(Config) (Window, error) { return nil, boom }, nil); !errors.Is(err, boom) {
		t.Errorf("window err = %v", err)
	}
	if err := Run(app, DefaultConfig(), okWindow, func(Window, Config) (Renderer, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("renderer err = %v", err)
	}
}
