package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/canopy/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// NewGLFWWindow opens a window with a current GL 3.3 core context.
// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: glfw init: %w", err)
	}

	// Mac requires the forward-compatible flag.
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("platform: gl init: %w", err)
	}
	core.Logger().Info("window created",
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"width", cfg.Width, "height", cfg.Height, "vsync", cfg.VSync)

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		gw.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventChar{Rune: r})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// Destroy closes the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

var keys = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyKPEnter:      core.KeyEnter,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyA:            core.KeyA,
	glfw.KeyD:            core.KeyD,
	glfw.KeyP:            core.KeyP,
	glfw.KeyS:            core.KeyS,
	glfw.KeyW:            core.KeyW,
	glfw.KeyF2:           core.KeyF2,
	glfw.KeyF3:           core.KeyF3,
	glfw.KeyF12:          core.KeyF12,
	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftControl:  core.KeyLeftCtrl,
	glfw.KeyRightControl: core.KeyRightCtrl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
}

func translateKey(k glfw.Key) core.Key {
	if out, ok := keys[k]; ok {
		return out
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
