package core

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

// EventScroll carries wheel offsets in lines (positive Yoff scrolls up).
type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// EventChar is a unicode character produced by text entry.
type EventChar struct{ Rune rune }

func (EventChar) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyP
	KeyS
	KeyW
	KeyF2
	KeyF3
	KeyF12
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt

	keyCount
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
