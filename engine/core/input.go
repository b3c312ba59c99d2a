package core

// InputState is the immutable per-frame input snapshot handed to the UI.
type InputState struct {
	MouseX, MouseY float32
	MouseDown      bool // button held
	MousePressed   bool // press edge this frame
	MouseReleased  bool // release edge this frame
	Keys           [keyCount]bool
	KeysPressed    [keyCount]bool
	Char           rune
	HasChar        bool
	// ScrollDelta is in pixels; positive means the wheel moved up.
	ScrollDelta float32
}

func (s *InputState) KeyDown(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.Keys[k]
}

func (s *InputState) KeyPressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.KeysPressed[k]
}

func (s *InputState) Ctrl() bool  { return s.KeyDown(KeyLeftCtrl) || s.KeyDown(KeyRightCtrl) }
func (s *InputState) Shift() bool { return s.KeyDown(KeyLeftShift) || s.KeyDown(KeyRightShift) }
func (s *InputState) Alt() bool   { return s.KeyDown(KeyLeftAlt) || s.KeyDown(KeyRightAlt) }

// Input accumulates window events between frames.
type Input struct {
	state InputState
	// LinePixels converts wheel lines into pixels.
	LinePixels float32
}

func NewInput() *Input { return &Input{LinePixels: 20} }

func (in *Input) Handle(ev Event) {
	s := &in.state
	switch e := ev.(type) {
	case EventKey:
		if e.Key <= KeyUnknown || e.Key >= keyCount {
			return
		}
		if e.Down && !s.Keys[e.Key] {
			s.KeysPressed[e.Key] = true
		}
		s.Keys[e.Key] = e.Down
	case EventMouseMove:
		s.MouseX, s.MouseY = float32(e.X), float32(e.Y)
	case EventMouseButton:
		if e.Button != MouseLeft {
			return
		}
		if e.Down {
			if !s.MouseDown {
				s.MousePressed = true
			}
			s.MouseDown = true
		} else {
			if s.MouseDown {
				s.MouseReleased = true
			}
			s.MouseDown = false
		}
	case EventScroll:
		s.ScrollDelta += float32(e.Yoff) * in.LinePixels
	case EventChar:
		s.Char, s.HasChar = e.Rune, true
	}
}

// Snapshot copies the state accumulated for the coming frame.
func (in *Input) Snapshot() InputState { return in.state }

// EndFrame clears edge-triggered state once a frame has consumed it.
func (in *Input) EndFrame() {
	s := &in.state
	s.MousePressed = false
	s.MouseReleased = false
	s.KeysPressed = [keyCount]bool{}
	s.Char, s.HasChar = 0, false
	s.ScrollDelta = 0
}

func (in *Input) IsKeyDown(k Key) bool      { return in.state.KeyDown(k) }
func (in *Input) Mouse() (float32, float32) { return in.state.MouseX, in.state.MouseY }
