package ui

// IDStack folds the chain of enclosing scopes into a stable widget identity.
//
// The fold is acc*31 + id with wrapping uint64 arithmetic, so the same
// sequence of pushes always yields the same value and reordering siblings
// changes it. Collisions are possible and tolerated.
type IDStack struct {
	stack   []uint64
	current uint64
}

func NewIDStack() IDStack {
	return IDStack{stack: make([]uint64, 0, 32)}
}

func (s *IDStack) Push(id uint64) {
	s.stack = append(s.stack, id)
	s.current = s.current*31 + id
}

// Pop removes the innermost scope and refolds the rest. It reports false
// when the stack was already empty.
func (s *IDStack) Pop() (uint64, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	id := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.current = fold(s.stack)
	return id, true
}

func (s *IDStack) Current() uint64 { return s.current }
func (s *IDStack) Depth() int      { return len(s.stack) }

// MakeID derives a leaf identity under the current scope without pushing.
func (s *IDStack) MakeID(local uint64) uint64 {
	return s.current*31 + local
}

func (s *IDStack) Reset() {
	s.stack = s.stack[:0]
	s.current = 0
}

func fold(ids []uint64) uint64 {
	var acc uint64
	for _, id := range ids {
		acc = acc*31 + id
	}
	return acc
}
