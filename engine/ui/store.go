package ui

import (
	"log/slog"
	"time"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/theme"
)

// anonBit keeps counter-assigned ids apart from caller-chosen local ids.
const anonBit = uint64(1) << 63

// Store holds every piece of widget state that must survive between frames.
//
// One Store is shared by the whole tree. Accesses are short, non-overlapping
// borrows; starting one while another is open panics with ErrReentrantBorrow.
// Entries are never evicted.
type Store struct {
	entries  map[uint64]any
	theme    theme.Theme
	ids      IDStack
	index    uint64
	borrowed bool

	now func() time.Time
	log *slog.Logger
}

type StoreOption func(*Store)

// WithClock replaces time.Now for animations and the caret blink.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

func NewStore(t theme.Theme, opts ...StoreOption) *Store {
	s := &Store{
		entries: make(map[uint64]any),
		theme:   t,
		ids:     NewIDStack(),
		now:     time.Now,
		log:     core.Logger(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) borrow(f func()) {
	if s.borrowed {
		panic(ErrReentrantBorrow)
	}
	s.borrowed = true
	defer func() { s.borrowed = false }()
	f()
}

// ResetFrame clears per-frame bookkeeping; entries are kept.
func (s *Store) ResetFrame() {
	s.borrow(func() {
		s.ids.Reset()
		s.index = 0
	})
}

func (s *Store) Theme() theme.Theme {
	var t theme.Theme
	s.borrow(func() { t = s.theme })
	return t
}

func (s *Store) SetTheme(t theme.Theme) {
	s.borrow(func() { s.theme = t })
	s.log.Debug("theme changed", "name", t.Name)
}

func (s *Store) Len() int {
	var n int
	s.borrow(func() { n = len(s.entries) })
	return n
}

func (s *Store) Now() time.Time { return s.now() }

// Delete drops the entry for id; reports whether one existed.
func (s *Store) Delete(id uint64) bool {
	var ok bool
	s.borrow(func() {
		_, ok = s.entries[id]
		delete(s.entries, id)
	})
	return ok
}

func (s *Store) nextAnonID() uint64 {
	var id uint64
	s.borrow(func() {
		id = s.ids.MakeID(anonBit | s.index)
		s.index++
	})
	return id
}

func (s *Store) pushID(id uint64) {
	s.borrow(func() { s.ids.Push(id) })
}

func (s *Store) popID() {
	s.borrow(func() { s.ids.Pop() })
}

func (s *Store) makeID(local uint64) uint64 {
	var id uint64
	s.borrow(func() { id = s.ids.MakeID(local) })
	return id
}

func (s *Store) depth() int {
	var d int
	s.borrow(func() { d = s.ids.Depth() })
	return d
}

// ensure inserts init() under id unless an entry exists. init runs outside
// the borrow so it may itself read the store.
func (s *Store) ensure(id uint64, init func() any) {
	var exists bool
	s.borrow(func() { _, exists = s.entries[id] })
	if exists {
		return
	}
	v := init()
	s.borrow(func() { s.entries[id] = v })
	s.log.Debug("state created", "id", id, "type", typeName(v))
}
