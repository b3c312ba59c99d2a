package ui

import (
	"errors"
	"testing"

	"github.com/hubastard/canopy/engine/theme"
)

func newTestCtx(store *Store) *Ctx {
	store.ResetFrame()
	return NewCtx(store, nil, NewDrawList(16), R(0, 0, 800, 600))
}

func TestStatePersistsAcrossFrames(t *testing.T) {
	store := NewStore(theme.Dark())
	inits := 0
	init := func() int { inits++; return 0 }

	h := UseStateWithID(newTestCtx(store), 42, init)
	h.Set(7)

	again := UseStateWithID(newTestCtx(store), 42, init)
	if got := again.Get(); got != 7 {
		t.Errorf("Get = %d, want 7", got)
	}
	if again.ID() != h.ID() {
		t.Errorf("id changed between frames: %d then %d", h.ID(), again.ID())
	}
	if inits != 1 {
		t.Errorf("init ran %d times, want 1", inits)
	}
}

func TestUseStateOrdinals(t *testing.T) {
	store := NewStore(theme.Dark())
	ctx := newTestCtx(store)
	a := UseState(ctx, func() string { return "a" })
	b := UseState(ctx, func() string { return "b" })
	if a.ID() == b.ID() {
		t.Fatal("two anonymous states share an id")
	}
	a.Set("changed")

	ctx = newTestCtx(store)
	a2 := UseState(ctx, func() string { return "a" })
	b2 := UseState(ctx, func() string { return "b" })
	if a2.Get() != "changed" || b2.Get() != "b" {
		t.Errorf("got %q, %q", a2.Get(), b2.Get())
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
}

func TestStateUpdate(t *testing.T) {
	store := NewStore(theme.Dark())
	h := UseStateWithID(newTestCtx(store), 1, func() []string { return nil })
	h.Update(func(v []string) []string { return append(v, "x") })
	h.Update(func(v []string) []string { return append(v, "y") })
	if got := h.Get(); len(got) != 2 || got[1] != "y" {
		t.Errorf("Get = %v", got)
	}
}

func TestStateInitMayReadStore(t *testing.T) {
	store := NewStore(theme.Dark())
	ctx := newTestCtx(store)
	UseStateWithID(ctx, 1, func() int { return 1 })
	h := UseStateWithID(ctx, 2, func() int { return store.Len() })
	if got := h.Get(); got != 1 {
		t.Errorf("Get = %d, want 1", got)
	}
}

func TestStateTypeMismatch(t *testing.T) {
	store := NewStore(theme.Dark())
	ctx := newTestCtx(store)
	UseStateWithID(ctx, 5, func() int { return 1 })
	h := UseStateWithID(ctx, 5, func() string { return "" })

	_, err := h.Lookup()
	if !errors.Is(err, ErrStateType) {
		t.Fatalf("Lookup err = %v, want ErrStateType", err)
	}
	var se *StateError
	if !errors.As(err, &se) {
		t.Fatalf("err %T is not *StateError", err)
	}
	if se.Kind != StateTypeMismatch || se.Want != "string" || se.Got != "int" {
		t.Errorf("StateError = %+v", se)
	}

	defer func() {
		r := recover()
		perr, ok := r.(error)
		if !ok || !errors.Is(perr, ErrStateType) {
			t.Errorf("Get panicked with %v, want ErrStateType", r)
		}
	}()
	h.Get()
	t.Error("Get did not panic")
}

func TestStateMissing(t *testing.T) {
	store := NewStore(theme.Dark())
	h := State[int]{store: store, id: 99}
	if _, err := h.Lookup(); !errors.Is(err, ErrStateMissing) {
		t.Errorf("Lookup err = %v, want ErrStateMissing", err)
	}
	h.Set(3)
	if !store.Delete(99) || store.Delete(99) {
		t.Error("Delete should report the entry once")
	}
}

func TestReentrantBorrowPanics(t *testing.T) {
	store := NewStore(theme.Dark())
	func() {
		defer func() {
			if r := recover(); r != ErrReentrantBorrow {
				t.Errorf("recovered %v, want ErrReentrantBorrow", r)
			}
		}()
		store.borrow(func() { store.Len() })
	}()

	// The failed borrow must not leave the store locked.
	if n := store.Len(); n != 0 {
		t.Errorf("Len = %d", n)
	}
}

func TestSetTheme(t *testing.T) {
	store := NewStore(theme.Dark())
	store.SetTheme(theme.Light())
	if got := newTestCtx(store).Theme().Name; got != "Light" {
		t.Errorf("theme = %q, want Light", got)
	}
}
