package ui

import (
	"fmt"
	"reflect"
)

// State is a typed handle to one store entry. Handles are cheap values;
// copying one does not copy the state.
type State[T any] struct {
	store *Store
	id    uint64
}

// UseState binds to the next anonymous slot of the frame. Callers must make
// the same UseState calls in the same order every frame.
func UseState[T any](ctx *Ctx, init func() T) State[T] {
	id := ctx.store.nextAnonID()
	ctx.store.ensure(id, func() any { return init() })
	return State[T]{store: ctx.store, id: id}
}

// UseStateWithID binds to local under the current identity scope.
func UseStateWithID[T any](ctx *Ctx, local uint64, init func() T) State[T] {
	id := ctx.store.makeID(local)
	ctx.store.ensure(id, func() any { return init() })
	return State[T]{store: ctx.store, id: id}
}

func (h State[T]) ID() uint64 { return h.id }

// Lookup reads the entry, reporting a *StateError when it is missing or holds
// another type.
func (h State[T]) Lookup() (T, error) {
	var (
		v    T
		err  error
		want = reflect.TypeFor[T]().String()
	)
	h.store.borrow(func() {
		raw, ok := h.store.entries[h.id]
		if !ok {
			err = &StateError{Kind: StateMissing, ID: h.id, Want: want}
			return
		}
		tv, ok := raw.(T)
		if !ok {
			err = &StateError{Kind: StateTypeMismatch, ID: h.id, Want: want, Got: typeName(raw)}
			return
		}
		v = tv
	})
	return v, err
}

// Get is Lookup that panics on failure. A failed read means the call order
// changed between frames, which the frame cannot recover from.
func (h State[T]) Get() T {
	v, err := h.Lookup()
	if err != nil {
		panic(err)
	}
	return v
}

func (h State[T]) Set(v T) {
	h.store.borrow(func() { h.store.entries[h.id] = v })
}

// Update replaces the value with f(current). f runs outside the borrow.
func (h State[T]) Update(f func(T) T) {
	h.Set(f(h.Get()))
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
