package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrStateMissing means a handle was read before its entry existed.
	ErrStateMissing = errors.New("ui: state not found")
	// ErrStateType means an entry holds a different type than requested.
	ErrStateType = errors.New("ui: state has a different type")
	// ErrReentrantBorrow means a store access started while another was open.
	ErrReentrantBorrow = errors.New("ui: state store already borrowed")
	// ErrUnbalancedID means a frame ended with identity scopes still pushed.
	ErrUnbalancedID = errors.New("ui: unbalanced identity scopes")
)

type StateErrorKind uint8

const (
	StateMissing StateErrorKind = iota
	StateTypeMismatch
)

// StateError describes a failed typed read from the store.
type StateError struct {
	Kind StateErrorKind
	ID   uint64
	Want string
	Got  string // empty for StateMissing
}

func (e *StateError) Error() string {
	if e.Kind == StateMissing {
		return fmt.Sprintf("ui: state %#x not found (want %s)", e.ID, e.Want)
	}
	return fmt.Sprintf("ui: state %#x holds %s, want %s", e.ID, e.Got, e.Want)
}

func (e *StateError) Unwrap() error {
	if e.Kind == StateMissing {
		return ErrStateMissing
	}
	return ErrStateType
}
