package ui

import "testing"

func TestIDStackFold(t *testing.T) {
	build := func(ids ...uint64) uint64 {
		s := NewIDStack()
		for _, id := range ids {
			s.Push(id)
		}
		return s.MakeID(3)
	}

	first, second := build(7, 11), build(7, 11)
	if first != second {
		t.Fatalf("same push sequence gave %d then %d", first, second)
	}
	if first != (7*31+11)*31+3 {
		t.Errorf("MakeID = %d, want %d", first, (7*31+11)*31+3)
	}
	if swapped := build(11, 7); swapped == first {
		t.Errorf("swapping sibling scopes kept id %d", swapped)
	}
}

func TestIDStackPop(t *testing.T) {
	s := NewIDStack()
	s.Push(7)
	s.Push(11)
	before := s.MakeID(1)

	id, ok := s.Pop()
	if !ok || id != 11 {
		t.Fatalf("Pop = %d, %v; want 11, true", id, ok)
	}
	if s.Current() != 7 || s.Depth() != 1 {
		t.Errorf("after Pop: current %d depth %d, want 7 and 1", s.Current(), s.Depth())
	}

	s.Push(11)
	if got := s.MakeID(1); got != before {
		t.Errorf("re-push gave %d, want %d", got, before)
	}

	s.Reset()
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack reported ok")
	}
	if s.Current() != 0 {
		t.Errorf("Current after Reset = %d", s.Current())
	}
}

func TestIDStackWraps(t *testing.T) {
	m := ^uint64(0)
	s := NewIDStack()
	s.Push(m)
	s.Push(m)
	want := m*31 + m
	if s.Current() != want {
		t.Errorf("Current = %d, want wrapped %d", s.Current(), want)
	}
}

func TestPushIDRelease(t *testing.T) {
	s, _, _ := newTestSurface()
	ctx := NewCtx(s.Store(), nil, NewDrawList(0), R(0, 0, 10, 10))

	outer := ctx.PushID(9)
	inner := ctx.PushID(1)
	inner()
	inner()
	if d := s.Store().depth(); d != 1 {
		t.Fatalf("depth after double release = %d, want 1", d)
	}
	outer()
	if d := s.Store().depth(); d != 0 {
		t.Errorf("depth = %d, want 0", d)
	}
}
