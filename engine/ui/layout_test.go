package ui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/theme"
)

func TestColumnAutoSize(t *testing.T) {
	s, _, _ := newTestSurface()
	var col, next Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		col = Column(ctx, Pad(10), func(c *Ctx) {
			c.Space(100, 40)
		})
		next = ctx.Space(10, 10)
	})
	if diff := cmp.Diff(R(0, 0, 800, 50), col); diff != "" {
		t.Errorf("column (-want +got):\n%s", diff)
	}
	if next.Y != 50 {
		t.Errorf("sibling placed at y=%v, want 50", next.Y)
	}
}

func TestColumnStacksChildren(t *testing.T) {
	s, _, _ := newTestSurface()
	var a, b Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		Column(ctx, Pad(10), func(c *Ctx) {
			a = c.Space(100, 20)
			b = c.Space(100, 30)
		})
	})
	if a.Y != 10 || b.Y != 30 {
		t.Errorf("children at y=%v and y=%v, want 10 and 30", a.Y, b.Y)
	}
}

func TestRowFitsChildren(t *testing.T) {
	s, _, _ := newTestSurface()
	var row, first, second Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		row = Row(ctx, Pad(5), func(c *Ctx) {
			first = c.Space(30, 20)
			second = c.Space(40, 10)
		})
	})
	want := []Rect{R(0, 0, 75, 25), R(5, 5, 30, 20), R(35, 5, 40, 10)}
	if diff := cmp.Diff(want, []Rect{row, first, second}); diff != "" {
		t.Errorf("row layout (-want +got):\n%s", diff)
	}
}

func TestContainersAdvanceAlongParentAxis(t *testing.T) {
	s, _, _ := newTestSurface()
	var row, left, right Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		row = Row(ctx, Modifier{}, func(c *Ctx) {
			left = Column(c, Modifier{}.W(100), func(c *Ctx) { c.Space(0, 30) })
			right = Column(c, Modifier{}.W(100), func(c *Ctx) { c.Space(0, 50) })
		})
	})
	want := []Rect{R(0, 0, 200, 50), R(0, 0, 100, 30), R(100, 0, 100, 50)}
	if diff := cmp.Diff(want, []Rect{row, left, right}); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestColumnExplicitWidth(t *testing.T) {
	tests := []struct {
		name      string
		mod       Modifier
		wantInner float32
		wantCol   Rect
	}{
		{"padded", Pad(10).W(200), 200, R(0, 0, 220, 30)},
		{"unpadded", Modifier{}.W(200), 200, R(0, 0, 200, 20)},
		{"narrower than padding", Pad(30).W(40), 40, R(0, 0, 100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSurface()
			var col, inner Rect
			s.Frame(nil, 800, 600, func(ctx *Ctx) {
				col = Column(ctx, tt.mod, func(c *Ctx) {
					inner = c.Cursor()
					c.Space(10, 20)
				})
			})
			if inner.W != tt.wantInner {
				t.Errorf("child available width = %v, want %v", inner.W, tt.wantInner)
			}
			if diff := cmp.Diff(tt.wantCol, col); diff != "" {
				t.Errorf("column (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDegenerateSizesClamp(t *testing.T) {
	s, _, _ := newTestSurface()
	var col, inner Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		Column(ctx, Modifier{}.W(40), func(c *Ctx) {
			col = Column(c, Pad(30), func(c *Ctx) {
				inner = c.Cursor()
			})
		})
	})
	if inner.W != 0 {
		t.Errorf("inner width = %v, want 0", inner.W)
	}
	if col.W != 40 || col.H != 30 {
		t.Errorf("column = %+v", col)
	}
}

func TestCardPaddingIsFixed(t *testing.T) {
	s, _, _ := newTestSurface()
	var inner Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		Card(ctx, Pad(50).W(200), func(c *Ctx) { inner = c.Cursor() })
	})
	p := theme.CardPadding
	if want := R(p, p, 200-2*p, 0); inner != want {
		t.Errorf("card content area = %+v, want %+v", inner, want)
	}
}

func TestAutoSizedBackgroundPaintsBelowChildren(t *testing.T) {
	s, rec, _ := newTestSurface()
	red, blue := colors.Red, colors.Blue
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		Column(ctx, Pad(10).Bg(red), func(c *Ctx) {
			c.FillRect(c.Space(20, 20), blue)
		})
	})
	want := []op{
		{Kind: "rect", Rect: R(0, 0, 800, 30), Color: red},
		{Kind: "rect", Rect: R(10, 10, 20, 20), Color: blue},
	}
	if diff := cmp.Diff(want, rec.drawn()); diff != "" {
		t.Errorf("draw order (-want +got):\n%s", diff)
	}
}

func TestCardDrawsShadowThenSurface(t *testing.T) {
	s, rec, _ := newTestSurface()
	var card Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		card = Card(ctx, Modifier{}.W(200), func(c *Ctx) { c.Space(0, 40) })
	})
	if diff := cmp.Diff(R(0, 0, 200, 56), card); diff != "" {
		t.Fatalf("card (-want +got):\n%s", diff)
	}
	ops := rec.drawn()
	if len(ops) != 2 || ops[0].Kind != "shadow" || ops[1].Kind != "rounded" {
		t.Fatalf("ops = %+v", ops)
	}
	if ops[0].Rect != R(0, theme.CardShadowOffset, 200, 56) {
		t.Errorf("shadow rect = %+v", ops[0].Rect)
	}
}

func TestScrolledHitTest(t *testing.T) {
	s, _, _ := newTestSurface()
	in := &core.InputState{}
	ctx := NewCtx(s.Store(), in, NewDrawList(0), R(0, 0, 800, 600))
	ctx.scrollY = 100
	r := R(0, 300, 100, 40)

	in.MouseX, in.MouseY = 50, 200
	if !ctx.IsHovered(r) {
		t.Error("pointer at screen y=200 should hover content y=300")
	}
	in.MouseY = 300
	if ctx.IsHovered(r) {
		t.Error("pointer at screen y=300 should not hover")
	}
	if !ctx.IsHoveredAbsolute(r) {
		t.Error("absolute test ignores scroll")
	}
}

func TestScrollViewWheelAndHover(t *testing.T) {
	s, rec, _ := newTestSurface()
	var target Rect
	hovered := false
	frame := func(in core.InputState) {
		s.Frame(&in, 800, 600, func(ctx *Ctx) {
			ScrollView(ctx, Sz(300, 200), func(c *Ctx) {
				c.FillRect(c.Space(50, 20), colors.Green)
				Spacer(c, 280)
				target = c.Space(100, 40)
				hovered = c.IsHovered(target)
			})
		})
	}

	wheel := core.InputState{MouseX: 10, MouseY: 10, ScrollDelta: -100}
	frame(wheel) // content height unknown yet, so the offset stays clamped at 0
	frame(wheel)
	frame(core.InputState{MouseX: 10, MouseY: 200})

	if target.Y != 300 {
		t.Errorf("content rect y = %v, want 300", target.Y)
	}
	if !hovered {
		t.Error("scrolled content not hovered at screen y=200")
	}

	frame(core.InputState{MouseX: 10, MouseY: 300})
	if hovered {
		t.Error("pointer below the viewport hovered clipped content")
	}

	var clipped bool
	for _, o := range rec.ops {
		if o.Kind == "clip" && o.Rect == R(0, 0, 292, 200) {
			clipped = true
		}
	}
	if !clipped {
		t.Error("viewport clip never set")
	}
}

func TestScrollViewClipsContent(t *testing.T) {
	s, rec, _ := newTestSurface()
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		ScrollView(ctx, Sz(300, 100), func(c *Ctx) {
			c.FillRect(c.Space(50, 50), colors.Green)
			Spacer(c, 200)
			c.FillRect(c.Space(50, 50), colors.Red)
		})
	})
	for _, o := range rec.drawn() {
		if o.Color == colors.Red {
			t.Errorf("fully clipped rect was drawn: %+v", o)
		}
	}
}

func TestUnbalancedIDReported(t *testing.T) {
	s, _, _ := newTestSurface()
	stats := s.Frame(nil, 100, 100, func(ctx *Ctx) {
		ctx.PushID(5)
	})
	if !errors.Is(stats.Err, ErrUnbalancedID) {
		t.Fatalf("Err = %v, want ErrUnbalancedID", stats.Err)
	}
	stats = s.Frame(nil, 100, 100, func(ctx *Ctx) {})
	if stats.Err != nil {
		t.Errorf("next frame Err = %v", stats.Err)
	}
}

func TestFrameStats(t *testing.T) {
	s, rec, _ := newTestSurface()
	stats := s.Frame(nil, 800, 600, func(ctx *Ctx) {
		Column(ctx, Pad(8), func(c *Ctx) {
			Text(c, "hello")
			Button(c, Modifier{}, "Go")
		})
	})
	if stats.Widgets != 3 {
		t.Errorf("Widgets = %d, want 3", stats.Widgets)
	}
	if stats.Commands != len(rec.drawn()) {
		t.Errorf("Commands = %d, rasterizer saw %d", stats.Commands, len(rec.drawn()))
	}
	if stats.States != 1 {
		t.Errorf("States = %d, want 1", stats.States)
	}
}
