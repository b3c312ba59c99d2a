package ui

import (
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/theme"
)

func TestButtonClick(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputState
		want bool
	}{
		{"press edge", core.InputState{MouseX: 70, MouseY: 20, MouseDown: true, MousePressed: true}, true},
		{"held", core.InputState{MouseX: 70, MouseY: 20, MouseDown: true}, false},
		{"outside", core.InputState{MouseX: 170, MouseY: 20, MouseDown: true, MousePressed: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSurface()
			var clicked bool
			var r Rect
			s.Frame(&tt.in, 800, 600, func(ctx *Ctx) {
				clicked, r = Button(ctx, Modifier{}, "Save")
			})
			if r != R(0, 0, theme.ButtonWidth, theme.ButtonHeight) {
				t.Errorf("rect = %+v", r)
			}
			if clicked != tt.want {
				t.Errorf("clicked = %v, want %v", clicked, tt.want)
			}
		})
	}
}

func TestButtonHoverAnimates(t *testing.T) {
	s, rec, clk := newTestSurface()
	in := core.InputState{MouseX: 10, MouseY: 10}
	frame := func() {
		rec.reset()
		s.Frame(&in, 800, 600, func(ctx *Ctx) { Button(ctx, Modifier{}, "Go") })
	}
	base := theme.Dark().Colors.Primary
	hover := theme.Dark().Colors.PrimaryHover

	frame()
	if got := rec.drawn()[0].Color; got != base {
		t.Errorf("first hovered frame colour = %v, want base %v", got, base)
	}
	clk.advance(theme.AnimationDuration)
	frame()
	if got := rec.drawn()[0].Color; got != hover {
		t.Errorf("settled colour = %v, want %v", got, hover)
	}
}

func TestPlusButtonDrawsIcon(t *testing.T) {
	s, rec, _ := newTestSurface()
	s.Frame(nil, 800, 600, func(ctx *Ctx) { Button(ctx, Sz(40, 40), "+") })
	for _, o := range rec.drawn() {
		if o.Kind == "text" {
			t.Fatalf("plus button drew text %q", o.Text)
		}
	}
	if n := len(rec.drawn()); n != 3 {
		t.Errorf("ops = %d, want background and two bars", n)
	}
}

func TestTextInputEditing(t *testing.T) {
	s, _, _ := newTestSurface()
	var got string
	frame := func(in core.InputState) {
		s.Frame(&in, 800, 600, func(ctx *Ctx) {
			got, _ = TextInput(ctx, Modifier{}, "name")
		})
	}
	click := core.InputState{MouseX: 20, MouseY: 20, MouseDown: true, MousePressed: true}
	char := func(r rune) core.InputState { return core.InputState{Char: r, HasChar: true} }

	frame(char('x'))
	if got != "" {
		t.Fatalf("unfocused input accepted %q", got)
	}

	frame(click)
	frame(char('h'))
	frame(char('i'))
	frame(char('é'))
	if got != "hié" {
		t.Fatalf("text = %q, want hié", got)
	}

	frame(char('\b'))
	back := core.InputState{}
	back.KeysPressed[core.KeyBackspace] = true
	frame(back)
	if got != "h" {
		t.Fatalf("after two backspaces = %q, want h", got)
	}

	frame(core.InputState{MouseX: 500, MouseY: 500, MouseDown: true, MousePressed: true})
	frame(char('z'))
	if got != "h" {
		t.Errorf("blurred input accepted input: %q", got)
	}
}

func TestTextWidgetsAdvanceLayout(t *testing.T) {
	s, _, _ := newTestSurface()
	var a, b, c, d Rect
	s.Frame(nil, 800, 600, func(ctx *Ctx) {
		a = TextHeading(ctx, "Title")
		b = Text(ctx, "")
		c = Divider(ctx)
		d = TextMuted(ctx, "two\nlines")
	})
	if a.H != theme.FontXL+theme.SpaceMD {
		t.Errorf("heading height = %v", a.H)
	}
	if b.Y != a.Bottom() || b.H != theme.FontLG+theme.SpaceSM {
		t.Errorf("empty text = %+v", b)
	}
	if c.Y != b.Bottom() || c.W != 800 {
		t.Errorf("divider = %+v", c)
	}
	if d.Y != c.Bottom() || d.H != 2*theme.FontMD+theme.SpaceSM {
		t.Errorf("muted text = %+v", d)
	}
}

func TestSidebarItemAndStatCard(t *testing.T) {
	s, rec, _ := newTestSurface()
	in := core.InputState{MouseX: 30, MouseY: 20, MouseDown: true, MousePressed: true}
	var clicked bool
	var item, card Rect
	s.Frame(&in, 800, 600, func(ctx *Ctx) {
		Column(ctx, Modifier{}.W(theme.SidebarWidth), func(c *Ctx) {
			clicked, item = SidebarItem(c, "Dashboard", true)
		})
		card = StatCard(ctx, "Users", "1,234", theme.Dark().Colors.Success)
	})
	if !clicked {
		t.Error("sidebar item not clicked")
	}
	if item.W != theme.SidebarWidth || item.H != theme.SidebarItemHeight {
		t.Errorf("item = %+v", item)
	}
	if card.Y != theme.SidebarItemHeight || card.W != theme.StatCardWidth {
		t.Errorf("card = %+v", card)
	}
	var bars int
	for _, o := range rec.drawn() {
		if o.Kind == "rect" && o.Color == theme.Dark().Colors.Success {
			bars++
		}
	}
	if bars != 3 {
		t.Errorf("chart bars = %d, want 3", bars)
	}
}
