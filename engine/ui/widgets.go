package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/theme"
)

// FocusKeyOffset separates a text input's focus flag from its buffer.
const FocusKeyOffset = 1000

const caretBlink = 530 // ms per caret phase

func hoverTarget(hovered bool) float32 {
	if hovered {
		return 1
	}
	return 0
}

// Button draws a filled button. A "+" label draws a plus icon instead of
// text. It reports a click on the press edge.
func Button(ctx *Ctx, mod Modifier, label string) (bool, Rect) {
	id, release := ctx.enter()
	defer release()

	t := ctx.Theme()
	r := R(ctx.cursor.X, ctx.cursor.Y, mod.widthOr(theme.ButtonWidth), mod.heightOr(theme.ButtonHeight))
	hovered := ctx.IsHovered(r)
	k := animate(ctx, id, hoverTarget(hovered), theme.AnimationDuration)

	base := mod.bgOr(t.Colors.Primary)
	col := colors.Lerp(base, t.Colors.PrimaryHover, k)
	col.A = base.A
	if hovered && ctx.in.MouseDown {
		col.A = 200
	}
	ctx.FillRoundedRect(r, theme.ButtonBorderRadius, col)

	if label == "+" {
		plusIcon(ctx, r.X+r.W/2-7, r.Y+r.H/2-7, 14, colors.White)
	} else {
		w, h := ctx.MeasureText(theme.FontLG, label)
		ctx.DrawText(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, theme.FontLG, label, colors.White)
	}

	ctx.Place(r)
	return hovered && ctx.in.MousePressed, r
}

// TextInput is a single-line editable field. Clicking toggles focus and
// clicking elsewhere blurs it. It returns the current text.
func TextInput(ctx *Ctx, mod Modifier, placeholder string) (string, Rect) {
	id, release := ctx.enter()
	defer release()

	t := ctx.Theme()
	in := ctx.in
	buf := UseStateWithID(ctx, id, func() string { return "" })
	focus := UseStateWithID(ctx, id+FocusKeyOffset, func() bool { return false })

	r := R(ctx.cursor.X, ctx.cursor.Y, mod.widthOr(theme.InputWidth), mod.heightOr(theme.ButtonHeight))
	hovered := ctx.IsHovered(r)
	focused := focus.Get()
	text := buf.Get()

	switch {
	case in.MousePressed && hovered:
		focused = !focused
	case in.MousePressed, in.KeyPressed(core.KeyEscape):
		focused = false
	}
	focus.Set(focused)

	if focused {
		switch {
		case in.KeyPressed(core.KeyBackspace) || (in.HasChar && in.Char == '\b'):
			if _, size := utf8.DecodeLastRuneInString(text); size > 0 {
				text = text[:len(text)-size]
			}
		case in.HasChar && in.Char >= ' ' && in.Char != 0x7f:
			text += string(in.Char)
		}
		buf.Set(text)
	}

	bg, border := t.Colors.Surface, t.Colors.Border.WithAlpha(100)
	switch {
	case focused:
		border = t.Colors.Primary
	case hovered:
		bg, border = t.Colors.SurfaceHover, t.Colors.Border
	}
	ctx.FillRoundedRect(r, theme.ButtonBorderRadius, bg)
	ctx.FillRoundedRect(r, theme.ButtonBorderRadius, border.WithAlpha(80))

	shown, col := text, t.Colors.TextPrimary
	if text == "" && !focused {
		shown, col = placeholder, t.Colors.TextMuted
	}
	tx, ty := r.X+theme.SpaceMD, r.Y+12
	w, _ := ctx.DrawText(tx, ty, theme.FontMD, shown, col)

	if focused && (ctx.store.Now().UnixMilli()/caretBlink)%2 == 0 {
		if text == "" {
			w = 0
		}
		ctx.FillRect(R(tx+w, ty, 2, 20), t.Colors.TextPrimary)
	}

	ctx.Place(r)
	return text, r
}

// SidebarItem is a full-width navigation entry. active keeps it highlighted.
func SidebarItem(ctx *Ctx, label string, active bool) (bool, Rect) {
	id, release := ctx.enter()
	defer release()

	t := ctx.Theme()
	r := R(ctx.cursor.X, ctx.cursor.Y, ctx.cursor.W, theme.SidebarItemHeight)
	hovered := ctx.IsHovered(r)
	k := animate(ctx, id, hoverTarget(hovered), theme.AnimationDuration)

	var base, hover float32 = 0, 20
	if active {
		base = 60
	}
	alpha := uint8(maxf(base+(hover-base)*k, base))

	bg, fg := t.Colors.Background, t.Colors.TextSecondary.WithAlpha(theme.AlphaSecondary)
	switch {
	case active:
		bg, fg = t.Colors.Primary, t.Colors.TextPrimary
	case hovered:
		bg, fg = t.Colors.SurfaceHover, t.Colors.TextSecondary
	}
	ctx.FillRoundedRect(r, theme.SidebarItemBorderRadius, bg.WithAlpha(alpha))
	ctx.DrawText(r.X+theme.SpaceMD, r.Y+12, theme.FontMD, label, fg)

	ctx.Place(r)
	return hovered && ctx.in.MousePressed, r
}

// StatCard shows a labelled figure with a small bar chart in accent. The
// shadow drops further while hovered.
func StatCard(ctx *Ctx, label, value string, accent colors.Color) Rect {
	id, release := ctx.enter()
	defer release()

	t := ctx.Theme()
	r := R(ctx.cursor.X, ctx.cursor.Y, theme.StatCardWidth, theme.StatCardHeight)
	k := animate(ctx, id, hoverTarget(ctx.IsHovered(r)), theme.AnimationDuration)

	lift := 4 + 4*k
	ctx.DrawShadow(r.Translate(theme.CardShadowOffset, lift), theme.CardBorderRadius, theme.CardShadowBlur, t.Colors.Shadow)
	ctx.FillRoundedRect(r, theme.CardBorderRadius, t.Colors.Surface)
	ctx.DrawText(r.X+theme.SpaceMD, r.Y+theme.SpaceLG, theme.FontSM, label, t.Colors.TextSecondary.WithAlpha(theme.AlphaTertiary))
	ctx.DrawText(r.X+theme.SpaceMD, r.Y+45, theme.FontXXL, value, t.Colors.TextPrimary)
	chartIcon(ctx, r.X+195, r.Y+55, 30, accent)

	return ctx.Place(r)
}

func Text(ctx *Ctx, s string) Rect {
	return textBlock(ctx, s, theme.FontLG, theme.SpaceSM, ctx.Theme().Colors.TextPrimary)
}

func TextMuted(ctx *Ctx, s string) Rect {
	return textBlock(ctx, s, theme.FontMD, theme.SpaceSM, ctx.Theme().Colors.TextSecondary)
}

func TextHeading(ctx *Ctx, s string) Rect {
	return textBlock(ctx, s, theme.FontXL, theme.SpaceMD, ctx.Theme().Colors.TextPrimary)
}

// textBlock draws each line of s and places a box of the measured size plus gap.
func textBlock(ctx *Ctx, s string, size, gap float32, col colors.Color) Rect {
	ctx.widgets++
	x, y := ctx.cursor.X, ctx.cursor.Y
	var w, h float32
	for _, line := range strings.Split(s, "\n") {
		lw, lh := ctx.DrawText(x, y+h, size, line, col)
		w = maxf(w, lw)
		h += lh
	}
	return ctx.Place(R(x, y, w, h+gap))
}

// Divider is a hairline across the available width with vertical margins.
func Divider(ctx *Ctx) Rect {
	x, y, w := ctx.cursor.X, ctx.cursor.Y, ctx.cursor.W
	ctx.FillRect(R(x, y+theme.DividerMarginY, w, theme.DividerHeight), ctx.Theme().Colors.Border.WithAlpha(50))
	return ctx.Place(R(x, y, w, theme.DividerHeight+2*theme.DividerMarginY))
}

func Spacer(ctx *Ctx, h float32) Rect {
	return ctx.Space(0, h)
}

func HSpacer(ctx *Ctx, w float32) Rect {
	return ctx.Space(w, 0)
}

func plusIcon(ctx *Ctx, x, y, size float32, col colors.Color) {
	mid := size / 2
	ctx.FillRect(R(x+mid-1, y, 2, size), col)
	ctx.FillRect(R(x, y+mid-1, size, 2), col)
}

func chartIcon(ctx *Ctx, x, y, size float32, col colors.Color) {
	bw := size / 4
	for i := range 3 {
		h := float32(i+1) * (size / 3)
		ctx.FillRect(R(x+float32(i)*(bw+1), y+size-h, bw, h), col)
	}
}
