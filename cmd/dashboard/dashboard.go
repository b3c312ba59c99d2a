package main

import (
	"fmt"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/theme"
	"github.com/hubastard/canopy/engine/ui"
)

const (
	tabOverview = iota
	tabAnalytics
	tabSettings
)

var tabTitles = [...]string{
	tabOverview:  "SYSTEM OVERVIEW",
	tabAnalytics: "DETAILED ANALYTICS",
	tabSettings:  "SETTINGS",
}

// Content area placement beside the sidebar.
const (
	contentX      float32 = 300
	contentY      float32 = 40
	contentMargin float32 = 340
	contentMinW   float32 = 100
	contentH      float32 = 500
)

// buildDashboard lays out the demo for one frame over a w x h viewport.
func buildDashboard(ctx *ui.Ctx, w, h float32) {
	if ctx.Input().KeyPressed(core.KeyF2) {
		ctx.Store().SetTheme(theme.Toggle(ctx.Theme()))
	}
	t := ctx.Theme()

	revenue := ui.UseState(ctx, func() int { return 142400 })
	users := ui.UseState(ctx, func() int { return 4821 })
	activeTab := ui.UseState(ctx, func() int { return tabOverview })
	tab := activeTab.Get()

	ctx.SetCursor(ui.R(0, 0, theme.SidebarWidth, h))
	ui.Column(ctx, ui.Bg(t.Colors.Surface).Pad(theme.SidebarPadding), func(c *ui.Ctx) {
		ui.TextHeading(c, "CANOPY")
		ui.TextMuted(c, "v2.0 - all features")
		ui.Divider(c)
		ui.Spacer(c, 20)

		for i, label := range []string{"Dashboard", "Analytics", "Settings"} {
			if clicked, _ := ui.SidebarItem(c, label, tab == i); clicked {
				activeTab.Set(i)
			}
		}

		ui.Spacer(c, 40)
		ui.TextInput(c, ui.Sz(210, 40), "Search...")
		ui.Spacer(c, 20)

		if clicked, _ := ui.Button(c, ui.Bg(t.Colors.Primary).Size(210, 45), "Boost Sales"); clicked {
			revenue.Update(func(v int) int { return v + 1500 })
		}
		if clicked, _ := ui.Button(c, ui.Bg(t.Colors.Success).Size(210, 45), "+ Add Users"); clicked {
			users.Update(func(v int) int { return v + 100 })
		}
	})

	cw := max(w-contentMargin, contentMinW)
	ctx.SetCursor(ui.R(contentX, contentY, cw, h-contentY))
	ui.ScrollView(ctx, ui.Bg(t.Colors.Surface).Size(cw, contentH), func(c *ui.Ctx) {
		ui.Column(c, ui.Pad(20), func(c *ui.Ctx) {
			title := "DASHBOARD"
			if tab >= 0 && tab < len(tabTitles) {
				title = tabTitles[tab]
			}
			ui.TextHeading(c, title)
			ui.Divider(c)
			ui.Spacer(c, 30)

			ui.Row(c, ui.Pad(0), func(c *ui.Ctx) {
				ui.StatCard(c, "TOTAL REVENUE", fmt.Sprintf("$ %dK", revenue.Get()/1000), t.Colors.Success)
				ui.HSpacer(c, 20)
				ui.StatCard(c, "ACTIVE USERS", fmt.Sprint(users.Get()), t.Colors.Primary)
				ui.HSpacer(c, 20)
				ui.StatCard(c, "CONVERSION", "12.5%", t.Colors.Error)
			})

			ui.Spacer(c, 40)
			ui.TextHeading(c, "RECENT ACTIVITY")
			ui.Spacer(c, 15)
			for i := range 10 {
				ui.Card(c, ui.Sz(c.Cursor().W, 60), func(c *ui.Ctx) {
					ui.Row(c, ui.Pad(0), func(c *ui.Ctx) {
						ui.Text(c, fmt.Sprintf("Activity #%d - System check completed", i+1))
						ui.HSpacer(c, 20)
						ui.TextMuted(c, fmt.Sprintf("%dm ago", (i+1)*5))
					})
				})
				ui.Spacer(c, 10)
			}

			ui.Spacer(c, 40)
			if tab == tabSettings {
				settings(c, t.Name)
			}
			ui.Spacer(c, 100)
		})
	})
}

func settings(c *ui.Ctx, themeName string) {
	ui.TextHeading(c, "PREFERENCES")
	ui.Spacer(c, 20)

	ui.Card(c, ui.Sz(c.Cursor().W, 200), func(c *ui.Ctx) {
		ui.Text(c, "Appearance")
		ui.Spacer(c, 10)
		ui.TextMuted(c, "Press F2 to switch between themes")
		ui.Spacer(c, 15)
		ui.TextMuted(c, "Current theme: "+themeName)
	})
	ui.Spacer(c, 20)

	ui.Card(c, ui.Sz(c.Cursor().W, 150), func(c *ui.Ctx) {
		ui.Text(c, "Debug Info")
		ui.Spacer(c, 10)
		ui.TextMuted(c, "Press F3 to toggle the debug overlay")
		ui.TextMuted(c, "Press F12 to save a screenshot")
	})
}
