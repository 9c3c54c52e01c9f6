package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/dashshell/anim"
	"github.com/kastheco/dashshell/config"
	"github.com/kastheco/dashshell/config/journal"
	"github.com/kastheco/dashshell/internal/sentry"
	"github.com/kastheco/dashshell/log"
	"github.com/kastheco/dashshell/sidebar"
	"github.com/kastheco/dashshell/theme"
	"github.com/kastheco/dashshell/ui"
)

// SidebarTokens converts the layout config to sidebar geometry.
func SidebarTokens(l config.LayoutConfig) sidebar.Tokens {
	return sidebar.Tokens{
		Breakpoint:        l.Breakpoint,
		ExpandedThreshold: l.ExpandedThreshold,
		ExpandedWidth:     l.SidebarExpanded,
		CompactWidth:      l.SidebarCompact,
		HeaderHeight:      l.HeaderHeight,
	}
}

func motionFromConfig(a config.AnimationConfig) sidebar.Motion {
	return sidebar.Motion{
		WidthSpring:  anim.Spring{Tension: a.WidthSpring.Tension, Friction: a.WidthSpring.Friction},
		DrawerSpring: anim.Spring{Tension: a.DrawerSpring.Tension, Friction: a.DrawerSpring.Friction},
		FadeIn:       a.FadeIn(),
		FadeOut:      a.FadeOut(),
	}
}

func profileFromConfig(p config.ProfileConfig) ui.Profile {
	return ui.Profile{
		Name:          p.Name,
		Role:          p.Role,
		StorageUsedGB: p.StorageUsedGB,
		StorageCapGB:  p.StorageCapGB,
	}
}

// journalObserver logs sidebar transitions and records them in the journal.
type journalObserver struct {
	journal journal.Logger
	session string
	theme   *theme.Provider
}

func (o *journalObserver) dark() bool {
	return o.theme != nil && o.theme.IsDark()
}

func (o *journalObserver) LayoutChanged(from, to sidebar.Layout, width float64) {
	log.SidebarLog.Printf("layout %s -> %s at %.0fpt", from, to, width)
	sentry.SetLayout(width, to.String(), o.dark())
	o.journal.Emit(journal.NewEvent(journal.EventLayoutChanged, o.session,
		fmt.Sprintf("layout changed to %s", to),
		journal.WithTransition(from.String(), to.String()),
		journal.WithWidth(width)))
}

func (o *journalObserver) DrawerChanged(from, to sidebar.DrawerState) {
	log.SidebarLog.Printf("drawer %s -> %s", from, to)
	o.journal.Emit(journal.NewEvent(journal.EventDrawerTransition, o.session,
		fmt.Sprintf("drawer %s", to),
		journal.WithTransition(string(from), string(to))))
}

func (o *journalObserver) ItemSelected(from, to int) {
	log.InfoLog.Printf("menu item %d -> %d", from, to)
	o.journal.Emit(journal.NewEvent(journal.EventItemSelected, o.session,
		fmt.Sprintf("selected item %d", to),
		journal.WithTransition(fmt.Sprint(from), fmt.Sprint(to)),
		journal.WithItem(to)))
}

func (o *journalObserver) ThemeToggled(dark bool) {
	mode := "light"
	if dark {
		mode = "dark"
	}
	log.InfoLog.Printf("theme toggled to %s", mode)
	o.journal.Emit(journal.NewEvent(journal.EventThemeChanged, o.session,
		"theme changed to "+mode, journal.WithTransition("", mode)))
}

func (o *journalObserver) CloseExpired(seq uint64) {
	log.WarningLog.Printf("drawer close %d did not settle in time, forced closed", seq)
	o.journal.Emit(journal.NewEvent(journal.EventCloseWatchdog, o.session,
		fmt.Sprintf("close episode %d forced closed", seq),
		journal.WithLevel("warn")))
}

// syncTheme picks up a theme change from the provider and restyles every
// component.
func (m *home) syncTheme() {
	dark := m.theme.IsDark()
	if dark == m.dark {
		return
	}
	m.dark = dark
	m.palette = ui.PaletteFor(dark)
	m.applyPalette()
}

func (m *home) applyPalette() {
	m.sidebarView.SetPalette(m.palette)
	m.content.SetTheme(m.dark)
	m.statusBar.SetPalette(m.palette)
	m.menu.SetPalette(m.palette)
	m.toasts.SetPalette(m.palette.ToastPalette())
}

// syncChrome pushes the current frame into the status bar, footer and
// content heading.
func (m *home) syncChrome(out sidebar.RenderOutput) {
	section := ""
	if out.Active >= 0 && out.Active < len(out.Items) {
		section = out.Items[out.Active].Label
	}
	m.content.SetSection(section)

	data := ui.StatusBarData{
		Layout:  out.Layout.String(),
		WidthPt: m.metrics.Points(m.termWidth),
		Section: section,
		Dark:    out.Dark,
	}
	switch {
	case out.Layout.Mode != sidebar.Mobile:
		m.menu.SetState(ui.StateDesktop)
	case out.DrawerVisible:
		data.Drawer = string(out.Drawer)
		m.menu.SetState(ui.StateDrawer)
	default:
		data.Drawer = string(out.Drawer)
		m.menu.SetState(ui.StateMobile)
	}
	m.statusBar.SetData(data)
}

// renderBody draws everything above the status bar: the sidebar and content
// side by side on desktop, the header and content stacked on mobile with
// the drawer composited on top while it is visible.
func (m *home) renderBody(out sidebar.RenderOutput, height int) string {
	width := m.termWidth
	tokens := m.sidebar.Tokens()

	if out.Layout.Mode == sidebar.Desktop {
		railCols := min(max(2, m.metrics.Cols(out.Width)), max(2, width-1))
		m.sidebarView.SetSize(railCols, height)
		m.content.SetSize(max(0, width-railCols), height)
		return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView.Render(out), m.content.String())
	}

	headerRows := min(height, m.metrics.Rows(tokens.HeaderHeight))
	m.content.SetSize(width, max(0, height-headerRows))
	body := ui.MobileHeader(m.palette, width, headerRows)
	if height > headerRows {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.content.String())
	}
	if !out.DrawerVisible {
		return body
	}

	panelCols := m.metrics.Cols(tokens.ExpandedWidth)
	m.sidebarView.SetSize(panelCols, height)
	frame := ui.DrawerFrame{
		Panel:      m.sidebarView.Render(out),
		PanelWidth: panelCols,
		OffsetCols: m.metrics.Cols(out.SlideOffset),
		Opacity:    out.BackdropOpacity,
	}
	return ui.ComposeDrawer(body, width, height, frame, m.palette)
}
