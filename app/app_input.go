package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kastheco/dashshell/config/journal"
	"github.com/kastheco/dashshell/keys"
	"github.com/kastheco/dashshell/sidebar"
	"github.com/kastheco/dashshell/ui"
	zone "github.com/lrstanley/bubblezone"
)

// sidebarShown reports whether the menu items are on screen: always on
// desktop, and on mobile only while the drawer is mounted.
func (m *home) sidebarShown() bool {
	return m.sidebar.Layout().Mode == sidebar.Desktop || m.sidebar.DrawerVisible()
}

// itemAt returns the menu item under the pointer, or sidebar.NoItem.
func (m *home) itemAt(msg tea.MouseMsg) int {
	if !m.sidebarShown() {
		return sidebar.NoItem
	}
	for i := range m.sidebar.Menu() {
		if zone.Get(ui.MenuItemZoneID(i)).InBounds(msg) {
			return i
		}
	}
	return sidebar.NoItem
}

// zoneAt returns the clickable zone under the pointer, or "" when the
// pointer is over plain content.
func (m *home) zoneAt(msg tea.MouseMsg) string {
	if idx := m.itemAt(msg); idx != sidebar.NoItem {
		return ui.MenuItemZoneID(idx)
	}
	mobile := m.sidebar.Layout().Mode == sidebar.Mobile
	candidates := []string{ui.ZoneCounterDec, ui.ZoneCounterInc}
	switch {
	case mobile && m.sidebar.DrawerVisible():
		candidates = []string{ui.ZoneBackdrop, ui.ZoneThemeSwitch}
	case mobile:
		candidates = append(candidates, ui.ZoneHamburger)
	default:
		candidates = append(candidates, ui.ZoneThemeSwitch)
	}
	for _, id := range candidates {
		if zone.Get(id).InBounds(msg) {
			return id
		}
	}
	return ""
}

func (m *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Track hover on any mouse event.
	m.setHovered(m.itemAt(msg))

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	return m, m.clickZone(m.zoneAt(msg))
}

// setHovered moves the hover highlight to idx.
func (m *home) setHovered(idx int) {
	current := m.sidebar.Selection().Hovered
	if current == idx {
		return
	}
	m.sidebar.HoverLeave(current)
	if idx != sidebar.NoItem {
		m.sidebar.HoverEnter(idx)
	}
}

// clickZone acts on a left click in zone id. An empty id is a click on
// plain content, which inside an open drawer is absorbed by the panel.
func (m *home) clickZone(id string) tea.Cmd {
	for i := range m.sidebar.Menu() {
		if id == ui.MenuItemZoneID(i) {
			m.sidebar.Press(i)
			return nil
		}
	}

	switch id {
	case ui.ZoneHamburger:
		m.sidebar.ShowDrawer()
	case ui.ZoneBackdrop:
		return m.closeDrawer()
	case ui.ZoneThemeSwitch:
		return m.toggleTheme()
	case ui.ZoneCounterInc:
		m.bumpCounter(1)
	case ui.ZoneCounterDec:
		m.bumpCounter(-1)
	case "":
		if m.sidebar.DrawerVisible() {
			m.sidebar.TapContent()
		}
	}
	return nil
}

// closeDrawer taps the backdrop and arms the close watchdog.
func (m *home) closeDrawer() tea.Cmd {
	seq, ok := m.sidebar.TapBackdrop()
	if !ok {
		return nil
	}
	return m.watchdogCmd(seq)
}

func (m *home) toggleTheme() tea.Cmd {
	m.sidebar.ToggleTheme()
	m.syncTheme()
	label := "Light mode"
	if m.dark {
		label = "Dark mode"
	}
	m.toasts.Info(label)
	return nil
}

func (m *home) bumpCounter(delta int) {
	if delta > 0 {
		m.content.Counter.Increment()
	} else {
		m.content.Counter.Decrement()
	}
	value := m.content.Counter.Value()
	m.journal.Emit(journal.NewEvent(journal.EventCounterChanged, m.session,
		"counter is "+strconv.Itoa(value),
		journal.WithTransition(strconv.Itoa(value-delta), strconv.Itoa(value))))
}

// moveSelection steps the active item by delta, wrapping at the ends.
func (m *home) moveSelection(delta int) {
	n := len(m.sidebar.Menu())
	if n == 0 {
		return
	}
	next := ((m.sidebar.Selection().Active+delta)%n + n) % n
	m.sidebar.Press(next)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyUp:
		m.moveSelection(-1)
	case keys.KeyDown:
		m.moveSelection(1)
	case keys.KeyJump:
		if n, err := strconv.Atoi(msg.String()); err == nil {
			m.sidebar.Press(n - 1)
		}
	case keys.KeyMenu:
		m.sidebar.ShowDrawer()
	case keys.KeyClose:
		return m, m.closeDrawer()
	case keys.KeyTheme:
		return m, m.toggleTheme()
	case keys.KeyIncrement:
		m.bumpCounter(1)
	case keys.KeyDecrement:
		m.bumpCounter(-1)
	case keys.KeyHelp:
		m.menu.ToggleFull()
	}
	return m, nil
}
