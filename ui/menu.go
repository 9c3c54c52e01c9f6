package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/dashshell/keys"
)

// MenuState picks which key hints the footer shows.
type MenuState int

const (
	StateDesktop MenuState = iota
	StateMobile
	StateDrawer
)

var (
	desktopMenuOptions = []keys.KeyName{keys.KeyUp, keys.KeyDown, keys.KeyTheme, keys.KeyIncrement, keys.KeyDecrement, keys.KeyHelp, keys.KeyQuit}
	mobileMenuOptions  = []keys.KeyName{keys.KeyMenu, keys.KeyTheme, keys.KeyIncrement, keys.KeyDecrement, keys.KeyHelp, keys.KeyQuit}
	drawerMenuOptions  = []keys.KeyName{keys.KeyUp, keys.KeyDown, keys.KeyClose, keys.KeyTheme, keys.KeyQuit}
	fullHelpOptions    = [][]keys.KeyName{
		{keys.KeyUp, keys.KeyDown, keys.KeyJump},
		{keys.KeyMenu, keys.KeyClose, keys.KeyTheme},
		{keys.KeyIncrement, keys.KeyDecrement, keys.KeyHelp, keys.KeyQuit},
	}
)

// Menu is the footer line of key hints.
type Menu struct {
	state    MenuState
	width    int
	showFull bool
	help     help.Model
}

func NewMenu() *Menu {
	m := &Menu{help: help.New()}
	m.SetPalette(LightPalette)
	return m
}

func (m *Menu) SetState(state MenuState) {
	m.state = state
}

func (m *Menu) State() MenuState { return m.state }

// ToggleFull switches between the one-line and the full help.
func (m *Menu) ToggleFull() {
	m.showFull = !m.showFull
	m.help.ShowAll = m.showFull
}

func (m *Menu) SetSize(width int) {
	m.width = width
	m.help.Width = width
}

func (m *Menu) SetPalette(p Palette) {
	keyStyle := lipgloss.NewStyle().Foreground(p.TextSecondary)
	descStyle := lipgloss.NewStyle().Foreground(p.Muted)
	sepStyle := lipgloss.NewStyle().Foreground(p.Border)
	m.help.Styles = help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// ShortHelp and FullHelp make Menu a help.KeyMap.
func (m *Menu) ShortHelp() []key.Binding {
	switch m.state {
	case StateMobile:
		return keys.Bindings(mobileMenuOptions...)
	case StateDrawer:
		return keys.Bindings(drawerMenuOptions...)
	}
	return keys.Bindings(desktopMenuOptions...)
}

func (m *Menu) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, len(fullHelpOptions))
	for i, g := range fullHelpOptions {
		groups[i] = keys.Bindings(g...)
	}
	return groups
}

// Height is the number of rows String renders.
func (m *Menu) Height() int {
	return lipgloss.Height(m.help.View(m))
}

func (m *Menu) String() string {
	view := m.help.View(m)
	if m.width <= 0 {
		return view
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
}
