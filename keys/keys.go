package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyJump // 1-7 selects a menu item directly

	KeyMenu  // Key for opening the mobile drawer
	KeyClose // Key for dismissing the drawer, same as tapping the backdrop

	KeyTheme     // Key for toggling light/dark
	KeyIncrement // Counter +
	KeyDecrement // Counter -

	KeyHelp // Key for expanding the footer help
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"1":      KeyJump,
	"2":      KeyJump,
	"3":      KeyJump,
	"4":      KeyJump,
	"5":      KeyJump,
	"6":      KeyJump,
	"7":      KeyJump,
	"m":      KeyMenu,
	"esc":    KeyClose,
	"t":      KeyTheme,
	"+":      KeyIncrement,
	"=":      KeyIncrement,
	"-":      KeyDecrement,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName tot keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyJump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
		key.WithHelp("1-7", "jump"),
	),
	KeyMenu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	KeyClose: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyTheme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	KeyIncrement: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "count up"),
	),
	KeyDecrement: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "count down"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Bindings returns the bindings for names, in order.
func Bindings(names ...KeyName) []key.Binding {
	out := make([]key.Binding, 0, len(names))
	for _, n := range names {
		if b, ok := GlobalkeyBindings[n]; ok {
			out = append(out, b)
		}
	}
	return out
}
