package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	// oscSetBackground sets the terminal's default background (OSC 11).
	oscSetBackground = "\033]11;%s\033\\"
	// oscResetBackground restores the configured default (OSC 111).
	oscResetBackground = "\033]111\033\\"
)

// SetTerminalBackground paints the terminal's default background with the
// palette background so cells lipgloss never styles still match the theme.
// The returned func restores the original. With NO_COLOR set nothing is
// written.
func SetTerminalBackground(p Palette) func() {
	if termenv.EnvNoColor() {
		return func() {}
	}
	return paintBackground(os.Stdout, p.Background)
}

func paintBackground(w io.Writer, bg lipgloss.Color) func() {
	if bg == "" {
		return func() {}
	}
	fmt.Fprintf(w, oscSetBackground, bg)
	return func() { io.WriteString(w, oscResetBackground) }
}
