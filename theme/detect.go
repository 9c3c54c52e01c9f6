package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// stdoutIsTerminal is swapped in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// hasDarkBackground is swapped in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// DetectSystem seeds p with the platform preference. hint overrides
// detection: "dark" or "light" force a mode, "auto" or "" ask the terminal
// for its background. When stdout is not a terminal there is no system
// signal and p keeps resolving to light.
func DetectSystem(p *Provider, hint string) {
	if m, ok := ParseMode(hint); ok {
		p.SetSystem(m)
		return
	}
	if !stdoutIsTerminal() {
		p.ClearSystem()
		return
	}
	if hasDarkBackground() {
		p.SetSystem(Dark)
		return
	}
	p.SetSystem(Light)
}
