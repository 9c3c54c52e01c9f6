package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	Layout  string  // "desktop/compact" etc.
	Drawer  string  // drawer state, shown only in mobile layout
	WidthPt float64 // viewport width in layout points
	Section string
	Dark    bool
}

// StatusBar is the bottom status line.
type StatusBar struct {
	width   int
	palette Palette
	data    StatusBarData
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar() *StatusBar {
	return &StatusBar{palette: LightPalette}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) SetPalette(p Palette) {
	s.palette = p
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

const statusBarSep = " │ "

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}
	p := s.palette
	bg := lipgloss.NewStyle().Background(p.Surface)

	parts := make([]string, 0, 5)
	parts = append(parts, bg.Foreground(p.Primary).Bold(true).Render("dash"))
	if s.data.Section != "" {
		parts = append(parts, bg.Foreground(p.Text).Render(s.data.Section))
	}
	if s.data.Layout != "" {
		parts = append(parts, bg.Foreground(p.TextSecondary).Render(s.data.Layout))
	}
	if s.data.Drawer != "" {
		parts = append(parts, bg.Foreground(p.Warning).Render("drawer "+s.data.Drawer))
	}
	parts = append(parts, bg.Foreground(p.Muted).Render(fmt.Sprintf("%.0fpt", s.data.WidthPt)))
	parts = append(parts, bg.Foreground(p.Muted).Render(themeLabel(s.data.Dark)))

	sep := bg.Foreground(p.Border).Render(statusBarSep)
	// Cut before styling so a narrow terminal never wraps the bar.
	line := ansi.Truncate(strings.Join(parts, sep), s.width-2, "…")
	return bg.Foreground(p.Text).Padding(0, 1).Width(s.width).MaxWidth(s.width).Render(line)
}
