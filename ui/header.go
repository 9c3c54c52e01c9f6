package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MobileHeader is the bar shown above the content in mobile layout: logo,
// title and the hamburger that opens the drawer.
func MobileHeader(p Palette, width, rows int) string {
	if width <= 0 {
		return ""
	}
	rows = max(1, rows)

	logo := lipgloss.NewStyle().Background(p.PrimaryLight).Foreground(p.Primary).Render(" " + Icon("moon"))
	title := lipgloss.NewStyle().Bold(true).Background(p.Surface).Foreground(p.Text).Render("  " + AppTitle)
	burger := zone.Mark(ZoneHamburger,
		lipgloss.NewStyle().Bold(true).Background(p.Surface).Foreground(p.Text).Render(" "+Glyph("menu")+" "))

	left := " " + logo + title
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(burger)-1)
	bar := fitLine(left+strings.Repeat(" ", gap)+burger, width, p.Surface)

	lines := make([]string, 0, rows)
	mid := (rows - 1) / 2
	blank := fitLine("", width, p.Surface)
	for i := 0; i < rows-1; i++ {
		if i == mid {
			lines = append(lines, bar)
			continue
		}
		lines = append(lines, blank)
	}
	if rows == 1 {
		return bar
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(p.Border).Background(p.Surface).Render(strings.Repeat("─", width)))
	return strings.Join(lines, "\n")
}
