package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FillBackground makes s exactly height rows, padding short rows to width
// with bg, so the alt-screen renderer never keeps rows from an earlier
// frame. Rows past height are dropped. Zero width leaves rows unpadded.
func FillBackground(s string, width, height int, bg lipgloss.TerminalColor) string {
	if height <= 0 {
		return s
	}
	rows := strings.SplitN(s, "\n", height+1)
	pad := lipgloss.NewStyle().Background(bg)

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := ""
		if y < len(rows) {
			row = rows[y]
		}
		b.WriteString(row)
		if gap := width - lipgloss.Width(row); gap > 0 {
			b.WriteString(pad.Render(strings.Repeat(" ", gap)))
		}
	}
	return b.String()
}

// fitLine cuts line to width cells and pads it out with bg.
func fitLine(line string, width int, bg lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}
	line = ansi.Truncate(line, width, "…")
	if w := ansi.StringWidth(line); w < width {
		line += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width-w))
	}
	return line
}
