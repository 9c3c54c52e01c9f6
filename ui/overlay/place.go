package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlaceOverlay draws fg over bg with its top-left corner at column x, row y.
// Parts of fg that fall outside bg are clipped.
func PlaceOverlay(x, y int, fg, bg string) string {
	if fg == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]
		baseWidth := ansi.StringWidth(base)
		if x >= baseWidth {
			continue
		}
		fgWidth := ansi.StringWidth(line)
		if x+fgWidth > baseWidth {
			line = ansi.Truncate(line, baseWidth-x, "")
			fgWidth = ansi.StringWidth(line)
		}

		left := ansi.Truncate(base, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(base, x+fgWidth, "")
		bgLines[row] = left + "\x1b[0m" + line + "\x1b[0m" + right
	}
	return strings.Join(bgLines, "\n")
}
