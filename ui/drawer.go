package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/lucasb-eyer/go-colorful"
)

// backdropMaxDim is how far the backdrop moves toward the scrim colour at
// full opacity.
const backdropMaxDim = 0.5

// DrawerFrame is one frame of the mobile drawer overlay.
type DrawerFrame struct {
	// Panel is the rendered drawer, PanelWidth columns wide.
	Panel      string
	PanelWidth int
	// OffsetCols is the slide offset in columns: 0 fully shown,
	// -PanelWidth fully hidden.
	OffsetCols int
	// Opacity is the backdrop opacity in [0, 1].
	Opacity float64
}

// VisibleCols is how many columns of the panel are on screen.
func (f DrawerFrame) VisibleCols(screenWidth int) int {
	return min(screenWidth, max(0, f.PanelWidth+f.OffsetCols))
}

// ComposeDrawer draws the drawer over screen. The slid-in part of the panel
// covers the left edge; everything to its right is the backdrop, which dims
// the screen toward the scrim colour as the opacity rises.
func ComposeDrawer(screen string, width, height int, f DrawerFrame, p Palette) string {
	if width <= 0 || height <= 0 {
		return screen
	}
	visible := f.VisibleCols(width)
	hidden := min(f.PanelWidth, max(0, -f.OffsetCols))

	under := padLines(strings.Split(screen, "\n"), height)
	panel := padLines(strings.Split(f.Panel, "\n"), height)

	dim := min(1, max(0, f.Opacity)) * backdropMaxDim
	backdrop := lipgloss.NewStyle().
		Foreground(blend(p.Text, p.Scrim, dim*1.5)).
		Background(blend(p.Background, p.Scrim, dim))

	left := make([]string, height)
	right := make([]string, height)
	for i := 0; i < height; i++ {
		if visible > 0 {
			seg := ansi.TruncateLeft(panel[i], hidden, "")
			seg = ansi.Truncate(seg, visible, "")
			if w := ansi.StringWidth(seg); w < visible {
				seg += strings.Repeat(" ", visible-w)
			}
			left[i] = seg
		}
		rest := ansi.Strip(ansi.TruncateLeft(under[i], visible, ""))
		rest = ansi.Truncate(rest, width-visible, "")
		if w := ansi.StringWidth(rest); w < width-visible {
			rest += strings.Repeat(" ", width-visible-w)
		}
		right[i] = backdrop.Render(rest)
	}

	backdropBlock := ""
	if visible < width {
		backdropBlock = zone.Mark(ZoneBackdrop, strings.Join(right, "\n"))
	}
	if visible == 0 {
		return backdropBlock
	}
	if backdropBlock == "" {
		return strings.Join(left, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), backdropBlock)
}

func padLines(lines []string, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

// blend mixes two hex colours. t=0 is a, t=1 is b.
func blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, err := colorful.Hex(string(a))
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(string(b))
	if err != nil {
		return a
	}
	return lipgloss.Color(ca.BlendRgb(cb, min(1, max(0, t))).Clamped().Hex())
}
