package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Counter is the demo widget in the content pane.
type Counter struct {
	count int
}

func (c *Counter) Increment() { c.count++ }
func (c *Counter) Decrement() { c.count-- }
func (c *Counter) Value() int { return c.count }

var (
	counterDecColor = lipgloss.Color("#FF5252")
	counterIncColor = lipgloss.Color("#4CAF50")
	counterValColor = lipgloss.Color("#2196F3")
)

// View renders the counter centred in width columns.
func (c *Counter) View(p Palette, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("Cross-platform Counter")
	value := lipgloss.NewStyle().Bold(true).Foreground(counterValColor).Padding(1, 0).Render(strconv.Itoa(c.count))

	button := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 2)
	dec := zone.Mark(ZoneCounterDec, button.Background(counterDecColor).Render("-"))
	inc := zone.Mark(ZoneCounterInc, button.Background(counterIncColor).Render("+"))
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, dec, "   ", inc)

	block := lipgloss.JoinVertical(lipgloss.Center, title, value, buttons)
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
