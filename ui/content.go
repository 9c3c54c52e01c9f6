package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var sectionIntro = map[string]string{
	"Home":      "Overview of your workspace.",
	"Analytics": "Traffic and usage at a glance.",
	"Cards":     "Payment cards on file.",
	"Send":      "Transfer funds or share files.",
	"Users":     "People with access to this dashboard.",
	"Files":     "Documents shared with you. **2** are new.",
	"Settings":  "Account and display preferences.",
}

// SectionMarkdown is the markdown heading block shown above the counter
// for the selected menu section.
func SectionMarkdown(label string) string {
	intro, ok := sectionIntro[label]
	if !ok {
		intro = "Nothing here yet."
	}
	return fmt.Sprintf("# %s\n\n%s\n", label, intro)
}

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. WithAutoStyle would
	// query the terminal, so the style is always explicit.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func markdownStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// RenderMarkdown renders md with glamour, falling back to the raw text if
// the renderer fails.
func RenderMarkdown(md string, dark bool, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(10, width)
	style := markdownStyle(dark)
	key := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// ContentPane is the area right of (or below) the sidebar.
type ContentPane struct {
	width, height int
	palette       Palette
	dark          bool
	section       string
	Counter       Counter
}

func NewContentPane() *ContentPane {
	return &ContentPane{palette: LightPalette, section: "Home"}
}

func (c *ContentPane) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetTheme switches palette and markdown style.
func (c *ContentPane) SetTheme(dark bool) {
	c.dark = dark
	c.palette = PaletteFor(dark)
}

// SetSection sets the menu label whose heading is shown.
func (c *ContentPane) SetSection(label string) {
	c.section = label
}

func (c *ContentPane) Section() string { return c.section }

func (c *ContentPane) String() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}
	heading := RenderMarkdown(SectionMarkdown(c.section), c.dark, c.width-2)
	body := lipgloss.JoinVertical(lipgloss.Left, heading, "", c.Counter.View(c.palette, c.width))
	return lipgloss.NewStyle().
		Width(c.width).
		MaxWidth(c.width).
		Height(c.height).
		MaxHeight(c.height).
		Render(body)
}
