package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/dashshell/ui/overlay"
)

// Palette is one side of the dashboard's light/dark colour table.
type Palette struct {
	Primary      lipgloss.Color
	PrimaryLight lipgloss.Color

	Background    lipgloss.Color
	Surface       lipgloss.Color
	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	Border        lipgloss.Color
	Muted         lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Scrim is the colour the backdrop fades toward at full opacity.
	Scrim lipgloss.Color
	// Sun is the theme switch knob colour in light mode.
	Sun lipgloss.Color
}

// Light palette
var LightPalette = Palette{
	Primary:      lipgloss.Color("#4B6BFB"),
	PrimaryLight: lipgloss.Color("#EEF2FF"),

	Background:    lipgloss.Color("#FFFFFF"),
	Surface:       lipgloss.Color("#FFFFFF"),
	Text:          lipgloss.Color("#1E293B"),
	TextSecondary: lipgloss.Color("#64748B"),
	Border:        lipgloss.Color("#E2E8F0"),
	Muted:         lipgloss.Color("#94A3B8"),

	Success: lipgloss.Color("#10B981"),
	Error:   lipgloss.Color("#EF4444"),
	Warning: lipgloss.Color("#F59E0B"),

	Scrim: lipgloss.Color("#7F7F7F"),
	Sun:   lipgloss.Color("#FDB813"),
}

// Dark palette. Primary and the state colours are shared with light.
var DarkPalette = Palette{
	Primary:      lipgloss.Color("#4B6BFB"),
	PrimaryLight: lipgloss.Color("#1D2B66"),

	Background:    lipgloss.Color("#0F172A"),
	Surface:       lipgloss.Color("#1E293B"),
	Text:          lipgloss.Color("#F1F5F9"),
	TextSecondary: lipgloss.Color("#94A3B8"),
	Border:        lipgloss.Color("#334155"),
	Muted:         lipgloss.Color("#64748B"),

	Success: lipgloss.Color("#10B981"),
	Error:   lipgloss.Color("#EF4444"),
	Warning: lipgloss.Color("#F59E0B"),

	Scrim: lipgloss.Color("#000000"),
	Sun:   lipgloss.Color("#FDB813"),
}

// PaletteFor picks the palette for a theme mode.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// ToastPalette adapts p for the toast overlay.
func (p Palette) ToastPalette() overlay.Palette {
	return overlay.Palette{
		Surface: p.Surface,
		Text:    p.Text,
		Info:    p.Primary,
		Warning: p.Warning,
		Error:   p.Error,
	}
}

// FormPalette adapts p for huh forms.
func (p Palette) FormPalette() overlay.FormPalette {
	return overlay.FormPalette{
		Primary:      p.Primary,
		PrimaryLight: p.PrimaryLight,
		Text:         p.Text,
		Muted:        p.TextSecondary,
		Border:       p.Border,
		Success:      p.Success,
		Error:        p.Error,
	}
}
