package ui

import "github.com/mattn/go-runewidth"

// IconWidth is the number of cells every icon occupies.
const IconWidth = 2

// glyphs maps icon ids to terminal glyphs. Outline and filled variants
// pair up so the active state reads as "filled in".
var glyphs = map[string]string{
	"home-outline":        "☖",
	"home-sharp":          "☗",
	"stats-chart-outline": "▯",
	"stats-chart":         "▮",
	"card-outline":        "▭",
	"card":                "▬",
	"paper-plane-outline": "▷",
	"paper-plane":         "▶",
	"people-outline":      "☺",
	"people":              "☻",
	"folder-outline":      "□",
	"folder":              "■",
	"settings-outline":    "◎",
	"settings-sharp":      "◉",

	"moon":          "☾",
	"sunny":         "☀",
	"cloud-outline": "☁",
	"menu":          "≡",
}

const fallbackGlyph = "•"

// Glyph returns the glyph for an icon id.
func Glyph(id string) string {
	if g, ok := glyphs[id]; ok {
		return g
	}
	return fallbackGlyph
}

// Icon returns the glyph for id padded to IconWidth cells.
func Icon(id string) string {
	g := Glyph(id)
	if runewidth.StringWidth(g) > IconWidth {
		g = runewidth.Truncate(g, IconWidth, "")
	}
	return runewidth.FillRight(g, IconWidth)
}
