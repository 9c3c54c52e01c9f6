package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPlaceOverlay(t *testing.T) {
	bg := "..........\n..........\n.........."

	out := ansi.Strip(PlaceOverlay(2, 1, "ab\ncd", bg))
	assert.Equal(t, "..........\n..ab......\n..cd......", out)

	out = ansi.Strip(PlaceOverlay(8, 0, "wxyz", bg))
	assert.Equal(t, "........wx\n..........\n..........", out, "clipped on the right")

	out = ansi.Strip(PlaceOverlay(0, 2, "a\nb", bg))
	assert.Equal(t, "..........\n..........\na.........", out, "clipped at the bottom")

	assert.Equal(t, bg, PlaceOverlay(0, 0, "", bg))
}
