package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/kastheco/dashshell/sidebar"
	"github.com/kastheco/dashshell/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = Profile{Name: "Paulo Morales", Role: "Admin", StorageUsedGB: 18.2, StorageCapGB: 20}

func renderAt(t *testing.T, viewport float64, width, height int) (string, sidebar.RenderOutput) {
	t.Helper()
	c, err := sidebar.New(theme.NewProvider())
	require.NoError(t, err)
	c.Resize(viewport)
	for c.Animating() {
		c.Frame(time.Second / 60)
	}
	out := c.Render()

	s := NewSidebar(testProfile)
	s.SetSize(width, height)
	return s.Render(out), out
}

func TestSidebarRender_Expanded(t *testing.T) {
	view, _ := renderAt(t, 1200, 33, 30)
	plain := ansi.Strip(view)

	lines := strings.Split(plain, "\n")
	assert.Len(t, lines, 30)
	for i, line := range lines {
		assert.Equal(t, 33, ansi.StringWidth(line), "line %d: %q", i, line)
	}

	for _, want := range []string{AppTitle, "Home", "Analytics", "Settings", "Files", " 2 ", "Light Mode", "Paulo Morales", "Admin", "Storage", "18.2 GB of 20 GB used"} {
		assert.Contains(t, plain, want)
	}
}

func TestSidebarRender_Compact(t *testing.T) {
	view, out := renderAt(t, 900, 9, 24)
	require.Equal(t, sidebar.DesktopCompact, out.Variant)
	plain := ansi.Strip(view)

	assert.NotContains(t, plain, "Home")
	assert.NotContains(t, plain, AppTitle)
	assert.NotContains(t, plain, "Storage")
	assert.Contains(t, plain, "PM")
	assert.Contains(t, plain, Glyph("home-sharp"), "active item uses the filled icon")
	assert.Contains(t, plain, Glyph("stats-chart-outline"))
}

func TestSidebarRender_NarrowClipsLabels(t *testing.T) {
	view, _ := renderAt(t, 1200, 14, 30)
	for i, line := range strings.Split(ansi.Strip(view), "\n") {
		assert.Equal(t, 14, ansi.StringWidth(line), "line %d: %q", i, line)
	}
}

func TestSidebarRender_ShortTerminal(t *testing.T) {
	view, _ := renderAt(t, 1200, 33, 10)
	assert.Len(t, strings.Split(view, "\n"), 10)
}

func TestSidebarRender_TooSmall(t *testing.T) {
	view, _ := renderAt(t, 1200, 1, 10)
	assert.Empty(t, view)
}

func TestSidebarRender_DarkLabel(t *testing.T) {
	p := theme.NewProvider()
	p.SetSystem(theme.Dark)
	c, err := sidebar.New(p)
	require.NoError(t, err)

	s := NewSidebar(testProfile)
	s.SetPalette(DarkPalette)
	s.SetSize(33, 30)
	assert.Contains(t, ansi.Strip(s.Render(c.Render())), "Dark Mode")
}

func TestProfile(t *testing.T) {
	assert.Equal(t, "PM", testProfile.Initials())
	assert.Equal(t, "A", Profile{Name: "ada"}.Initials())
	assert.Equal(t, "?", Profile{}.Initials())
	assert.Equal(t, "JR", Profile{Name: "John Ronald Tolkien"}.Initials())

	assert.InDelta(t, 0.91, testProfile.StorageFraction(), 0.001)
	assert.Equal(t, 0.0, Profile{StorageUsedGB: 5}.StorageFraction())
	assert.Equal(t, 1.0, Profile{StorageUsedGB: 30, StorageCapGB: 20}.StorageFraction())
}
