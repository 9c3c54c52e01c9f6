package sidebar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kastheco/dashshell/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

type recorder struct {
	layouts  []Layout
	drawers  []DrawerState
	selected []int
	themes   []bool
	expired  []uint64
}

func (r *recorder) LayoutChanged(_, to Layout, _ float64) { r.layouts = append(r.layouts, to) }
func (r *recorder) DrawerChanged(_, to DrawerState)       { r.drawers = append(r.drawers, to) }
func (r *recorder) ItemSelected(_, to int)                { r.selected = append(r.selected, to) }
func (r *recorder) ThemeToggled(dark bool)                { r.themes = append(r.themes, dark) }
func (r *recorder) CloseExpired(seq uint64)               { r.expired = append(r.expired, seq) }

func newController(t *testing.T, opts ...Option) (*Controller, *theme.Provider) {
	t.Helper()
	p := theme.NewProvider()
	c, err := New(p, opts...)
	require.NoError(t, err)
	return c, p
}

// settle runs frames until nothing animates.
func settle(t *testing.T, c *Controller) {
	t.Helper()
	var elapsed time.Duration
	for c.Animating() {
		require.Less(t, elapsed, 5*time.Second, "controller did not settle")
		c.Frame(frame)
		elapsed += frame
	}
}

func TestNew_RequiresThemeSignal(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrNoThemeSignal))

	_, err = NewFromContext(context.Background())
	assert.True(t, errors.Is(err, theme.ErrNoThemeSignal))

	ctx := theme.WithSignal(context.Background(), theme.NewProvider())
	c, err := NewFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, DrawerClosed, c.Drawer())
}

func TestController_InitialState(t *testing.T) {
	c, _ := newController(t)
	out := c.Render()
	assert.Equal(t, DesktopExpanded, out.Variant)
	assert.Equal(t, 0, out.Active)
	assert.Equal(t, NoItem, out.Hovered)
	assert.False(t, out.DrawerVisible)
	assert.Equal(t, 260.0, out.Width)
	assert.Equal(t, -260.0, out.SlideOffset)
	assert.Equal(t, 0.0, out.BackdropOpacity)
	assert.Len(t, out.Items, 7)
}

func TestController_ResizeAnimatesWidth(t *testing.T) {
	c, _ := newController(t)
	c.Resize(900)
	assert.Equal(t, Layout{Desktop, Compact}, c.Layout())
	assert.True(t, c.Animating())

	c.Frame(frame)
	w := c.Render().Width
	assert.Less(t, w, 260.0)
	assert.Greater(t, w, 72.0)

	settle(t, c)
	assert.Equal(t, 72.0, c.Render().Width)
	assert.False(t, c.Render().ShowLabels)

	c.Resize(1200)
	settle(t, c)
	assert.Equal(t, 260.0, c.Render().Width)
	assert.True(t, c.Render().ShowLabels)
}

func TestController_ResizeToSameTargetDoesNotRestart(t *testing.T) {
	c, _ := newController(t)
	c.Resize(1200)
	assert.False(t, c.Animating(), "already at the expanded width")
	c.Resize(500)
	assert.False(t, c.Animating(), "mobile targets the expanded width too")
}

func TestController_ShowDrawerDesktopIgnored(t *testing.T) {
	c, _ := newController(t)
	c.Resize(1200)
	assert.False(t, c.ShowDrawer())
	assert.Equal(t, DrawerClosed, c.Drawer())
	assert.False(t, c.DrawerVisible())
}

func TestController_OpenSequence(t *testing.T) {
	rec := &recorder{}
	c, _ := newController(t, WithObserver(rec))
	c.Resize(500)

	require.True(t, c.ShowDrawer())
	assert.Equal(t, DrawerOpening, c.Drawer())
	assert.True(t, c.DrawerVisible())
	assert.Equal(t, -260.0, c.Render().SlideOffset)
	assert.Equal(t, 0.0, c.Render().BackdropOpacity)
	assert.True(t, c.Render().Interactive, "opening drawer takes taps immediately")
	assert.Equal(t, MobileOpen, c.Render().Variant)

	offset, opacity, _ := c.Interpolants()
	assert.False(t, offset.Animating(), "entrance waits for the next frame")
	c.Frame(frame)
	assert.Equal(t, 0.0, offset.Target())
	assert.Equal(t, 1.0, opacity.Target())

	settle(t, c)
	assert.Equal(t, DrawerOpen, c.Drawer())
	assert.Equal(t, 0.0, c.Render().SlideOffset)
	assert.Equal(t, 1.0, c.Render().BackdropOpacity)
	assert.Equal(t, []DrawerState{DrawerOpening, DrawerOpen}, rec.drawers)
}

func TestController_CloseSequence(t *testing.T) {
	c, _ := newController(t)
	c.Resize(500)
	c.ShowDrawer()
	settle(t, c)

	seq, ok := c.TapBackdrop()
	require.True(t, ok)
	assert.NotZero(t, seq)
	assert.Equal(t, DrawerClosing, c.Drawer())
	assert.True(t, c.DrawerVisible(), "visible until the exit settles")
	assert.False(t, c.Render().Interactive)

	_, ok = c.TapBackdrop()
	assert.False(t, ok, "closing drawer ignores taps")

	settle(t, c)
	assert.Equal(t, DrawerClosed, c.Drawer())
	assert.False(t, c.DrawerVisible())
	assert.Equal(t, -260.0, c.Render().SlideOffset)
	assert.Equal(t, 0.0, c.Render().BackdropOpacity)
	assert.Equal(t, MobileClosed, c.Render().Variant)
}

func TestController_TapBackdropWhileOpening(t *testing.T) {
	c, _ := newController(t)
	c.Resize(500)
	c.ShowDrawer()
	c.Frame(frame)
	c.Frame(frame)

	_, ok := c.TapBackdrop()
	require.True(t, ok)
	assert.Equal(t, DrawerClosing, c.Drawer())

	settle(t, c)
	assert.Equal(t, DrawerClosed, c.Drawer(), "superseded entrance never reaches open")
	assert.False(t, c.DrawerVisible())
}

func TestController_TapBackdropBeforeFirstFrame(t *testing.T) {
	c, _ := newController(t)
	c.Resize(500)
	c.ShowDrawer()
	_, ok := c.TapBackdrop()
	require.True(t, ok)

	settle(t, c)
	assert.Equal(t, DrawerClosed, c.Drawer())
	assert.Equal(t, -260.0, c.Render().SlideOffset)
}

func TestController_ShowWhileClosing(t *testing.T) {
	c, _ := newController(t)
	c.Resize(500)
	c.ShowDrawer()
	settle(t, c)
	c.TapBackdrop()
	c.Frame(frame)

	require.True(t, c.ShowDrawer())
	assert.Equal(t, DrawerOpening, c.Drawer())
	assert.Equal(t, -260.0, c.Render().SlideOffset, "reopening snaps to hidden")

	settle(t, c)
	assert.Equal(t, DrawerOpen, c.Drawer())
	assert.True(t, c.DrawerVisible())
}

func TestController_TapContentNeverCloses(t *testing.T) {
	c, _ := newController(t)
	c.Resize(500)
	assert.False(t, c.TapContent())
	c.ShowDrawer()
	settle(t, c)
	assert.True(t, c.TapContent())
	assert.Equal(t, DrawerOpen, c.Drawer())
}

func TestController_ExpireClose(t *testing.T) {
	rec := &recorder{}
	c, _ := newController(t, WithObserver(rec))
	c.Resize(500)
	c.ShowDrawer()
	settle(t, c)

	seq, _ := c.TapBackdrop()
	assert.False(t, c.ExpireClose(seq+1), "other episode")
	require.True(t, c.ExpireClose(seq))
	assert.Equal(t, DrawerClosed, c.Drawer())
	assert.False(t, c.DrawerVisible())
	assert.False(t, c.Animating())
	assert.Equal(t, []uint64{seq}, rec.expired)

	assert.False(t, c.ExpireClose(seq), "already settled")
}

func TestController_ExpireCloseStaleAfterReopen(t *testing.T) {
	c, _ := newController(t)
	c.Resize(500)
	c.ShowDrawer()
	settle(t, c)
	seq, _ := c.TapBackdrop()
	c.ShowDrawer()

	assert.False(t, c.ExpireClose(seq))
	assert.Equal(t, DrawerOpening, c.Drawer())
}

func TestController_LeavingMobileResetsDrawer(t *testing.T) {
	for _, name := range []string{"opening", "open", "closing"} {
		t.Run(name, func(t *testing.T) {
			c, _ := newController(t)
			c.Resize(500)
			c.ShowDrawer()
			switch name {
			case "open":
				settle(t, c)
			case "closing":
				settle(t, c)
				c.TapBackdrop()
			}

			c.Resize(900)
			assert.Equal(t, DrawerClosed, c.Drawer())
			assert.False(t, c.DrawerVisible())
			assert.Equal(t, -260.0, c.Render().SlideOffset)
			assert.Equal(t, 0.0, c.Render().BackdropOpacity)

			settle(t, c)
			assert.Equal(t, DrawerClosed, c.Drawer())
			assert.Equal(t, 72.0, c.Render().Width)
		})
	}
}

func TestController_SelectionAndHover(t *testing.T) {
	rec := &recorder{}
	c, _ := newController(t, WithObserver(rec))

	assert.True(t, c.HoverEnter(3))
	assert.True(t, c.Press(2))
	assert.Equal(t, Selection{Active: 2, Hovered: 3}, c.Selection(), "press leaves hover alone")

	assert.False(t, c.Press(7))
	assert.False(t, c.Press(-1))
	assert.False(t, c.HoverEnter(42))
	assert.Equal(t, Selection{Active: 2, Hovered: 3}, c.Selection())

	assert.False(t, c.HoverLeave(4), "only the hovered item clears")
	assert.Equal(t, 3, c.Selection().Hovered)
	assert.True(t, c.HoverLeave(3))
	assert.Equal(t, NoItem, c.Selection().Hovered)
	assert.Equal(t, 2, c.Selection().Active)

	c.Press(2)
	assert.Equal(t, []int{2}, rec.selected, "re-pressing the active item is not a change")
}

func TestController_ItemViews(t *testing.T) {
	c, _ := newController(t)
	c.HoverEnter(4)
	items := c.Render().Items

	assert.True(t, items[0].Accent)
	assert.Equal(t, "home-sharp", items[0].Icon)
	assert.True(t, items[4].Accent)
	assert.Equal(t, "people", items[4].Icon)
	assert.False(t, items[1].Accent)
	assert.Equal(t, "stats-chart-outline", items[1].Icon)

	assert.False(t, items[0].ShowBadge, "Home has no badge")
	assert.True(t, items[5].ShowBadge)
	assert.Equal(t, 2, items[5].Badge)
}

func TestController_ToggleThemeParity(t *testing.T) {
	rec := &recorder{}
	c, p := newController(t, WithObserver(rec))
	p.SetSystem(theme.Dark)
	require.True(t, c.Render().Dark)

	for i := 1; i <= 5; i++ {
		c.ToggleTheme()
		assert.Equal(t, i%2 == 0, c.Render().Dark, "after %d toggles", i)
	}
	assert.Equal(t, []bool{false, true, false, true, false}, rec.themes)
}

func TestController_Unmount(t *testing.T) {
	rec := &recorder{}
	c, _ := newController(t, WithObserver(rec))
	c.Resize(500)
	c.Press(3)
	c.HoverEnter(1)
	c.ShowDrawer()
	c.Frame(frame)

	c.Unmount()
	assert.False(t, c.Animating())
	assert.Equal(t, DrawerClosed, c.Drawer())
	assert.False(t, c.DrawerVisible())
	assert.Equal(t, Selection{Active: 0, Hovered: NoItem}, c.Selection())
	assert.Equal(t, DesktopExpanded, c.Render().Variant)
	assert.Equal(t, []DrawerState{DrawerOpening, DrawerClosed}, rec.drawers)

	// Nothing left to report on a second unmount.
	c.Unmount()
	assert.Equal(t, []DrawerState{DrawerOpening, DrawerClosed}, rec.drawers)
}

func TestController_EndToEnd(t *testing.T) {
	rec := &recorder{}
	c, _ := newController(t, WithObserver(rec))

	c.Resize(1200)
	settle(t, c)
	out := c.Render()
	assert.Equal(t, DesktopExpanded, out.Variant)
	assert.Equal(t, 260.0, out.Width)

	c.Resize(900)
	settle(t, c)
	out = c.Render()
	assert.Equal(t, DesktopCompact, out.Variant)
	assert.Equal(t, 72.0, out.Width)

	c.Resize(500)
	settle(t, c)
	out = c.Render()
	assert.Equal(t, MobileClosed, out.Variant)
	assert.True(t, out.ShowLabels)
	assert.Equal(t, 260.0, out.Width)

	c.ShowDrawer()
	settle(t, c)
	assert.Equal(t, DrawerOpen, c.Drawer())
	assert.Equal(t, 0.0, c.Render().SlideOffset)
	assert.Equal(t, 1.0, c.Render().BackdropOpacity)

	c.TapBackdrop()
	settle(t, c)
	out = c.Render()
	assert.Equal(t, DrawerClosed, out.Drawer)
	assert.False(t, out.DrawerVisible)
	assert.Equal(t, -260.0, out.SlideOffset)
	assert.Equal(t, 0.0, out.BackdropOpacity)

	assert.Equal(t, []Layout{{Desktop, Compact}, {Mobile, Expanded}}, rec.layouts)
	assert.Equal(t, []DrawerState{DrawerOpening, DrawerOpen, DrawerClosing, DrawerClosed}, rec.drawers)
}
