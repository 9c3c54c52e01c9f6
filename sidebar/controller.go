// Package sidebar is the dashboard's navigation controller: it derives the
// layout from the viewport width, runs the mobile drawer's open/close
// sequence, animates the desktop width, and tracks menu selection and hover.
//
// The controller is purely reactive. Every method is an input event and
// must be called from the one goroutine that owns the controller (the
// bubbletea Update loop). Time only moves when Frame is called.
package sidebar

import (
	"context"
	"fmt"
	"time"

	"github.com/kastheco/dashshell/anim"
	"github.com/kastheco/dashshell/theme"
)

// Observer is told about state changes as they happen.
type Observer interface {
	LayoutChanged(from, to Layout, width float64)
	DrawerChanged(from, to DrawerState)
	ItemSelected(from, to int)
	ThemeToggled(dark bool)
	CloseExpired(seq uint64)
}

type nopObserver struct{}

func (nopObserver) LayoutChanged(Layout, Layout, float64) {}
func (nopObserver) DrawerChanged(DrawerState, DrawerState) {}
func (nopObserver) ItemSelected(int, int)                  {}
func (nopObserver) ThemeToggled(bool)                      {}
func (nopObserver) CloseExpired(uint64)                    {}

// Option configures a Controller.
type Option func(*Controller)

// WithTokens overrides the default geometry.
func WithTokens(t Tokens) Option {
	return func(c *Controller) { c.tokens = t }
}

// WithMotion overrides the default curves.
func WithMotion(m Motion) Option {
	return func(c *Controller) { c.motion = m }
}

// WithMenu replaces the navigation entries.
func WithMenu(items []MenuItem) Option {
	return func(c *Controller) { c.menu = append([]MenuItem(nil), items...) }
}

// WithObserver registers an observer. nil is ignored.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

// Controller owns all sidebar state.
type Controller struct {
	tokens   Tokens
	motion   Motion
	menu     []MenuItem
	theme    theme.Signal
	observer Observer

	width  float64
	layout Layout

	drawer  DrawerState
	visible bool
	// openSeq and closeSeq number each Opening and Closing episode so late
	// callbacks from an earlier episode are recognised and dropped.
	openSeq  uint64
	closeSeq uint64

	selection Selection

	offset  *anim.Interpolant
	opacity *anim.Interpolant
	size    *anim.Interpolant

	// nextFrame holds actions deferred to the start of the next Frame.
	nextFrame []func()
}

// New builds a controller. signal is required: a controller without a
// theme signal is a programming error and yields theme.ErrNoThemeSignal.
func New(signal theme.Signal, opts ...Option) (*Controller, error) {
	if signal == nil {
		return nil, fmt.Errorf("sidebar: %w", theme.ErrNoThemeSignal)
	}
	c := &Controller{
		tokens:   DefaultTokens(),
		motion:   DefaultMotion(),
		menu:     DefaultMenu(),
		theme:    signal,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.mount()
	return c, nil
}

// NewFromContext is New with the theme signal taken from ctx.
func NewFromContext(ctx context.Context, opts ...Option) (*Controller, error) {
	signal, err := theme.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("sidebar: %w", err)
	}
	return New(signal, opts...)
}

func (c *Controller) mount() {
	c.width = 0
	c.layout = Layout{Mode: Desktop, Expansion: Expanded}
	c.drawer = DrawerClosed
	c.visible = false
	c.selection = newSelection()
	c.nextFrame = nil
	c.offset = anim.New("offset", c.tokens.HiddenOffset(), anim.DriverCompositor)
	c.opacity = anim.New("opacity", 0, anim.DriverCompositor)
	c.size = anim.New("width", c.tokens.ExpandedWidth, anim.DriverLayout)
}

// Unmount cancels every animation and puts all state back to its defaults.
// A drawer that is still showing is reset first, so the observer sees it
// close.
func (c *Controller) Unmount() {
	c.offset.Cancel()
	c.opacity.Cancel()
	c.size.Cancel()
	c.transition(DrawerReset)
	c.mount()
}

// Layout returns the current resolved layout.
func (c *Controller) Layout() Layout { return c.layout }

// Drawer returns the current drawer state.
func (c *Controller) Drawer() DrawerState { return c.drawer }

// DrawerVisible is the visibility flag: true from the show request until
// the close sequence settles.
func (c *Controller) DrawerVisible() bool { return c.visible }

// Selection returns the active and hovered indices.
func (c *Controller) Selection() Selection { return c.selection }

// Menu returns the navigation entries.
func (c *Controller) Menu() []MenuItem { return c.menu }

// Tokens returns the geometry in use.
func (c *Controller) Tokens() Tokens { return c.tokens }

// Width returns the last viewport width seen.
func (c *Controller) Width() float64 { return c.width }

// Interpolants exposes the three animated values: slide offset, backdrop
// opacity and sidebar width.
func (c *Controller) Interpolants() (offset, opacity, width *anim.Interpolant) {
	return c.offset, c.opacity, c.size
}

// Resize re-resolves the layout for a new viewport width and springs the
// sidebar width toward the layout's target. Leaving mobile shuts the
// drawer without animation.
func (c *Controller) Resize(width float64) {
	prev := c.layout
	c.width = width
	c.layout = Resolve(width, c.tokens)

	target := c.layout.TargetWidth(c.tokens)
	if c.size.Target() != target || (!c.size.Animating() && c.size.Value() != target) {
		c.size.AnimateTo(target, c.motion.WidthSpring, nil)
	}

	if prev.Mode == Mobile && c.layout.Mode == Desktop && (c.drawer != DrawerClosed || c.visible) {
		c.resetDrawer()
	}
	if prev != c.layout {
		c.observer.LayoutChanged(prev, c.layout, width)
	}
}

// ShowDrawer is the hamburger press. It only applies in mobile layout and
// from Closed or Closing. The drawer is snapped to its hidden position,
// made visible, and its entrance animations start on the next frame.
func (c *Controller) ShowDrawer() bool {
	if c.layout.Mode != Mobile {
		return false
	}
	if !c.transition(DrawerShow) {
		return false
	}
	// Set cancels any exit animation still in flight.
	c.offset.Set(c.tokens.HiddenOffset())
	c.opacity.Set(0)
	c.visible = true

	c.openSeq++
	seq := c.openSeq
	c.nextFrame = append(c.nextFrame, func() {
		if c.drawer != DrawerOpening || c.openSeq != seq {
			return
		}
		done := anim.Parallel(2, func(finished bool) {
			if finished && c.drawer == DrawerOpening && c.openSeq == seq {
				c.transition(DrawerOpeningSettled)
			}
		})
		c.offset.AnimateTo(0, c.motion.DrawerSpring, done[0])
		c.opacity.AnimateTo(1, anim.Timing{Duration: c.motion.FadeIn}, done[1])
	})
	return true
}

// TapBackdrop starts the close sequence. It returns the episode number to
// arm the close watchdog with, and false when the tap did nothing.
func (c *Controller) TapBackdrop() (uint64, bool) {
	if !c.drawer.Interactive() {
		return 0, false
	}
	if !c.transition(DrawerBackdropTap) {
		return 0, false
	}
	c.closeSeq++
	seq := c.closeSeq
	done := anim.Parallel(2, func(finished bool) {
		if finished && c.drawer == DrawerClosing && c.closeSeq == seq {
			c.settleClosed()
		}
	})
	c.offset.AnimateTo(c.tokens.HiddenOffset(), c.motion.DrawerSpring, done[0])
	c.opacity.AnimateTo(0, anim.Timing{Duration: c.motion.FadeOut}, done[1])
	return seq, true
}

// TapContent is a tap inside the drawer. It never reaches the backdrop and
// never closes the drawer. It reports whether the drawer was interactive.
func (c *Controller) TapContent() bool {
	return c.drawer.Interactive()
}

// ExpireClose is the close watchdog. If the Closing episode seq is still in
// progress, the exit animations are abandoned and the drawer settles shut.
func (c *Controller) ExpireClose(seq uint64) bool {
	if c.drawer != DrawerClosing || c.closeSeq != seq {
		return false
	}
	c.observer.CloseExpired(seq)
	c.settleClosed()
	return true
}

func (c *Controller) settleClosed() {
	c.transition(DrawerClosingSettled)
	c.offset.Set(c.tokens.HiddenOffset())
	c.opacity.Set(0)
	c.visible = false
}

func (c *Controller) resetDrawer() {
	c.transition(DrawerReset)
	c.offset.Set(c.tokens.HiddenOffset())
	c.opacity.Set(0)
	c.visible = false
}

// transition applies event and notifies the observer. Invalid events are
// dropped and reported as false.
func (c *Controller) transition(event DrawerEvent) bool {
	next, err := ApplyDrawerEvent(c.drawer, event)
	if err != nil {
		return false
	}
	prev := c.drawer
	c.drawer = next
	if prev != next {
		c.observer.DrawerChanged(prev, next)
	}
	return true
}

// Press makes item idx the active one. Out-of-range indices are ignored.
func (c *Controller) Press(idx int) bool {
	if idx < 0 || idx >= len(c.menu) {
		return false
	}
	prev := c.selection.Active
	c.selection.Active = idx
	if prev != idx {
		c.observer.ItemSelected(prev, idx)
	}
	return true
}

// HoverEnter marks idx as hovered. Out-of-range indices are ignored.
func (c *Controller) HoverEnter(idx int) bool {
	if idx < 0 || idx >= len(c.menu) {
		return false
	}
	c.selection.Hovered = idx
	return true
}

// HoverLeave clears the hover if idx is the hovered item.
func (c *Controller) HoverLeave(idx int) bool {
	if c.selection.Hovered != idx || idx == NoItem {
		return false
	}
	c.selection.Hovered = NoItem
	return true
}

// ToggleTheme flips the theme signal.
func (c *Controller) ToggleTheme() {
	c.theme.Toggle()
	c.observer.ThemeToggled(c.theme.IsDark())
}

// Frame advances time by dt. Actions deferred to this frame run first,
// then every interpolant steps. Completion callbacks fire from here.
// It reports whether another frame is needed.
func (c *Controller) Frame(dt time.Duration) bool {
	if len(c.nextFrame) > 0 {
		pending := c.nextFrame
		c.nextFrame = nil
		for _, fn := range pending {
			fn()
		}
	}
	c.size.Step(dt)
	c.offset.Step(dt)
	c.opacity.Step(dt)
	return c.Animating()
}

// Animating reports whether frames are still needed.
func (c *Controller) Animating() bool {
	return len(c.nextFrame) > 0 || c.size.Animating() || c.offset.Animating() || c.opacity.Animating()
}
