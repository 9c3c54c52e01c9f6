package sidebar

// Variant is the rendering branch the view has to draw.
type Variant int

const (
	DesktopExpanded Variant = iota
	DesktopCompact
	MobileClosed
	MobileOpen
)

func (v Variant) String() string {
	switch v {
	case DesktopCompact:
		return "desktop-compact"
	case MobileClosed:
		return "mobile-closed"
	case MobileOpen:
		return "mobile-open"
	}
	return "desktop-expanded"
}

// RenderOutput is everything the view needs for one frame.
type RenderOutput struct {
	Variant Variant
	Layout  Layout
	Drawer  DrawerState
	// DrawerVisible is true while the drawer overlay is mounted.
	DrawerVisible bool
	// Interactive is true while the backdrop and drawer content take taps.
	Interactive bool

	Width           float64
	SlideOffset     float64
	BackdropOpacity float64

	ShowLabels bool
	Dark       bool

	Items   []ItemView
	Active  int
	Hovered int
}

// Render snapshots the controller for the view.
func (c *Controller) Render() RenderOutput {
	out := RenderOutput{
		Layout:          c.layout,
		Drawer:          c.drawer,
		DrawerVisible:   c.visible,
		Interactive:     c.drawer.Interactive(),
		Width:           c.size.Value(),
		SlideOffset:     c.offset.Value(),
		BackdropOpacity: c.opacity.Value(),
		Dark:            c.theme.IsDark(),
		Active:          c.selection.Active,
		Hovered:         c.selection.Hovered,
	}
	switch {
	case c.layout.Mode == Mobile && c.visible:
		out.Variant = MobileOpen
	case c.layout.Mode == Mobile:
		out.Variant = MobileClosed
	case c.layout.Expansion == Compact:
		out.Variant = DesktopCompact
	default:
		out.Variant = DesktopExpanded
	}
	// The drawer always renders expanded, so labels show in every branch
	// except the compact rail.
	out.ShowLabels = out.Variant != DesktopCompact

	out.Items = make([]ItemView, len(c.menu))
	for i, item := range c.menu {
		out.Items[i] = resolveItem(i, item, c.selection)
	}
	return out
}
