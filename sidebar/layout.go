package sidebar

// LayoutMode is the rendering branch picked from the viewport width.
type LayoutMode int

const (
	Desktop LayoutMode = iota
	Mobile
)

func (m LayoutMode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Expansion says whether the sidebar shows labels or icons only.
type Expansion int

const (
	Expanded Expansion = iota
	Compact
)

func (e Expansion) String() string {
	if e == Compact {
		return "compact"
	}
	return "expanded"
}

// Layout is the resolved pair.
type Layout struct {
	Mode      LayoutMode
	Expansion Expansion
}

func (l Layout) String() string {
	return l.Mode.String() + "/" + l.Expansion.String()
}

// Resolve derives the layout from a viewport width. Below the breakpoint is
// mobile, and mobile always renders expanded. On desktop the expanded
// threshold is inclusive.
func Resolve(width float64, t Tokens) Layout {
	if width < t.Breakpoint {
		return Layout{Mode: Mobile, Expansion: Expanded}
	}
	if width >= t.ExpandedThreshold {
		return Layout{Mode: Desktop, Expansion: Expanded}
	}
	return Layout{Mode: Desktop, Expansion: Compact}
}

// TargetWidth is the sidebar width the layout settles at.
func (l Layout) TargetWidth(t Tokens) float64 {
	if l.Expansion == Compact {
		return t.CompactWidth
	}
	return t.ExpandedWidth
}
