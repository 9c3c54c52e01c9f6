package sidebar

// NoItem marks the absence of a hovered item.
const NoItem = -1

// MenuItem is one navigation entry. Badge is nil when the item has none.
type MenuItem struct {
	Icon       string
	ActiveIcon string
	Label      string
	Badge      *int
}

func badge(n int) *int { return &n }

// DefaultMenu returns the dashboard's seven navigation entries.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Icon: "home-outline", ActiveIcon: "home-sharp", Label: "Home"},
		{Icon: "stats-chart-outline", ActiveIcon: "stats-chart", Label: "Analytics"},
		{Icon: "card-outline", ActiveIcon: "card", Label: "Cards"},
		{Icon: "paper-plane-outline", ActiveIcon: "paper-plane", Label: "Send"},
		{Icon: "people-outline", ActiveIcon: "people", Label: "Users"},
		{Icon: "folder-outline", ActiveIcon: "folder", Label: "Files", Badge: badge(2)},
		{Icon: "settings-outline", ActiveIcon: "settings-sharp", Label: "Settings"},
	}
}

// BadgeVisible reports whether a badge should render: only a present,
// non-zero count does.
func (m MenuItem) BadgeVisible() bool {
	return m.Badge != nil && *m.Badge != 0
}

// Selection tracks which item is active and which one the pointer is over.
type Selection struct {
	Active  int
	Hovered int
}

func newSelection() Selection {
	return Selection{Active: 0, Hovered: NoItem}
}

// ItemView is the resolved visual variant of one menu item.
type ItemView struct {
	Index     int
	Label     string
	Icon      string
	Active    bool
	Hovered   bool
	Accent    bool
	Badge     int
	ShowBadge bool
}

func resolveItem(idx int, item MenuItem, sel Selection) ItemView {
	v := ItemView{
		Index:   idx,
		Label:   item.Label,
		Icon:    item.Icon,
		Active:  sel.Active == idx,
		Hovered: sel.Hovered == idx,
	}
	v.Accent = v.Active || v.Hovered
	if v.Accent && item.ActiveIcon != "" {
		v.Icon = item.ActiveIcon
	}
	if item.BadgeVisible() {
		v.Badge = *item.Badge
		v.ShowBadge = true
	}
	return v
}
