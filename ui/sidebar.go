package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/dashshell/sidebar"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

// Profile fills the footer of the sidebar.
type Profile struct {
	Name          string
	Role          string
	StorageUsedGB float64
	StorageCapGB  float64
}

// Initials returns up to two upper-case initials for the avatar.
func (p Profile) Initials() string {
	var initials []rune
	for _, word := range strings.Fields(p.Name) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "?"
	}
	return string(initials)
}

// StorageFraction is used/cap clamped to [0, 1].
func (p Profile) StorageFraction() float64 {
	if p.StorageCapGB <= 0 {
		return 0
	}
	return min(1, max(0, p.StorageUsedGB/p.StorageCapGB))
}

// Sidebar renders the navigation column, both as the desktop rail and as
// the mobile drawer panel.
type Sidebar struct {
	width, height int
	headerRows    int
	palette       Palette
	profile       Profile
}

// NewSidebar creates a sidebar renderer with the light palette.
func NewSidebar(profile Profile) *Sidebar {
	return &Sidebar{palette: LightPalette, profile: profile, headerRows: 4}
}

// SetSize sets the rendered size in cells. The width includes the right
// border column.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetHeaderRows sets how many rows the logo block spans.
func (s *Sidebar) SetHeaderRows(rows int) {
	s.headerRows = max(1, rows)
}

func (s *Sidebar) SetPalette(p Palette) {
	s.palette = p
}

// Render draws the sidebar for out. Labels follow out.ShowLabels.
func (s *Sidebar) Render(out sidebar.RenderOutput) string {
	if s.width < 2 || s.height < 1 {
		return ""
	}
	inner := s.width - 1
	p := s.palette
	labels := out.ShowLabels

	fit := func(line string) string {
		return fitLine(line, inner, p.Surface)
	}

	top := s.header(labels, fit)
	top = append(top, fit(""))
	for _, item := range out.Items {
		top = append(top, zone.Mark(MenuItemZoneID(item.Index), fit(s.menuItem(item, labels))))
	}

	bottom := s.footer(out.Dark, labels, fit)

	lines := top
	if gap := s.height - len(top) - len(bottom); gap > 0 {
		for range gap {
			lines = append(lines, fit(""))
		}
	}
	lines = append(lines, bottom...)
	if len(lines) > s.height {
		lines = lines[:s.height]
	}

	border := lipgloss.NewStyle().Foreground(p.Border).Background(p.Surface).Render("│")
	for i := range lines {
		lines[i] += border
	}
	return strings.Join(lines, "\n")
}

func (s *Sidebar) header(labels bool, fit func(string) string) []string {
	p := s.palette
	logo := lipgloss.NewStyle().
		Background(p.PrimaryLight).
		Foreground(p.Primary).
		Render(" " + Icon("moon"))
	line := " " + logo
	if labels {
		line += lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Surface).Render("  " + AppTitle)
	}

	rows := make([]string, 0, s.headerRows)
	mid := (s.headerRows - 1) / 2
	for i := 0; i < s.headerRows-1; i++ {
		if i == mid {
			rows = append(rows, fit(line))
			continue
		}
		rows = append(rows, fit(""))
	}
	if s.headerRows == 1 {
		rows = append(rows, fit(line))
		return rows
	}
	return append(rows, s.divider())
}

func (s *Sidebar) divider() string {
	return lipgloss.NewStyle().
		Foreground(s.palette.Border).
		Background(s.palette.Surface).
		Render(strings.Repeat("─", s.width-1))
}

var badgeBase = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))

func (s *Sidebar) menuItem(item sidebar.ItemView, labels bool) string {
	p := s.palette
	fg, bg := p.TextSecondary, p.Surface
	switch {
	case item.Active:
		fg, bg = p.Primary, p.PrimaryLight
	case item.Hovered:
		fg = p.Primary
	}
	style := lipgloss.NewStyle().Foreground(fg).Background(bg)

	var badge string
	if item.ShowBadge {
		badge = badgeBase.Background(p.Error).Render(" " + strconv.Itoa(item.Badge) + " ")
	}

	if !labels {
		// Compact rail: centred icon, badge tucked against it.
		icon := style.Render(Icon(item.Icon))
		pad := max(0, (s.width-1-IconWidth)/2)
		return strings.Repeat(" ", pad) + icon + badge
	}

	// Labels are clipped on their own so the badge stays visible while the
	// width animates.
	avail := s.width - 1 - 1 - IconWidth - 3 - lipgloss.Width(badge)
	label := truncate.StringWithTail(item.Label, uint(max(0, avail)), "…")
	if item.Accent {
		style = style.Bold(true)
	}
	line := " " + style.Render(" "+Icon(item.Icon)+" "+label+" ")
	if badge != "" {
		gap := s.width - 1 - lipgloss.Width(line) - lipgloss.Width(badge) - 1
		if gap > 0 {
			line += strings.Repeat(" ", gap)
		}
		line += badge
	}
	return line
}

// ThemeSwitch renders the sun/moon toggle. The knob sits left in light mode
// and right in dark mode.
func ThemeSwitch(p Palette, dark bool) string {
	track := lipgloss.NewStyle().Background(p.Border)
	if dark {
		knob := lipgloss.NewStyle().Foreground(p.Text).Background(p.Primary).Render(Icon("moon"))
		return track.Render("  ") + knob
	}
	knob := lipgloss.NewStyle().Foreground(p.Sun).Background(p.PrimaryLight).Render(Icon("sunny"))
	return knob + track.Render("  ")
}

func themeLabel(dark bool) string {
	if dark {
		return "Dark Mode"
	}
	return "Light Mode"
}

func (s *Sidebar) footer(dark, labels bool, fit func(string) string) []string {
	p := s.palette
	rows := []string{s.divider()}

	themeLine := " " + ThemeSwitch(p, dark)
	if labels {
		themeLine += lipgloss.NewStyle().Foreground(p.TextSecondary).Background(p.Surface).Render("  " + themeLabel(dark))
	}
	rows = append(rows, zone.Mark(ZoneThemeSwitch, fit(themeLine)), fit(""))

	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Primary).
		Render(" " + s.profile.Initials() + " ")
	status := lipgloss.NewStyle().Foreground(p.Success).Background(p.Surface).Render("●")
	if !labels {
		return append(rows, fit(" "+avatar+status))
	}
	name := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Surface).Render(s.profile.Name)
	role := lipgloss.NewStyle().Foreground(p.TextSecondary).Background(p.Surface).Render(s.profile.Role)
	rows = append(rows,
		fit(" "+avatar+status+" "+name),
		fit(strings.Repeat(" ", lipgloss.Width(avatar)+3)+role),
		fit(""),
	)
	return append(rows, s.storage(fit)...)
}

func (s *Sidebar) storage(fit func(string) string) []string {
	p := s.palette
	accent := lipgloss.NewStyle().Foreground(p.Primary).Background(p.Surface)
	title := accent.Render(Icon("cloud-outline")) +
		lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface).Render(" Storage")
	upgrade := accent.Bold(true).Render("Upgrade")
	gap := max(1, s.width-1-2-lipgloss.Width(title)-lipgloss.Width(upgrade)-1)
	header := " " + title + strings.Repeat(" ", gap) + upgrade

	barWidth := max(1, s.width-1-2-1)
	filled := int(float64(barWidth)*s.profile.StorageFraction() + 0.5)
	bar := accent.Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(p.Border).Background(p.Surface).Render(strings.Repeat("░", barWidth-filled))

	info := lipgloss.NewStyle().Foreground(p.TextSecondary).Background(p.Surface).
		Render(fmt.Sprintf("%s GB of %s GB used", formatGB(s.profile.StorageUsedGB), formatGB(s.profile.StorageCapGB)))

	return []string{fit(header), fit(" " + bar), fit(" " + info)}
}

func formatGB(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
