package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kastheco/dashshell/config"
	zone "github.com/lrstanley/bubblezone"
)

// maxSnapshotFrames bounds how long Snapshot waits for animations to settle.
const maxSnapshotFrames = 600

// Snapshot renders one settled frame at width x height cells without
// taking over the terminal. With openDrawer set, the drawer is shown first
// (it only opens in mobile layout).
func Snapshot(ctx context.Context, cfg *config.Config, opts Options, width, height int, openDrawer bool) (string, error) {
	m, err := newHome(ctx, cfg, opts)
	if err != nil {
		return "", err
	}
	zone.NewGlobal()

	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	if openDrawer {
		m.sidebar.ShowDrawer()
	}
	m.settle()
	view := m.View()
	m.sidebar.Unmount()
	return view, nil
}

// settle runs frames until nothing animates.
func (m *home) settle() {
	for i := 0; i < maxSnapshotFrames && m.sidebar.Animating(); i++ {
		m.sidebar.Frame(m.frameInterval)
	}
}
