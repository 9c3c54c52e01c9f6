package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/dashshell/config"
	"github.com/kastheco/dashshell/config/journal"
	"github.com/kastheco/dashshell/log"
	"github.com/kastheco/dashshell/sidebar"
	"github.com/kastheco/dashshell/theme"
	"github.com/kastheco/dashshell/ui"
	"github.com/kastheco/dashshell/ui/overlay"
	zone "github.com/lrstanley/bubblezone"
)

// Options carries what Run needs beyond the config.
type Options struct {
	// Theme is the process-wide theme provider. Required.
	Theme *theme.Provider
	// Journal receives interaction events. Nil means no journal.
	Journal journal.Logger
	// Session tags every journal event from this run.
	Session string
	// JournalErr is why the journal could not be opened, if it failed. It
	// is shown as an error toast on startup.
	JournalErr error
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	m, err := newHome(ctx, cfg, opts)
	if err != nil {
		return err
	}

	// Set the terminal's default background to the palette background so
	// unstyled cells match the theme.
	restore := ui.SetTerminalBackground(m.palette)
	defer restore()

	zone.NewGlobal()
	m.journal.Emit(journal.NewEvent(journal.EventSessionStarted, m.session, "dashboard started"))
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Full mouse tracking for hover + click
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	m.sidebar.Unmount()
	m.journal.Emit(journal.NewEvent(journal.EventSessionEnded, m.session, "dashboard stopped"))
	return err
}

// frameMsg advances every running animation by the time since the last
// frame. A zero at steps exactly one frame interval.
type frameMsg struct {
	at time.Time
}

// maxFrameSteps caps how far a single late frame may advance the
// animations, in frame intervals.
const maxFrameSteps = 4

// closeWatchdogMsg fires close_timeout after a backdrop tap. If the drawer
// is still in the same Closing episode it is forced closed.
type closeWatchdogMsg struct {
	seq uint64
}

type home struct {
	ctx context.Context
	cfg *config.Config

	// -- Sidebar state --

	// sidebar owns layout, drawer and selection state.
	sidebar *sidebar.Controller
	// theme is the signal the sidebar toggles.
	theme   *theme.Provider
	metrics ui.Metrics
	// frameInterval is both the tick period and the dt each frame steps.
	frameInterval time.Duration
	// framing is true while a frame tick is in flight.
	framing bool
	// lastFrame is when the running frame streak last stepped. Zero while
	// idle.
	lastFrame time.Time

	// -- Journal --

	journal journal.Logger
	session string

	// -- UI Components --

	sidebarView *ui.Sidebar
	content     *ui.ContentPane
	statusBar   *ui.StatusBar
	menu        *ui.Menu
	toasts      *overlay.ToastManager

	palette ui.Palette
	dark    bool

	termWidth  int
	termHeight int
}

func newHome(ctx context.Context, cfg *config.Config, opts Options) (*home, error) {
	if opts.Theme == nil {
		return nil, fmt.Errorf("app: %w", theme.ErrNoThemeSignal)
	}
	if opts.Journal == nil {
		opts.Journal = journal.NopLogger()
	}

	m := &home{
		ctx:           ctx,
		cfg:           cfg,
		theme:         opts.Theme,
		metrics:       ui.Metrics{PointsPerCell: cfg.Layout.PointsPerCell, PointsPerRow: cfg.Layout.PointsPerRow},
		frameInterval: cfg.Animation.FrameInterval(),
		journal:       opts.Journal,
		session:       opts.Session,
		sidebarView:   ui.NewSidebar(profileFromConfig(cfg.Profile)),
		content:       ui.NewContentPane(),
		statusBar:     ui.NewStatusBar(),
		menu:          ui.NewMenu(),
	}

	ctrl, err := sidebar.NewFromContext(
		theme.WithSignal(ctx, opts.Theme),
		sidebar.WithTokens(SidebarTokens(cfg.Layout)),
		sidebar.WithMotion(motionFromConfig(cfg.Animation)),
		sidebar.WithObserver(&journalObserver{journal: m.journal, session: m.session, theme: opts.Theme}),
	)
	if err != nil {
		return nil, err
	}
	m.sidebar = ctrl
	m.sidebarView.SetHeaderRows(m.metrics.Rows(ctrl.Tokens().HeaderHeight))

	m.dark = opts.Theme.IsDark()
	m.palette = ui.PaletteFor(m.dark)
	m.toasts = overlay.NewToastManager(m.palette.ToastPalette())
	m.applyPalette()
	if opts.JournalErr != nil {
		m.toasts.Error("Journal disabled: " + opts.JournalErr.Error())
	}
	return m, nil
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.syncTheme()
	return model, tea.Batch(cmd, m.frameCmd())
}

func (m *home) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.framing = false
		dt := m.frameStep(msg.at)
		m.sidebar.Frame(dt)
		m.toasts.Step(dt)
		return m, nil
	case closeWatchdogMsg:
		if m.sidebar.ExpireClose(msg.seq) {
			m.toasts.Warning("Drawer close timed out")
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// updateHandleWindowSizeEvent converts the terminal size to layout points
// and hands it to the sidebar.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.termWidth = msg.Width
	m.termHeight = msg.Height
	m.statusBar.SetSize(msg.Width)
	m.menu.SetSize(msg.Width)
	m.toasts.SetSize(msg.Width, msg.Height)
	m.sidebar.Resize(m.metrics.Points(msg.Width))
}

// frameCmd schedules the next frame while anything animates. Only one
// tick is ever in flight.
func (m *home) frameCmd() tea.Cmd {
	if m.framing {
		return nil
	}
	if !m.sidebar.Animating() && !m.toasts.HasActiveToasts() {
		m.lastFrame = time.Time{}
		return nil
	}
	m.framing = true
	if m.lastFrame.IsZero() {
		m.lastFrame = time.Now()
	}
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

// frameStep is the wall time elapsed since the previous frame, so the
// animations keep real time when ticks arrive late. A late frame advances
// at most maxFrameSteps intervals.
func (m *home) frameStep(at time.Time) time.Duration {
	if at.IsZero() {
		return m.frameInterval
	}
	prev := m.lastFrame
	m.lastFrame = at
	dt := at.Sub(prev)
	if prev.IsZero() || dt <= 0 {
		return m.frameInterval
	}
	return min(dt, maxFrameSteps*m.frameInterval)
}

// watchdogCmd arms the close watchdog for the Closing episode seq.
func (m *home) watchdogCmd(seq uint64) tea.Cmd {
	return tea.Tick(m.cfg.Animation.CloseTimeout(), func(time.Time) tea.Msg {
		return closeWatchdogMsg{seq: seq}
	})
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	log.InfoLog.Printf("quit requested")
	return m, tea.Quit
}

func (m *home) View() string {
	if m.termWidth <= 0 || m.termHeight <= 0 {
		return ""
	}
	out := m.sidebar.Render()
	m.syncChrome(out)

	contentHeight := max(1, m.termHeight-1-m.menu.Height())
	body := m.renderBody(out, contentHeight)

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.statusBar.String(),
		m.menu.String(),
	)

	result := mainView
	if toastView := m.toasts.View(); toastView != "" {
		x, y := m.toasts.GetPosition()
		result = overlay.PlaceOverlay(x, y, toastView, result)
	}

	// Process bubblezone markers before rendering is complete
	// (zone markers inflate lipgloss.Width if left in place).
	result = zone.Scan(result)

	// Height-fill so the alt-screen renderer never keeps stale rows.
	return ui.FillBackground(result, m.termWidth, m.termHeight, m.palette.Background)
}
