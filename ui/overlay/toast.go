package overlay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/dashshell/anim"
	"github.com/mattn/go-runewidth"
)

// ToastType identifies the kind of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
)

// AnimPhase represents the current animation phase of a toast.
type AnimPhase int

const (
	PhaseSlidingIn AnimPhase = iota
	PhaseVisible
	PhaseSlidingOut
	PhaseDone
)

// Animation and display constants.
const (
	SlideInDuration  = 300 * time.Millisecond
	SlideOutDuration = 200 * time.Millisecond

	InfoDismissAfter    = 2 * time.Second
	WarningDismissAfter = 4 * time.Second
	ErrorDismissAfter   = 5 * time.Second

	MinToastWidth = 20
	MaxToastWidth = 48
	MaxToasts     = 3
)

// toast represents a single toast notification.
type toast struct {
	ID      string
	Type    ToastType
	Message string
	Phase   AnimPhase
	// held counts time spent visible.
	held     time.Duration
	Duration time.Duration
	Width    int
	// slide runs from 1 (off screen to the right) to 0 (in place).
	slide *anim.Interpolant
}

// calcToastWidth computes the appropriate width for a toast based on its
// message content. The width includes border (2) + padding (2) + icon (1) + space (1).
func calcToastWidth(msg string) int {
	contentWidth := 1 + 1 + runewidth.StringWidth(msg) + 4
	return min(MaxToastWidth, max(MinToastWidth, contentWidth))
}

// ToastManager manages the collection of active toast notifications. Time
// is pushed in through Step, the same frames that drive the sidebar.
type ToastManager struct {
	toasts  []*toast
	nextID  int
	palette Palette
	width   int
	height  int
}

// Palette is the subset of colours toasts need.
type Palette struct {
	Surface lipgloss.Color
	Text    lipgloss.Color
	Info    lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// NewToastManager creates a new ToastManager.
func NewToastManager(p Palette) *ToastManager {
	return &ToastManager{palette: p}
}

func (tm *ToastManager) SetPalette(p Palette) {
	tm.palette = p
}

// SetSize updates the available viewport dimensions for toast positioning.
func (tm *ToastManager) SetSize(width, height int) {
	tm.width = width
	tm.height = height
}

// Info creates an informational toast and returns its ID.
func (tm *ToastManager) Info(msg string) string {
	return tm.addToast(ToastInfo, msg, InfoDismissAfter)
}

// Warning creates a warning toast and returns its ID.
func (tm *ToastManager) Warning(msg string) string {
	return tm.addToast(ToastWarning, msg, WarningDismissAfter)
}

// Error creates an error toast and returns its ID.
func (tm *ToastManager) Error(msg string) string {
	return tm.addToast(ToastError, msg, ErrorDismissAfter)
}

// HasActiveToasts returns true if any toast still needs frames.
func (tm *ToastManager) HasActiveToasts() bool {
	return len(tm.toasts) > 0
}

func (tm *ToastManager) addToast(typ ToastType, msg string, duration time.Duration) string {
	// Deduplicate: an identical visible toast just restarts its timer.
	for _, existing := range tm.toasts {
		if existing.Type == typ && existing.Message == msg && existing.Phase != PhaseSlidingOut {
			existing.held = 0
			return existing.ID
		}
	}

	tm.nextID++
	t := &toast{
		ID:       fmt.Sprintf("toast-%d", tm.nextID),
		Type:     typ,
		Message:  msg,
		Phase:    PhaseSlidingIn,
		Duration: duration,
		Width:    calcToastWidth(msg),
		slide:    anim.New("toast-slide", 1, anim.DriverCompositor),
	}
	t.slide.AnimateTo(0, anim.Timing{Duration: SlideInDuration, Easing: easeOut}, func(finished bool) {
		if finished && t.Phase == PhaseSlidingIn {
			t.Phase = PhaseVisible
		}
	})

	if len(tm.toasts) >= MaxToasts {
		tm.toasts = tm.toasts[1:]
	}
	tm.toasts = append(tm.toasts, t)
	return t.ID
}

func easeOut(p float64) float64 { return 1 - (1-p)*(1-p) }
func easeIn(p float64) float64  { return p * p }

// Step advances every toast by dt. Toasts that have slid out are dropped.
func (tm *ToastManager) Step(dt time.Duration) {
	alive := tm.toasts[:0]
	for _, t := range tm.toasts {
		switch t.Phase {
		case PhaseSlidingIn, PhaseSlidingOut:
			t.slide.Step(dt)
		case PhaseVisible:
			t.held += dt
			if t.Duration > 0 && t.held >= t.Duration {
				t.Phase = PhaseSlidingOut
				t.slide.AnimateTo(1, anim.Timing{Duration: SlideOutDuration, Easing: easeIn}, func(finished bool) {
					if finished {
						t.Phase = PhaseDone
					}
				})
			}
		}
		if t.Phase != PhaseDone {
			alive = append(alive, t)
		}
	}
	tm.toasts = alive
}

func (tm *ToastManager) toastColor(typ ToastType) lipgloss.Color {
	switch typ {
	case ToastWarning:
		return tm.palette.Warning
	case ToastError:
		return tm.palette.Error
	}
	return tm.palette.Info
}

func toastIcon(typ ToastType) string {
	switch typ {
	case ToastWarning:
		return "!"
	case ToastError:
		return "✗"
	}
	return "▸"
}

func (tm *ToastManager) renderToast(t *toast) string {
	color := tm.toastColor(t.Type)
	icon := lipgloss.NewStyle().Foreground(color).Render(toastIcon(t.Type))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(tm.palette.Text).
		Padding(0, 1).
		Width(t.Width).
		Render(icon + " " + t.Message)
}

// View renders all active toasts stacked vertically.
func (tm *ToastManager) View() string {
	if len(tm.toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(tm.toasts))
	for _, t := range tm.toasts {
		rendered = append(rendered, tm.renderToast(t))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// GetPosition returns the x, y coordinates for placing the toast overlay:
// top right, pushed right by the largest slide offset in flight.
func (tm *ToastManager) GetPosition() (int, int) {
	widest := MinToastWidth
	maxOffset := 0
	for _, t := range tm.toasts {
		widest = max(widest, t.Width)
		maxOffset = max(maxOffset, int(t.slide.Value()*float64(t.Width+4)))
	}
	x := max(0, tm.width-widest-4) + maxOffset
	return x, 1
}
