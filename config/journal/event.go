package journal

import "time"

// EventKind identifies the type of journaled event.
type EventKind string

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Session events.
const (
	EventSessionStarted EventKind = "session_started"
	EventSessionEnded   EventKind = "session_ended"
)

// Sidebar events.
const (
	EventLayoutChanged    EventKind = "layout_changed"
	EventDrawerTransition EventKind = "drawer_transition"
	EventCloseWatchdog    EventKind = "close_watchdog"
	EventItemSelected     EventKind = "item_selected"
	EventThemeChanged     EventKind = "theme_changed"
	EventCounterChanged   EventKind = "counter_changed"
)

// Event is a single journal entry.
type Event struct {
	ID        int64
	Kind      EventKind
	Timestamp time.Time
	Session   string
	From      string // previous state, when the event is a transition
	To        string // new state
	Item      int    // menu item index, -1 when not applicable
	Width     float64
	Message   string
	Level     string // info, warn, error
}
