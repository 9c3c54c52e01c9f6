package journal

import "time"

// QueryFilter specifies criteria for querying journal events.
type QueryFilter struct {
	Session string
	Kinds   []EventKind
	Limit   int
	Before  time.Time
	After   time.Time
}

// Logger is the interface for emitting and querying journal events.
type Logger interface {
	Emit(event Event)
	Query(filter QueryFilter) ([]Event, error)
	Close() error
}

// EventOption is a functional option for the optional Event fields.
type EventOption func(*Event)

// WithTransition sets From and To.
func WithTransition(from, to string) EventOption {
	return func(e *Event) {
		e.From = from
		e.To = to
	}
}

// WithItem sets the menu item index.
func WithItem(idx int) EventOption {
	return func(e *Event) { e.Item = idx }
}

// WithWidth sets the viewport width in layout points.
func WithWidth(w float64) EventOption {
	return func(e *Event) { e.Width = w }
}

// WithLevel sets the Level field (info, warn, error).
func WithLevel(level string) EventOption {
	return func(e *Event) { e.Level = level }
}

// NewEvent builds an event with Item defaulted to -1.
func NewEvent(kind EventKind, session, message string, opts ...EventOption) Event {
	e := Event{Kind: kind, Session: session, Message: message, Item: -1}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// nopLogger is used when no journal path is configured.
type nopLogger struct{}

// NopLogger returns a Logger that discards all events.
func NopLogger() Logger {
	return &nopLogger{}
}

func (n *nopLogger) Emit(_ Event) {}

func (n *nopLogger) Query(_ QueryFilter) ([]Event, error) {
	return nil, nil
}

func (n *nopLogger) Close() error {
	return nil
}
