package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level is the severity a Writer forwards at.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) sentryLevel() gosentry.Level {
	switch l {
	case LevelError:
		return gosentry.LevelError
	case LevelWarning:
		return gosentry.LevelWarning
	default:
		return gosentry.LevelInfo
	}
}

// Writer tees log output to Sentry. Error lines become events, everything
// else becomes a breadcrumb attached to the next event.
type Writer struct {
	inner    io.Writer
	level    Level
	category string
}

// NewWriter creates a Writer that tees to inner and forwards to Sentry.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level, category: "log"}
}

// WithCategory sets the breadcrumb category (default "log").
func (w *Writer) WithCategory(category string) *Writer {
	w.category = category
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	if enabled {
		w.forward(strings.TrimSpace(string(p)))
	}
	return n, err
}

func (w *Writer) forward(msg string) {
	if msg == "" {
		return
	}
	if w.level == LevelError {
		gosentry.CaptureMessage(msg)
		return
	}
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Level:    w.level.sentryLevel(),
		Category: w.category,
		Message:  msg,
	})
}
