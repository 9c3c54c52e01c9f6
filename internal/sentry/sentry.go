package sentry

import (
	"runtime"
	"strconv"
	"time"

	gosentry "github.com/getsentry/sentry-go"
)

// Options configures crash reporting.
type Options struct {
	Version string
	DSN     string
	Enabled bool
	// Environment is "tty" for the dashboard and "snapshot" for one-shot
	// renders.
	Environment string
}

const (
	flushTimeout = 2 * time.Second
	// maxBreadcrumbs keeps the last few sidebar log lines on each event.
	maxBreadcrumbs = 50
)

// enabled tracks whether sentry was successfully initialized.
var enabled bool

// Init initializes the Sentry SDK. When reporting is disabled or the DSN is
// empty, it no-ops and every other function in this package becomes a no-op.
func Init(opts Options) error {
	if !opts.Enabled || opts.DSN == "" {
		enabled = false
		return nil
	}

	err := gosentry.Init(gosentry.ClientOptions{
		Dsn:              opts.DSN,
		Release:          "dashshell@" + opts.Version,
		Environment:      opts.Environment,
		AttachStacktrace: true,
		SampleRate:       1.0,
		MaxBreadcrumbs:   maxBreadcrumbs,
	})
	if err != nil {
		return err
	}

	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
	})

	enabled = true
	return nil
}

// IsEnabled returns whether sentry is active.
func IsEnabled() bool {
	return enabled
}

// Flush waits for buffered events to be sent.
func Flush() {
	if !enabled {
		return
	}
	gosentry.Flush(flushTimeout)
}

// RecoverPanic captures a panic to Sentry, flushes, then re-panics.
// Usage: defer sentry.RecoverPanic()
func RecoverPanic() {
	if !enabled {
		return
	}
	if err := recover(); err != nil {
		gosentry.CurrentHub().Recover(err)
		gosentry.Flush(flushTimeout)
		panic(err)
	}
}

// SetLayout tags the scope with the current viewport so a report shows the
// layout it was raised in.
func SetLayout(widthPt float64, layout string, dark bool) {
	if !enabled {
		return
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTags(layoutTags(layout, dark))
		scope.SetContext("viewport", map[string]interface{}{
			"width_pt": widthPt,
			"layout":   layout,
			"dark":     dark,
		})
	})
}

func layoutTags(layout string, dark bool) map[string]string {
	return map[string]string{
		"layout": layout,
		"dark":   strconv.FormatBool(dark),
	}
}
