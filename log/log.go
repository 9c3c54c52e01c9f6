package log

import (
	"io"
	golog "log"
	"os"
	"path/filepath"

	"github.com/kastheco/dashshell/internal/sentry"
)

const logFlags = golog.Ldate | golog.Ltime | golog.Lshortfile

var (
	InfoLog    = golog.New(io.Discard, "INFO:", logFlags)
	WarningLog = golog.New(io.Discard, "WARNING:", logFlags)
	ErrorLog   = golog.New(os.Stderr, "ERROR:", logFlags)
	// SidebarLog records layout and drawer transitions. Lines always become
	// sentry breadcrumbs under the "sidebar" category; they reach the log
	// file only when verbose.
	SidebarLog = golog.New(io.Discard, "SIDEBAR:", logFlags)
)

// FileName is where logs land. The TUI owns the terminal while running, so
// everything goes to a file in the temp dir.
var FileName = filepath.Join(os.TempDir(), "dashshell.log")

var globalLogFile *os.File

// Initialize opens the log file and points the loggers at it. InfoLog stays
// discarded unless verbose is set. Call Close when done.
func Initialize(verbose bool) {
	f, err := os.OpenFile(FileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		ErrorLog.Printf("could not open log file %s: %v", FileName, err)
		return
	}

	var sidebarOut io.Writer = io.Discard
	if verbose {
		InfoLog = golog.New(sentry.NewWriter(f, sentry.LevelInfo), "INFO:", logFlags)
		sidebarOut = f
	}
	SidebarLog = golog.New(sentry.NewWriter(sidebarOut, sentry.LevelInfo).WithCategory("sidebar"), "SIDEBAR:", logFlags)
	WarningLog = golog.New(sentry.NewWriter(f, sentry.LevelWarning), "WARNING:", logFlags)
	ErrorLog = golog.New(sentry.NewWriter(f, sentry.LevelError), "ERROR:", logFlags)

	globalLogFile = f
}

// Close closes the log file and restores the pre-Initialize outputs.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	InfoLog.SetOutput(io.Discard)
	SidebarLog.SetOutput(io.Discard)
	WarningLog.SetOutput(io.Discard)
	ErrorLog.SetOutput(os.Stderr)
}
