package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const journalSchema = `
CREATE TABLE IF NOT EXISTS journal_events (
	id         INTEGER PRIMARY KEY,
	kind       TEXT    NOT NULL,
	timestamp  TEXT    NOT NULL,
	session    TEXT    NOT NULL DEFAULT '',
	from_state TEXT    NOT NULL DEFAULT '',
	to_state   TEXT    NOT NULL DEFAULT '',
	item       INTEGER NOT NULL DEFAULT -1,
	width      REAL    NOT NULL DEFAULT 0,
	message    TEXT    NOT NULL DEFAULT '',
	level      TEXT    NOT NULL DEFAULT 'info'
);

CREATE INDEX IF NOT EXISTS idx_journal_session_ts ON journal_events(session, timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_journal_kind ON journal_events(kind, timestamp DESC);
`

const maxQueryLimit = 500

// timeLayout is fixed width so timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteLogger is a Logger backed by a SQLite database.
type SQLiteLogger struct {
	db *sql.DB
}

// NewSQLiteLogger opens (or creates) a SQLite database at dbPath, runs the
// schema, and returns a ready-to-use logger. ":memory:" works for tests.
func NewSQLiteLogger(dbPath string) (*SQLiteLogger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db for journal: %w", err)
	}
	// One connection: every Emit comes from the bubbletea Update goroutine,
	// and an in-memory database only exists on the connection that made it.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(journalSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run journal schema: %w", err)
	}

	return &SQLiteLogger{db: db}, nil
}

// Emit inserts an event. A zero Timestamp is set to time.Now(). Write
// errors are dropped: the journal must never disturb the UI.
func (l *SQLiteLogger) Emit(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	level := e.Level
	if level == "" {
		level = "info"
	}

	const q = `
		INSERT INTO journal_events
			(kind, timestamp, session, from_state, to_state, item, width, message, level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, _ = l.db.Exec(q,
		string(e.Kind),
		formatTime(e.Timestamp),
		e.Session,
		e.From,
		e.To,
		e.Item,
		e.Width,
		e.Message,
		level,
	)
}

// Query returns events matching the filter, newest first. Limit is capped
// at 500.
func (l *SQLiteLogger) Query(f QueryFilter) ([]Event, error) {
	limit := f.Limit
	if limit <= 0 || limit > maxQueryLimit {
		limit = maxQueryLimit
	}

	var conditions []string
	var args []any

	if f.Session != "" {
		conditions = append(conditions, "session = ?")
		args = append(args, f.Session)
	}
	if len(f.Kinds) > 0 {
		placeholders := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			placeholders[i] = "?"
			args = append(args, string(k))
		}
		conditions = append(conditions, "kind IN ("+strings.Join(placeholders, ", ")+")")
	}
	if !f.After.IsZero() {
		conditions = append(conditions, "timestamp > ?")
		args = append(args, formatTime(f.After))
	}
	if !f.Before.IsZero() {
		conditions = append(conditions, "timestamp < ?")
		args = append(args, formatTime(f.Before))
	}

	q := `
		SELECT id, kind, timestamp, session, from_state, to_state, item, width, message, level
		FROM journal_events
	`
	if len(conditions) > 0 {
		q += " WHERE " + strings.Join(conditions, " AND ")
	}
	q += fmt.Sprintf(" ORDER BY timestamp DESC, id DESC LIMIT %d", limit)

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var ts string
		if err := rows.Scan(
			&e.ID,
			(*string)(&e.Kind),
			&ts,
			&e.Session,
			&e.From,
			&e.To,
			&e.Item,
			&e.Width,
			&e.Message,
			&e.Level,
		); err != nil {
			return nil, fmt.Errorf("scan journal event: %w", err)
		}
		e.Timestamp = parseTime(ts)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal events: %w", err)
	}
	return events, nil
}

// Close releases the database connection.
func (l *SQLiteLogger) Close() error {
	return l.db.Close()
}

// formatTime formats t in UTC with timeLayout. Zero time is "".
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// parseTime parses RFC3339Nano, returning zero time on bad input.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Open returns a SQLite logger for path, or a no-op logger when path is
// empty.
func Open(path string) (Logger, error) {
	if path == "" {
		return NopLogger(), nil
	}
	return NewSQLiteLogger(path)
}
