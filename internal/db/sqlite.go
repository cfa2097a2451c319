// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/almanaque/internal/event"
)

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const eventColumns = `id, calendar, uid, title, start_date, end_date, color, busy, created_at`

// CreateEvent adds a new event to the repository and sets its ID.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return event.ErrEmptyTitle
	}

	query := `
		INSERT INTO events (calendar, uid, title, start_date, end_date, color, busy, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Calendar,
		nullable(e.UID),
		e.Title,
		e.StartDate.Format("2006-01-02"),
		e.EndDate.Format("2006-01-02"),
		nullable(e.Color),
		e.Busy,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// CreateEvents adds multiple events in a batch using a transaction.
func (s *SQLite) CreateEvents(ctx context.Context, events []*event.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO events (calendar, uid, title, start_date, end_date, color, busy, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range events {
		result, err := stmt.ExecContext(ctx,
			e.Calendar,
			nullable(e.UID),
			e.Title,
			e.StartDate.Format("2006-01-02"),
			e.EndDate.Format("2006-01-02"),
			nullable(e.Color),
			e.Busy,
			e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting event %q: %w", e.Title, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		e.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID, nil if it does not exist.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// DeleteEvent removes an event by ID.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %d", event.ErrEventNotFound, id)
	}

	return nil
}

// ListEventsBetween returns all events overlapping the date range
// (inclusive), ordered by start date.
func (s *SQLite) ListEventsBetween(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY start_date, id
	`

	rows, err := s.db.QueryContext(ctx, query, end.Format("2006-01-02"), start.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEvents(rows)
}

// ListAllEvents returns every stored event, ordered by start date.
func (s *SQLite) ListAllEvents(ctx context.Context) ([]*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEvents(rows)
}

// DeleteCalendar removes all events belonging to a calendar and returns
// how many were deleted.
func (s *SQLite) DeleteCalendar(ctx context.Context, calendar string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE calendar = ?`, calendar)
	if err != nil {
		return 0, fmt.Errorf("deleting calendar: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted events: %w", err)
	}
	return rows, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*event.Event, error) {
	var (
		e         event.Event
		uid       sql.NullString
		color     sql.NullString
		startDate string
		endDate   string
		createdAt string
	)

	err := row.Scan(
		&e.ID,
		&e.Calendar,
		&uid,
		&e.Title,
		&startDate,
		&endDate,
		&color,
		&e.Busy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if e.StartDate, err = parseDate(startDate); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if e.EndDate, err = parseDate(endDate); err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	e.UID = uid.String
	e.Color = color.String

	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*event.Event, error) {
	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// nullable turns an empty string into NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	// Date-only format: use local timezone (midnight local, not UTC)
	// This ensures dates match when compared with time.Now() based dates
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z" - extract date and parse as local
	// This is a date-only value stored by SQLite, should be treated as local midnight
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		dateOnly := s[:10] // Extract "2006-01-02"
		if t, err := time.ParseInLocation("2006-01-02", dateOnly, time.Local); err == nil {
			return t, nil
		}
	}

	// Formats with actual time components (not midnight placeholders)
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
