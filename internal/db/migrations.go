package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			calendar   TEXT NOT NULL DEFAULT 'default',
			uid        TEXT,
			title      TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date   DATE NOT NULL,
			color      TEXT,
			busy       INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_events_dates ON events(start_date, end_date);
		CREATE INDEX IF NOT EXISTS idx_events_calendar ON events(calendar);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}

	return nil
}
