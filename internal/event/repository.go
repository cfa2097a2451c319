package event

import (
	"context"
	"time"
)

// Repository defines the storage interface for events.
type Repository interface {
	// CreateEvent adds a new event and sets its ID.
	CreateEvent(ctx context.Context, e *Event) error

	// CreateEvents adds multiple events in one transaction. Used by the
	// ICS importer.
	CreateEvents(ctx context.Context, events []*Event) error

	// GetEvent retrieves an event by ID, nil if it does not exist.
	GetEvent(ctx context.Context, id int64) (*Event, error)

	// DeleteEvent removes an event. Returns ErrEventNotFound if the ID
	// does not exist.
	DeleteEvent(ctx context.Context, id int64) error

	// ListEventsBetween returns all events overlapping the inclusive day
	// range, ordered by start date.
	ListEventsBetween(ctx context.Context, start, end time.Time) ([]*Event, error)

	// ListAllEvents returns every stored event, ordered by start date.
	ListAllEvents(ctx context.Context) ([]*Event, error)

	// DeleteCalendar removes all events of a calendar and reports how
	// many were deleted. Used before re-importing an ICS feed.
	DeleteCalendar(ctx context.Context, calendar string) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
