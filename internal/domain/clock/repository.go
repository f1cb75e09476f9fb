package clock

import (
	"context"
	"time"
)

type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	// ListByEmployeeAndDate returns the events whose timestamp falls inside
	// the local day [dayStart, dayEnd), ordered by timestamp ascending.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]Event, error)
	// UpdateTimestamp rewrites the event's timestamp. Only the adjustment
	// workflow may call this.
	UpdateTimestamp(ctx context.Context, id string, timestamp time.Time) error
}
