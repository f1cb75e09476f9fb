package clock

import "context"

// EventService is the minimal recording surface for clock events. The
// richer check-in experience (proof photos, radius checks) lives elsewhere;
// the engine only needs the punches to exist.
type EventService interface {
	// Record stores a punch for the authenticated employee
	Record(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// ListMyEvents returns the authenticated employee's punches for a local
	// calendar date ("YYYY-MM-DD"), ordered by timestamp
	ListMyEvents(ctx context.Context, date string) ([]EventResponse, error)
}
