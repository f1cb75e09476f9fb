package clock

import "time"

type EventType string

const (
	EventTypeEntry EventType = "ENTRY"
	EventTypeExit  EventType = "EXIT"
)

var EventTypeValues = []string{
	string(EventTypeEntry),
	string(EventTypeExit),
}

// Event is a single timestamped entry or exit punch ("fichaje"). Immutable
// once recorded except through the adjustment workflow.
type Event struct {
	ID         string
	EmployeeID string
	// Department at the time of the event, so later department moves do not
	// rewrite history.
	Department string
	Type       EventType
	Timestamp  time.Time // UTC instant
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
