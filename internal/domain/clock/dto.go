package clock

import (
	"strings"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

type RecordEventRequest struct {
	Type      string   `json:"type"` // ENTRY or EXIT
	Timestamp string   `json:"timestamp,omitempty"` // RFC3339; empty means "now"
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, EventTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(EventTypeValues, ", "),
		})
	}
	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an ISO8601 timestamp",
			})
		}
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MapEventToResponse converts an Event entity to its wire shape.
func MapEventToResponse(ev Event) EventResponse {
	return EventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Department: ev.Department,
		Type:       string(ev.Type),
		Timestamp:  ev.Timestamp.Format(time.RFC3339),
		Latitude:   ev.Latitude,
		Longitude:  ev.Longitude,
	}
}

type EventResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Department string   `json:"department"`
	Type       string   `json:"type"`
	Timestamp  string   `json:"timestamp"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}
