package notice

import (
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

type RaiseNoticeRequest struct {
	EmployeeID   string `json:"employee_id"`
	ClockEventID string `json:"clock_event_id"`
	Date         string `json:"date"` // "YYYY-MM-DD"
}

func (r *RaiseNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ClockEventID) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_event_id",
			Message: "clock_event_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type JustifyNoticeRequest struct {
	ID   string `json:"-"`
	Text string `json:"text"`
}

func (r *JustifyNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type NoticeResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	SupervisorID      string  `json:"supervisor_id"`
	ClockEventID      string  `json:"clock_event_id"`
	Date              string  `json:"date"`
	Justified         bool    `json:"justified"`
	JustificationText *string `json:"justification_text,omitempty"`
	Read              bool    `json:"read"`
	CreatedAt         string  `json:"created_at"`
}

// MapNoticeToResponse converts a LateNotice entity to its wire shape.
func MapNoticeToResponse(n LateNotice) NoticeResponse {
	return NoticeResponse{
		ID:                n.ID,
		EmployeeID:        n.EmployeeID,
		SupervisorID:      n.SupervisorID,
		ClockEventID:      n.ClockEventID,
		Date:              n.Date.Format("2006-01-02"),
		Justified:         n.Justified,
		JustificationText: n.JustificationText,
		Read:              n.Read,
		CreatedAt:         n.CreatedAt.Format(time.RFC3339),
	}
}
