package adjustment

import (
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	ClockEventID       string `json:"clock_event_id"`
	RequestedTimestamp string `json:"requested_timestamp"` // RFC3339
	Reason             string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClockEventID) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_event_id",
			Message: "clock_event_id is required",
		})
	}
	if _, ok := validator.IsValidDateTime(r.RequestedTimestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_timestamp",
			Message: "requested_timestamp must be an ISO8601 timestamp",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequestRequest struct {
	ID              string `json:"-"`
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID                 string  `json:"id"`
	ClockEventID       string  `json:"clock_event_id"`
	EmployeeID         string  `json:"employee_id"`
	OriginalTimestamp  string  `json:"original_timestamp"`
	RequestedTimestamp string  `json:"requested_timestamp"`
	Reason             string  `json:"reason"`
	Status             string  `json:"status"`
	SupervisorID       *string `json:"supervisor_id,omitempty"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	ResolvedAt         *string `json:"resolved_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

// MapRequestToResponse converts a Request entity to its wire shape.
func MapRequestToResponse(req Request) RequestResponse {
	var resolvedAt *string
	if req.ResolvedAt != nil {
		s := req.ResolvedAt.Format(time.RFC3339)
		resolvedAt = &s
	}

	return RequestResponse{
		ID:                 req.ID,
		ClockEventID:       req.ClockEventID,
		EmployeeID:         req.EmployeeID,
		OriginalTimestamp:  req.OriginalTimestamp.Format(time.RFC3339),
		RequestedTimestamp: req.RequestedTimestamp.Format(time.RFC3339),
		Reason:             req.Reason,
		Status:             string(req.Status),
		SupervisorID:       req.SupervisorID,
		RejectionReason:    req.RejectionReason,
		ResolvedAt:         resolvedAt,
		CreatedAt:          req.CreatedAt.Format(time.RFC3339),
	}
}
