package adjustment

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Request is an employee-initiated correction to one clock event. PENDING
// is the only non-terminal state; exactly one outcome transition happens.
type Request struct {
	ID           string
	ClockEventID string
	EmployeeID   string
	// OriginalTimestamp snapshots the event's timestamp at request creation
	// time, so the audit trail survives the approval mutating the event.
	OriginalTimestamp  time.Time
	RequestedTimestamp time.Time
	Reason             string
	Status             Status
	SupervisorID       *string
	RejectionReason    *string
	ResolvedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
