package notice

import "time"

// LateNotice flags an attendance anomaly (lateness or early departure) for
// one employee-day. At most one notice exists per (employee, date).
type LateNotice struct {
	ID                string
	EmployeeID        string
	SupervisorID      string
	ClockEventID      string
	Date              time.Time // day granularity
	Justified         bool
	JustificationText *string
	Read              bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
