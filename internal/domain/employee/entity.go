package employee

import "time"

// Employee is the identity record consumed from the people-management
// surface. The engine never creates or edits employees.
type Employee struct {
	ID         string
	Name       string
	Department string
	// ScheduleName designates which of the department's named schedules
	// applies to this employee. Nil means "use the department's first".
	ScheduleName *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleSupervisor Role = "SUPERVISOR"
)

// Department carries the locale the engine needs to anchor calendar dates.
type Department struct {
	Name     string
	Timezone string
}
