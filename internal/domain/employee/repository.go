package employee

import "context"

// EmployeeRepository is a read-only view over the identity records the
// engine consumes. Employee CRUD lives in a separate surface.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)
}

type DepartmentRepository interface {
	// GetTimezone returns the IANA timezone name configured for a department
	GetTimezone(ctx context.Context, department string) (string, error)
}
