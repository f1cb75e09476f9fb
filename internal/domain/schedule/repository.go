package schedule

import (
	"context"
	"time"
)

type DepartmentScheduleRepository interface {
	Create(ctx context.Context, s DepartmentSchedule) (DepartmentSchedule, error)
	GetByID(ctx context.Context, id string) (DepartmentSchedule, error)
	// GetByDepartment returns the department's schedules with their
	// overrides, ordered by name.
	GetByDepartment(ctx context.Context, department string) ([]DepartmentSchedule, error)
	Update(ctx context.Context, req UpdateScheduleRequest) error
	Delete(ctx context.Context, id string) error
	// PutOverride inserts or replaces the override for (schedule, weekday)
	PutOverride(ctx context.Context, o DayOverride) (DayOverride, error)
	DeleteOverride(ctx context.Context, scheduleID string, dayOfWeek int) error
}

type DepartmentShiftRepository interface {
	Create(ctx context.Context, s DepartmentShift) (DepartmentShift, error)
	GetByID(ctx context.Context, id string) (DepartmentShift, error)
	GetByDepartment(ctx context.Context, department string) ([]DepartmentShift, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error
}

type ShiftAssignmentRepository interface {
	// Upsert writes the assignment for (employee, date), replacing any
	// previous one. Last writer wins.
	Upsert(ctx context.Context, a ShiftAssignment) (ShiftAssignment, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*ShiftAssignment, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]ShiftAssignment, error)
	Delete(ctx context.Context, employeeID string, date time.Time) error
}
