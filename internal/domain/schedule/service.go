package schedule

import (
	"context"
)

// CatalogService manages department schedules, day overrides, shifts and
// per-date shift assignments.
type CatalogService interface {
	// Department Schedule
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)
	ListSchedules(ctx context.Context, department string) ([]ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) error
	DeleteSchedule(ctx context.Context, id string) error

	// Day Override
	PutOverride(ctx context.Context, req PutOverrideRequest) (OverrideResponse, error)
	DeleteOverride(ctx context.Context, scheduleID string, dayOfWeek int) error

	// Department Shift
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, department string) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) error
	DeleteShift(ctx context.Context, id string) error

	// AssignShift writes one assignment per date in the range. Each date is
	// an independent write: dates outside the shift's active weekdays are
	// skipped, the rest succeed regardless of skips.
	AssignShift(ctx context.Context, req AssignShiftRequest) (AssignShiftResponse, error)
}
