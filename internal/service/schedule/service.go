package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/employee"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
)

type CatalogServiceImpl struct {
	schedule.DepartmentScheduleRepository
	schedule.DepartmentShiftRepository
	schedule.ShiftAssignmentRepository
	employee.EmployeeRepository
}

func NewCatalogService(
	scheduleRepo schedule.DepartmentScheduleRepository,
	shiftRepo schedule.DepartmentShiftRepository,
	assignmentRepo schedule.ShiftAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.CatalogService {
	return &CatalogServiceImpl{
		DepartmentScheduleRepository: scheduleRepo,
		DepartmentShiftRepository:    shiftRepo,
		ShiftAssignmentRepository:    assignmentRepo,
		EmployeeRepository:           employeeRepo,
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}

// mustTimeOfDay re-parses an already validated "HH:MM" value.
func mustTimeOfDay(s string) time.Time {
	t, _ := validator.IsValidTimeOfDay(s)
	return t
}

func timeOfDayPtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := mustTimeOfDay(*s)
	return &t
}

// CreateSchedule implements schedule.CatalogService.
func (s *CatalogServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	created, err := s.DepartmentScheduleRepository.Create(ctx, schedule.DepartmentSchedule{
		ID:               newID(),
		Department:       req.Department,
		Name:             req.Name,
		EntryTime:        mustTimeOfDay(req.EntryTime),
		ExitTime:         mustTimeOfDay(req.ExitTime),
		ToleranceMinutes: *req.ToleranceMinutes,
		Flexible:         req.Flexible,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNameExists
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create department schedule: %w", err)
	}

	return mapScheduleToResponse(created), nil
}

// GetSchedule implements schedule.CatalogService.
func (s *CatalogServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	found, err := s.DepartmentScheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get department schedule: %w", err)
	}
	return mapScheduleToResponse(found), nil
}

// ListSchedules implements schedule.CatalogService.
func (s *CatalogServiceImpl) ListSchedules(ctx context.Context, department string) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.DepartmentScheduleRepository.GetByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list department schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, mapScheduleToResponse(sched))
	}
	return responses, nil
}

// UpdateSchedule implements schedule.CatalogService.
func (s *CatalogServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateScheduleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.DepartmentScheduleRepository.Update(ctx, req); err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ErrScheduleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.ErrScheduleNameExists
		}
		return fmt.Errorf("failed to update department schedule: %w", err)
	}
	return nil
}

// DeleteSchedule implements schedule.CatalogService. Employees left without
// a schedule resolve to unscheduled days, so deletion needs no guard.
func (s *CatalogServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.DepartmentScheduleRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to delete department schedule: %w", err)
	}
	return nil
}

// PutOverride implements schedule.CatalogService.
func (s *CatalogServiceImpl) PutOverride(ctx context.Context, req schedule.PutOverrideRequest) (schedule.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.OverrideResponse{}, err
	}

	if _, err := s.DepartmentScheduleRepository.GetByID(ctx, req.ScheduleID); err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.OverrideResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.OverrideResponse{}, fmt.Errorf("failed to get department schedule: %w", err)
	}

	override := schedule.DayOverride{
		ID:         newID(),
		ScheduleID: req.ScheduleID,
		DayOfWeek:  req.DayOfWeek,
		DayOff:     req.DayOff,
	}
	if !req.DayOff {
		override.EntryTime = timeOfDayPtr(req.EntryTime)
		override.ExitTime = timeOfDayPtr(req.ExitTime)
		override.ExitTimeMorning = timeOfDayPtr(req.ExitTimeMorning)
		override.EntryTimeAfternoon = timeOfDayPtr(req.EntryTimeAfternoon)
	}

	saved, err := s.DepartmentScheduleRepository.PutOverride(ctx, override)
	if err != nil {
		return schedule.OverrideResponse{}, fmt.Errorf("failed to put day override: %w", err)
	}
	return mapOverrideToResponse(saved), nil
}

// DeleteOverride implements schedule.CatalogService.
func (s *CatalogServiceImpl) DeleteOverride(ctx context.Context, scheduleID string, dayOfWeek int) error {
	if !validator.IsValidWeekday(dayOfWeek) {
		return validator.ValidationErrors{{
			Field:   "day_of_week",
			Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)",
		}}
	}

	if err := s.DepartmentScheduleRepository.DeleteOverride(ctx, scheduleID, dayOfWeek); err != nil {
		if errors.Is(err, schedule.ErrOverrideNotFound) {
			return schedule.ErrOverrideNotFound
		}
		return fmt.Errorf("failed to delete day override: %w", err)
	}
	return nil
}

// CreateShift implements schedule.CatalogService.
func (s *CatalogServiceImpl) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	created, err := s.DepartmentShiftRepository.Create(ctx, schedule.DepartmentShift{
		ID:                 newID(),
		Department:         req.Department,
		Name:               req.Name,
		EntryTime:          mustTimeOfDay(req.EntryTime),
		ExitTime:           mustTimeOfDay(req.ExitTime),
		ExitTimeMorning:    timeOfDayPtr(req.ExitTimeMorning),
		EntryTimeAfternoon: timeOfDayPtr(req.EntryTimeAfternoon),
		ToleranceMinutes:   *req.ToleranceMinutes,
		Flexible:           req.Flexible,
		ActiveWeekdays:     req.ActiveWeekdays,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.ShiftResponse{}, schedule.ErrShiftNameExists
		}
		return schedule.ShiftResponse{}, fmt.Errorf("failed to create department shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// GetShift implements schedule.CatalogService.
func (s *CatalogServiceImpl) GetShift(ctx context.Context, id string) (schedule.ShiftResponse, error) {
	found, err := s.DepartmentShiftRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ShiftResponse{}, schedule.ErrShiftNotFound
		}
		return schedule.ShiftResponse{}, fmt.Errorf("failed to get department shift: %w", err)
	}
	return mapShiftToResponse(found), nil
}

// ListShifts implements schedule.CatalogService.
func (s *CatalogServiceImpl) ListShifts(ctx context.Context, department string) ([]schedule.ShiftResponse, error) {
	shifts, err := s.DepartmentShiftRepository.GetByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list department shifts: %w", err)
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, mapShiftToResponse(shift))
	}
	return responses, nil
}

// UpdateShift implements schedule.CatalogService.
func (s *CatalogServiceImpl) UpdateShift(ctx context.Context, req schedule.UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.DepartmentShiftRepository.Update(ctx, req); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ErrShiftNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update department shift: %w", err)
	}
	return nil
}

// DeleteShift implements schedule.CatalogService. Assignments that
// reference the shift are kept: already computed facts stay as they were,
// and future resolution for those dates falls back to the department
// default.
func (s *CatalogServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := s.DepartmentShiftRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete department shift: %w", err)
	}
	return nil
}

// AssignShift implements schedule.CatalogService. Every date in the range
// is written independently: dates outside the shift's active weekdays are
// skipped and the rest still go through.
func (s *CatalogServiceImpl) AssignShift(ctx context.Context, req schedule.AssignShiftRequest) (schedule.AssignShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignShiftResponse{}, err
	}

	shift, err := s.DepartmentShiftRepository.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.AssignShiftResponse{}, schedule.ErrShiftNotFound
		}
		return schedule.AssignShiftResponse{}, fmt.Errorf("failed to get department shift: %w", err)
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.AssignShiftResponse{}, employee.ErrEmployeeNotFound
		}
		return schedule.AssignShiftResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	result := schedule.AssignShiftResponse{
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
	}
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if !shift.ActiveOn(date) {
			result.SkippedDates = append(result.SkippedDates, date.Format("2006-01-02"))
			continue
		}
		// Upsert replaces any previous assignment for the date. A failed
		// date is reported as skipped without aborting the rest of the
		// range.
		_, err := s.ShiftAssignmentRepository.Upsert(ctx, schedule.ShiftAssignment{
			ID:         newID(),
			EmployeeID: req.EmployeeID,
			ShiftID:    req.ShiftID,
			Date:       date,
		})
		if err != nil {
			result.SkippedDates = append(result.SkippedDates, date.Format("2006-01-02"))
			continue
		}
		result.AssignedCount++
	}

	return result, nil
}

func mapScheduleToResponse(s schedule.DepartmentSchedule) schedule.ScheduleResponse {
	overrides := make([]schedule.OverrideResponse, 0, len(s.Overrides))
	for _, o := range s.Overrides {
		overrides = append(overrides, mapOverrideToResponse(o))
	}

	return schedule.ScheduleResponse{
		ID:               s.ID,
		Department:       s.Department,
		Name:             s.Name,
		EntryTime:        schedule.FormatTimeOfDay(s.EntryTime),
		ExitTime:         schedule.FormatTimeOfDay(s.ExitTime),
		ToleranceMinutes: s.ToleranceMinutes,
		Flexible:         s.Flexible,
		Overrides:        overrides,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}

func mapOverrideToResponse(o schedule.DayOverride) schedule.OverrideResponse {
	return schedule.OverrideResponse{
		ID:                 o.ID,
		DayOfWeek:          o.DayOfWeek,
		EntryTime:          schedule.FormatTimeOfDayPtr(o.EntryTime),
		ExitTime:           schedule.FormatTimeOfDayPtr(o.ExitTime),
		ExitTimeMorning:    schedule.FormatTimeOfDayPtr(o.ExitTimeMorning),
		EntryTimeAfternoon: schedule.FormatTimeOfDayPtr(o.EntryTimeAfternoon),
		DayOff:             o.DayOff,
	}
}

func mapShiftToResponse(s schedule.DepartmentShift) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		ID:                 s.ID,
		Department:         s.Department,
		Name:               s.Name,
		EntryTime:          schedule.FormatTimeOfDay(s.EntryTime),
		ExitTime:           schedule.FormatTimeOfDay(s.ExitTime),
		ExitTimeMorning:    schedule.FormatTimeOfDayPtr(s.ExitTimeMorning),
		EntryTimeAfternoon: schedule.FormatTimeOfDayPtr(s.EntryTimeAfternoon),
		ToleranceMinutes:   s.ToleranceMinutes,
		Flexible:           s.Flexible,
		ActiveWeekdays:     s.ActiveWeekdays,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
	}
}
