package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/employee"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

type FactsServiceImpl struct {
	employee.EmployeeRepository
	employee.DepartmentRepository
	schedule.DepartmentScheduleRepository
	schedule.DepartmentShiftRepository
	schedule.ShiftAssignmentRepository
	clock.EventRepository
}

func NewFactsService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo employee.DepartmentRepository,
	scheduleRepo schedule.DepartmentScheduleRepository,
	shiftRepo schedule.DepartmentShiftRepository,
	assignmentRepo schedule.ShiftAssignmentRepository,
	eventRepo clock.EventRepository,
) attendance.FactsService {
	return &FactsServiceImpl{
		EmployeeRepository:           employeeRepo,
		DepartmentRepository:         departmentRepo,
		DepartmentScheduleRepository: scheduleRepo,
		DepartmentShiftRepository:    shiftRepo,
		ShiftAssignmentRepository:    assignmentRepo,
		EventRepository:              eventRepo,
	}
}

// GetResolvedSchedule implements attendance.FactsService.
func (s *FactsServiceImpl) GetResolvedSchedule(ctx context.Context, employeeID, date string) (attendance.ResolvedDayResponse, error) {
	resolved, _, err := s.resolve(ctx, employeeID, date)
	if err != nil {
		return attendance.ResolvedDayResponse{}, err
	}
	return attendance.MapResolvedDayToResponse(resolved), nil
}

// GetDayFacts implements attendance.FactsService. Facts are recomputed from
// the current events on every call, so approved adjustments show up on the
// next read without any cache invalidation.
func (s *FactsServiceImpl) GetDayFacts(ctx context.Context, employeeID, date string) (attendance.DayFactsResponse, error) {
	resolved, loc, err := s.resolve(ctx, employeeID, date)
	if err != nil {
		return attendance.DayFactsResponse{}, err
	}

	dayStart := resolved.Date
	dayEnd := dayStart.AddDate(0, 0, 1)
	events, err := s.EventRepository.ListByEmployeeAndDate(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.DayFactsResponse{}, fmt.Errorf("failed to list clock events: %w", err)
	}

	facts := EvaluateDay(employeeID, resolved, events)
	return mapFactsToResponse(facts, loc), nil
}

// resolve loads the employee's configuration layers and runs the resolver.
func (s *FactsServiceImpl) resolve(ctx context.Context, employeeID, date string) (attendance.ResolvedDay, *time.Location, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.ResolvedDay{}, nil, attendance.ErrInvalidDate
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ResolvedDay{}, nil, employee.ErrEmployeeNotFound
		}
		return attendance.ResolvedDay{}, nil, fmt.Errorf("failed to get employee: %w", err)
	}

	loc := s.location(ctx, emp.Department)
	localDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	assignment, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, employeeID, localDay)
	if err != nil {
		return attendance.ResolvedDay{}, nil, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	var shift *schedule.DepartmentShift
	if assignment != nil {
		found, err := s.DepartmentShiftRepository.GetByID(ctx, assignment.ShiftID)
		if err == nil {
			shift = &found
		} else if !errors.Is(err, schedule.ErrShiftNotFound) {
			return attendance.ResolvedDay{}, nil, fmt.Errorf("failed to get shift: %w", err)
		}
		// A deleted shift leaves the assignment dangling; resolution falls
		// back to the department default.
	}

	schedules, err := s.DepartmentScheduleRepository.GetByDepartment(ctx, emp.Department)
	if err != nil {
		return attendance.ResolvedDay{}, nil, fmt.Errorf("failed to get department schedules: %w", err)
	}

	resolved := ResolveDay(ResolveInput{
		Date:         localDay,
		Location:     loc,
		Assignment:   assignment,
		Shift:        shift,
		Schedules:    schedules,
		ScheduleName: emp.ScheduleName,
	})
	return resolved, loc, nil
}

// location falls back to UTC when the department has no configured
// timezone; missing locale configuration must not fail a read.
func (s *FactsServiceImpl) location(ctx context.Context, department string) *time.Location {
	tz, err := s.DepartmentRepository.GetTimezone(ctx, department)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func mapFactsToResponse(facts attendance.DayFacts, loc *time.Location) attendance.DayFactsResponse {
	events := make([]clock.EventResponse, 0, len(facts.Events))
	for _, ev := range facts.Events {
		ev.Timestamp = ev.Timestamp.In(loc)
		events = append(events, clock.MapEventToResponse(ev))
	}

	segments := make([]attendance.SegmentResponse, 0, len(facts.Segments))
	for _, seg := range facts.Segments {
		sr := attendance.SegmentResponse{
			EntryEventID: seg.Entry.ID,
			EntryTime:    seg.Entry.Timestamp.In(loc).Format(time.RFC3339),
			Open:         seg.Exit == nil,
		}
		if seg.Exit != nil {
			exitTime := seg.Exit.Timestamp.In(loc).Format(time.RFC3339)
			sr.ExitEventID = &seg.Exit.ID
			sr.ExitTime = &exitTime
		}
		segments = append(segments, sr)
	}

	return attendance.DayFactsResponse{
		EmployeeID:       facts.EmployeeID,
		Date:             facts.Date.Format("2006-01-02"),
		Resolved:         attendance.MapResolvedDayToResponse(facts.Resolved),
		Events:           events,
		Segments:         segments,
		IsLate:           facts.IsLate,
		IsEarlyDeparture: facts.IsEarlyDeparture,
		IsComplete:       facts.IsComplete,
		WorkedHours:      facts.WorkedHours,
	}
}
