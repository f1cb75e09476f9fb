package clock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/employee"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

type EventServiceImpl struct {
	clock.EventRepository
	employee.EmployeeRepository
	employee.DepartmentRepository
}

func NewEventService(
	eventRepo clock.EventRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo employee.DepartmentRepository,
) clock.EventService {
	return &EventServiceImpl{
		EventRepository:      eventRepo,
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// Record implements clock.EventService.
func (s *EventServiceImpl) Record(ctx context.Context, req clock.RecordEventRequest) (clock.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return clock.EventResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return clock.EventResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return clock.EventResponse{}, employee.ErrEmployeeNotFound
		}
		return clock.EventResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, _ := validator.IsValidDateTime(req.Timestamp)
		timestamp = parsed.UTC()
	}

	id, err := uuid.NewV7()
	if err != nil {
		return clock.EventResponse{}, fmt.Errorf("failed to generate event id: %w", err)
	}

	created, err := s.EventRepository.Create(ctx, clock.Event{
		ID:         id.String(),
		EmployeeID: employeeID,
		Department: emp.Department,
		Type:       clock.EventType(req.Type),
		Timestamp:  timestamp,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return clock.EventResponse{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return clock.MapEventToResponse(created), nil
}

// ListMyEvents implements clock.EventService.
func (s *EventServiceImpl) ListMyEvents(ctx context.Context, date string) ([]clock.EventResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	loc := time.UTC
	if tz, err := s.DepartmentRepository.GetTimezone(ctx, emp.Department); err == nil {
		if parsed, err := time.LoadLocation(tz); err == nil {
			loc = parsed
		}
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.EventRepository.ListByEmployeeAndDate(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}

	responses := make([]clock.EventResponse, 0, len(events))
	for _, ev := range events {
		ev.Timestamp = ev.Timestamp.In(loc)
		responses = append(responses, clock.MapEventToResponse(ev))
	}
	return responses, nil
}
