package notice

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/notice"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

type LedgerServiceImpl struct {
	notice.NoticeRepository
	clock.EventRepository
	factsService attendance.FactsService
}

func NewLedgerService(
	noticeRepo notice.NoticeRepository,
	eventRepo clock.EventRepository,
	factsService attendance.FactsService,
) notice.LedgerService {
	return &LedgerServiceImpl{
		NoticeRepository: noticeRepo,
		EventRepository:  eventRepo,
		factsService:     factsService,
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

// Raise implements notice.LedgerService. A notice can only exist for a day
// the evaluator actually flagged, and only once per employee-day.
func (s *LedgerServiceImpl) Raise(ctx context.Context, req notice.RaiseNoticeRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	supervisorID, err := employeeIDFromContext(ctx)
	if err != nil {
		return notice.NoticeResponse{}, err
	}

	event, err := s.EventRepository.GetByID(ctx, req.ClockEventID)
	if err != nil {
		if errors.Is(err, clock.ErrEventNotFound) {
			return notice.NoticeResponse{}, clock.ErrEventNotFound
		}
		return notice.NoticeResponse{}, fmt.Errorf("failed to get clock event: %w", err)
	}
	if event.EmployeeID != req.EmployeeID {
		return notice.NoticeResponse{}, clock.ErrNotEventOwner
	}

	facts, err := s.factsService.GetDayFacts(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to evaluate attendance: %w", err)
	}
	if !facts.IsLate && !facts.IsEarlyDeparture {
		return notice.NoticeResponse{}, notice.ErrNoAnomaly
	}

	// The referenced event must belong to the anomalous day itself, not
	// just to the employee.
	eventOnDate := false
	for _, dayEvent := range facts.Events {
		if dayEvent.ID == event.ID {
			eventOnDate = true
			break
		}
	}
	if !eventOnDate {
		return notice.NoticeResponse{}, notice.ErrEventDateMismatch
	}

	date, _ := validator.IsValidDate(req.Date)

	exists, err := s.NoticeRepository.ExistsForEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to check for existing notice: %w", err)
	}
	if exists {
		return notice.NoticeResponse{}, notice.ErrNoticeExists
	}

	id, err := uuid.NewV7()
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to generate notice id: %w", err)
	}

	created, err := s.NoticeRepository.Create(ctx, notice.LateNotice{
		ID:           id.String(),
		EmployeeID:   req.EmployeeID,
		SupervisorID: supervisorID,
		ClockEventID: req.ClockEventID,
		Date:         date,
	})
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to create late notice: %w", err)
	}

	return notice.MapNoticeToResponse(created), nil
}

// Justify implements notice.LedgerService. Re-justifying overwrites the
// previous text.
func (s *LedgerServiceImpl) Justify(ctx context.Context, req notice.JustifyNoticeRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return notice.NoticeResponse{}, err
	}

	found, err := s.NoticeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, notice.ErrNoticeNotFound) {
			return notice.NoticeResponse{}, notice.ErrNoticeNotFound
		}
		return notice.NoticeResponse{}, fmt.Errorf("failed to get late notice: %w", err)
	}
	if found.EmployeeID != employeeID {
		return notice.NoticeResponse{}, notice.ErrNotNoticeOwner
	}

	if err := s.NoticeRepository.SetJustification(ctx, req.ID, req.Text); err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to justify late notice: %w", err)
	}

	updated, err := s.NoticeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to get updated late notice: %w", err)
	}
	return notice.MapNoticeToResponse(updated), nil
}

// MarkRead implements notice.LedgerService. Marking twice is a no-op.
func (s *LedgerServiceImpl) MarkRead(ctx context.Context, id string) (notice.NoticeResponse, error) {
	found, err := s.NoticeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notice.ErrNoticeNotFound) {
			return notice.NoticeResponse{}, notice.ErrNoticeNotFound
		}
		return notice.NoticeResponse{}, fmt.Errorf("failed to get late notice: %w", err)
	}

	if !found.Read {
		if err := s.NoticeRepository.MarkRead(ctx, id); err != nil {
			return notice.NoticeResponse{}, fmt.Errorf("failed to mark late notice as read: %w", err)
		}
		found.Read = true
	}

	return notice.MapNoticeToResponse(found), nil
}

// ListMyNotices implements notice.LedgerService.
func (s *LedgerServiceImpl) ListMyNotices(ctx context.Context) ([]notice.NoticeResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.ListForEmployee(ctx, employeeID)
}

// ListForEmployee implements notice.LedgerService.
func (s *LedgerServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]notice.NoticeResponse, error) {
	notices, err := s.NoticeRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list late notices: %w", err)
	}

	responses := make([]notice.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, notice.MapNoticeToResponse(n))
	}
	return responses, nil
}
