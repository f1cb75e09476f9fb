package adjustment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/adjustment"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
	"github.com/horariolabs/fichaje-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// txFunc runs fn inside a transaction whose handle travels in the context,
// so repository calls made from fn join it.
type txFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type WorkflowServiceImpl struct {
	withinTx txFunc
	adjustment.RequestRepository
	clock.EventRepository
}

func NewWorkflowService(
	db *database.DB,
	requestRepo adjustment.RequestRepository,
	eventRepo clock.EventRepository,
) adjustment.WorkflowService {
	return &WorkflowServiceImpl{
		withinTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
		RequestRepository: requestRepo,
		EventRepository:   eventRepo,
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

// Create implements adjustment.WorkflowService.
func (s *WorkflowServiceImpl) Create(ctx context.Context, req adjustment.CreateRequestRequest) (adjustment.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.RequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return adjustment.RequestResponse{}, err
	}

	event, err := s.EventRepository.GetByID(ctx, req.ClockEventID)
	if err != nil {
		if errors.Is(err, clock.ErrEventNotFound) {
			return adjustment.RequestResponse{}, clock.ErrEventNotFound
		}
		return adjustment.RequestResponse{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	if event.EmployeeID != employeeID {
		return adjustment.RequestResponse{}, adjustment.ErrNotRequestOwner
	}

	hasPending, err := s.RequestRepository.HasPendingForEvent(ctx, req.ClockEventID)
	if err != nil {
		return adjustment.RequestResponse{}, fmt.Errorf("failed to check for open requests: %w", err)
	}
	if hasPending {
		return adjustment.RequestResponse{}, adjustment.ErrDuplicatePendingRequest
	}

	requested, _ := validator.IsValidDateTime(req.RequestedTimestamp)

	id, err := uuid.NewV7()
	if err != nil {
		return adjustment.RequestResponse{}, fmt.Errorf("failed to generate request id: %w", err)
	}

	created, err := s.RequestRepository.Create(ctx, adjustment.Request{
		ID:           id.String(),
		ClockEventID: req.ClockEventID,
		EmployeeID:   employeeID,
		// Snapshot the event's timestamp now; it is the audit baseline even
		// after an approval rewrites the event.
		OriginalTimestamp:  event.Timestamp,
		RequestedTimestamp: requested.UTC(),
		Reason:             req.Reason,
		Status:             adjustment.StatusPending,
	})
	if err != nil {
		return adjustment.RequestResponse{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return adjustment.MapRequestToResponse(created), nil
}

// Approve implements adjustment.WorkflowService. The status transition and
// the clock-event rewrite happen in one transaction; if either fails the
// request stays PENDING and the event keeps its timestamp.
func (s *WorkflowServiceImpl) Approve(ctx context.Context, id string) (adjustment.RequestResponse, error) {
	supervisorID, err := employeeIDFromContext(ctx)
	if err != nil {
		return adjustment.RequestResponse{}, err
	}

	var resolved adjustment.Request
	err = s.withinTx(ctx, func(txCtx context.Context) error {
		var txErr error
		resolved, txErr = s.RequestRepository.Resolve(txCtx, id, adjustment.StatusApproved, supervisorID, nil, time.Now().UTC())
		if txErr != nil {
			return txErr
		}

		return s.EventRepository.UpdateTimestamp(txCtx, resolved.ClockEventID, resolved.RequestedTimestamp)
	})
	if err != nil {
		switch {
		case errors.Is(err, adjustment.ErrRequestNotFound):
			return adjustment.RequestResponse{}, adjustment.ErrRequestNotFound
		case errors.Is(err, adjustment.ErrRequestAlreadyResolved):
			return adjustment.RequestResponse{}, adjustment.ErrRequestAlreadyResolved
		case errors.Is(err, clock.ErrEventNotFound):
			// The event vanished between request and approval; the rollback
			// leaves the request PENDING.
			return adjustment.RequestResponse{}, clock.ErrEventNotFound
		}
		return adjustment.RequestResponse{}, fmt.Errorf("failed to approve adjustment request: %w", err)
	}

	return adjustment.MapRequestToResponse(resolved), nil
}

// Reject implements adjustment.WorkflowService. The clock event is left
// untouched.
func (s *WorkflowServiceImpl) Reject(ctx context.Context, req adjustment.RejectRequestRequest) (adjustment.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.RequestResponse{}, err
	}

	supervisorID, err := employeeIDFromContext(ctx)
	if err != nil {
		return adjustment.RequestResponse{}, err
	}

	resolved, err := s.RequestRepository.Resolve(ctx, req.ID, adjustment.StatusRejected, supervisorID, &req.RejectionReason, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, adjustment.ErrRequestNotFound):
			return adjustment.RequestResponse{}, adjustment.ErrRequestNotFound
		case errors.Is(err, adjustment.ErrRequestAlreadyResolved):
			return adjustment.RequestResponse{}, adjustment.ErrRequestAlreadyResolved
		}
		return adjustment.RequestResponse{}, fmt.Errorf("failed to reject adjustment request: %w", err)
	}

	return adjustment.MapRequestToResponse(resolved), nil
}

// Get implements adjustment.WorkflowService.
func (s *WorkflowServiceImpl) Get(ctx context.Context, id string) (adjustment.RequestResponse, error) {
	found, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adjustment.ErrRequestNotFound) {
			return adjustment.RequestResponse{}, adjustment.ErrRequestNotFound
		}
		return adjustment.RequestResponse{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}
	return adjustment.MapRequestToResponse(found), nil
}

// ListMyRequests implements adjustment.WorkflowService.
func (s *WorkflowServiceImpl) ListMyRequests(ctx context.Context) ([]adjustment.RequestResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.RequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}

	responses := make([]adjustment.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, adjustment.MapRequestToResponse(r))
	}
	return responses, nil
}

// ListPending implements adjustment.WorkflowService.
func (s *WorkflowServiceImpl) ListPending(ctx context.Context) ([]adjustment.RequestResponse, error) {
	requests, err := s.RequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending adjustment requests: %w", err)
	}

	responses := make([]adjustment.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, adjustment.MapRequestToResponse(r))
	}
	return responses, nil
}
