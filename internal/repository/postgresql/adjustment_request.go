package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/adjustment"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type requestRepositoryImpl struct {
	db *database.DB
}

const requestColumns = `
	id, clock_event_id, employee_id, original_timestamp, requested_timestamp,
	reason, status, supervisor_id, rejection_reason, resolved_at, created_at, updated_at
`

func scanRequest(row pgx.Row) (adjustment.Request, error) {
	var req adjustment.Request
	err := row.Scan(
		&req.ID, &req.ClockEventID, &req.EmployeeID, &req.OriginalTimestamp,
		&req.RequestedTimestamp, &req.Reason, &req.Status, &req.SupervisorID,
		&req.RejectionReason, &req.ResolvedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements adjustment.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, req adjustment.Request) (adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustment_requests (
			id, clock_event_id, employee_id, original_timestamp,
			requested_timestamp, reason, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.ClockEventID, req.EmployeeID, req.OriginalTimestamp,
		req.RequestedTimestamp, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return req, nil
}

// GetByID implements adjustment.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM adjustment_requests WHERE id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return adjustment.Request{}, adjustment.ErrRequestNotFound
	}
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}

	return req, nil
}

// HasPendingForEvent implements adjustment.RequestRepository.
func (r *requestRepositoryImpl) HasPendingForEvent(ctx context.Context, clockEventID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM adjustment_requests
			WHERE clock_event_id = $1 AND status = 'PENDING'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, clockEventID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending adjustment request: %w", err)
	}

	return exists, nil
}

// Resolve implements adjustment.RequestRepository. The WHERE clause pins the
// row to PENDING so a concurrent resolution cannot overwrite a terminal
// status.
func (r *requestRepositoryImpl) Resolve(ctx context.Context, id string, status adjustment.Status, supervisorID string, rejectionReason *string, resolvedAt time.Time) (adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE adjustment_requests
		SET status = $1, supervisor_id = $2, rejection_reason = $3, resolved_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'PENDING'
		RETURNING ` + requestColumns

	req, err := scanRequest(q.QueryRow(ctx, query, status, supervisorID, rejectionReason, resolvedAt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the request does not exist or it is already terminal.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return adjustment.Request{}, getErr
		}
		return adjustment.Request{}, adjustment.ErrRequestAlreadyResolved
	}
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to resolve adjustment request: %w", err)
	}

	return req, nil
}

// ListByEmployee implements adjustment.RequestRepository.
func (r *requestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM adjustment_requests WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListPending implements adjustment.RequestRepository.
func (r *requestRepositoryImpl) ListPending(ctx context.Context) ([]adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM adjustment_requests WHERE status = 'PENDING' ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending adjustment requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]adjustment.Request, error) {
	var requests []adjustment.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustment requests: %w", err)
	}

	return requests, nil
}

func NewRequestRepository(db *database.DB) adjustment.RequestRepository {
	return &requestRepositoryImpl{db: db}
}
