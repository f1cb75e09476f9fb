package adjustment

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// HasPendingForEvent reports whether an open request already targets the
	// clock event
	HasPendingForEvent(ctx context.Context, clockEventID string) (bool, error)
	// Resolve moves a PENDING request to a terminal status. The update is
	// conditional on the current status still being PENDING, so concurrent
	// resolutions have exactly one winner; the loser gets
	// ErrRequestAlreadyResolved.
	Resolve(ctx context.Context, id string, status Status, supervisorID string, rejectionReason *string, resolvedAt time.Time) (Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)
}
