package adjustment

import "context"

// WorkflowService is the correction state machine over clock events.
type WorkflowService interface {
	// Create opens a PENDING request for one of the caller's own clock
	// events, snapshotting the event's current timestamp
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// Approve resolves a PENDING request and rewrites the clock event's
	// timestamp. Both writes happen in one transaction or not at all.
	Approve(ctx context.Context, id string) (RequestResponse, error)

	// Reject resolves a PENDING request with a reason; the clock event is
	// untouched
	Reject(ctx context.Context, req RejectRequestRequest) (RequestResponse, error)

	Get(ctx context.Context, id string) (RequestResponse, error)

	// ListMyRequests returns the authenticated employee's requests
	ListMyRequests(ctx context.Context) ([]RequestResponse, error)

	// ListPending is the supervisor inbox
	ListPending(ctx context.Context) ([]RequestResponse, error)
}
