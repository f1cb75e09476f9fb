package notice

import "context"

// LedgerService is the late-notice workflow: supervisor raises, employee
// justifies, supervisor marks read.
type LedgerService interface {
	// Raise creates a notice for an employee-day the evaluator flagged as
	// anomalous. Fails when no anomaly exists or a notice already does.
	Raise(ctx context.Context, req RaiseNoticeRequest) (NoticeResponse, error)

	// Justify stores the employee's justification text; overwrites on repeat
	Justify(ctx context.Context, req JustifyNoticeRequest) (NoticeResponse, error)

	// MarkRead flags the notice as read by the supervisor; no-op if already read
	MarkRead(ctx context.Context, id string) (NoticeResponse, error)

	// ListMyNotices returns the authenticated employee's notices
	ListMyNotices(ctx context.Context) ([]NoticeResponse, error)

	// ListForEmployee returns one employee's notices (supervisor view)
	ListForEmployee(ctx context.Context, employeeID string) ([]NoticeResponse, error)
}
