package notice

import (
	"context"
	"time"
)

type NoticeRepository interface {
	Create(ctx context.Context, n LateNotice) (LateNotice, error)
	GetByID(ctx context.Context, id string) (LateNotice, error)
	ExistsForEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	// SetJustification overwrites any previous justification text.
	SetJustification(ctx context.Context, id string, text string) error
	MarkRead(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]LateNotice, error)
}
