package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/notice"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type noticeRepositoryImpl struct {
	db *database.DB
}

const noticeColumns = `
	id, employee_id, supervisor_id, clock_event_id, date, justified,
	justification_text, read, created_at, updated_at
`

func scanNotice(row pgx.Row) (notice.LateNotice, error) {
	var n notice.LateNotice
	err := row.Scan(
		&n.ID, &n.EmployeeID, &n.SupervisorID, &n.ClockEventID, &n.Date,
		&n.Justified, &n.JustificationText, &n.Read, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

// Create implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) Create(ctx context.Context, n notice.LateNotice) (notice.LateNotice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO late_notices (id, employee_id, supervisor_id, clock_event_id, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.EmployeeID, n.SupervisorID, n.ClockEventID, n.Date,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return notice.LateNotice{}, fmt.Errorf("failed to create late notice: %w", err)
	}

	return n, nil
}

// GetByID implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) GetByID(ctx context.Context, id string) (notice.LateNotice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + noticeColumns + ` FROM late_notices WHERE id = $1`

	n, err := scanNotice(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return notice.LateNotice{}, notice.ErrNoticeNotFound
	}
	if err != nil {
		return notice.LateNotice{}, fmt.Errorf("failed to get late notice: %w", err)
	}

	return n, nil
}

// ExistsForEmployeeAndDate implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) ExistsForEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM late_notices WHERE employee_id = $1 AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing late notice: %w", err)
	}

	return exists, nil
}

// SetJustification implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) SetJustification(ctx context.Context, id string, text string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE late_notices
		SET justified = TRUE, justification_text = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, text, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notice.ErrNoticeNotFound
		}
		return fmt.Errorf("failed to set late notice justification: %w", err)
	}

	return nil
}

// MarkRead implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE late_notices
		SET read = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notice.ErrNoticeNotFound
		}
		return fmt.Errorf("failed to mark late notice as read: %w", err)
	}

	return nil
}

// ListByEmployee implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]notice.LateNotice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + noticeColumns + ` FROM late_notices WHERE employee_id = $1 ORDER BY date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list late notices: %w", err)
	}
	defer rows.Close()

	var notices []notice.LateNotice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan late notice: %w", err)
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate late notices: %w", err)
	}

	return notices, nil
}

func NewNoticeRepository(db *database.DB) notice.NoticeRepository {
	return &noticeRepositoryImpl{db: db}
}
