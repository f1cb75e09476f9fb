package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

// Upsert implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Upsert(ctx context.Context, a schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, employee_id, shift_id, date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			shift_id = EXCLUDED.shift_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.EmployeeID, a.ShiftID, a.Date).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to upsert shift assignment: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements schedule.ShiftAssignmentRepository. A nil
// assignment with nil error means no shift applies on that date.
func (r *shiftAssignmentRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, date, created_at, updated_at
		FROM shift_assignments
		WHERE employee_id = $1 AND date = $2
	`

	var a schedule.ShiftAssignment
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return &a, nil
}

// ListByEmployeeRange implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, date, created_at, updated_at
		FROM shift_assignments
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.ShiftAssignment
	for rows.Next() {
		var a schedule.ShiftAssignment
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift assignments: %w", err)
	}

	return assignments, nil
}

// Delete implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM shift_assignments WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}

	return nil
}

func NewShiftAssignmentRepository(db *database.DB) schedule.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}
