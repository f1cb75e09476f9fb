package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentShiftRepositoryImpl struct {
	db *database.DB
}

// Create implements schedule.DepartmentShiftRepository.
func (r *departmentShiftRepositoryImpl) Create(ctx context.Context, s schedule.DepartmentShift) (schedule.DepartmentShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO department_shifts (
			id, department, name, entry_time, exit_time, exit_time_morning,
			entry_time_afternoon, tolerance_minutes, flexible, active_weekdays
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Department, s.Name, s.EntryTime, s.ExitTime, s.ExitTimeMorning,
		s.EntryTimeAfternoon, s.ToleranceMinutes, s.Flexible, s.ActiveWeekdays,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.DepartmentShift{}, fmt.Errorf("failed to create department shift: %w", err)
	}

	return s, nil
}

// GetByID implements schedule.DepartmentShiftRepository.
func (r *departmentShiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.DepartmentShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department, name, entry_time, exit_time, exit_time_morning,
			   entry_time_afternoon, tolerance_minutes, flexible, active_weekdays, created_at, updated_at
		FROM department_shifts
		WHERE id = $1
	`

	var s schedule.DepartmentShift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Department, &s.Name, &s.EntryTime, &s.ExitTime, &s.ExitTimeMorning,
		&s.EntryTimeAfternoon, &s.ToleranceMinutes, &s.Flexible, &s.ActiveWeekdays,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.DepartmentShift{}, schedule.ErrShiftNotFound
	}
	if err != nil {
		return schedule.DepartmentShift{}, fmt.Errorf("failed to get department shift: %w", err)
	}

	return s, nil
}

// GetByDepartment implements schedule.DepartmentShiftRepository.
func (r *departmentShiftRepositoryImpl) GetByDepartment(ctx context.Context, department string) ([]schedule.DepartmentShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department, name, entry_time, exit_time, exit_time_morning,
			   entry_time_afternoon, tolerance_minutes, flexible, active_weekdays, created_at, updated_at
		FROM department_shifts
		WHERE department = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list department shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.DepartmentShift
	for rows.Next() {
		var s schedule.DepartmentShift
		err := rows.Scan(
			&s.ID, &s.Department, &s.Name, &s.EntryTime, &s.ExitTime, &s.ExitTimeMorning,
			&s.EntryTimeAfternoon, &s.ToleranceMinutes, &s.Flexible, &s.ActiveWeekdays,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department shifts: %w", err)
	}

	return shifts, nil
}

// Update implements schedule.DepartmentShiftRepository.
func (r *departmentShiftRepositoryImpl) Update(ctx context.Context, req schedule.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.EntryTime != nil {
		updates = append(updates, fmt.Sprintf("entry_time = $%d", argIdx))
		args = append(args, *req.EntryTime)
		argIdx++
	}
	if req.ExitTime != nil {
		updates = append(updates, fmt.Sprintf("exit_time = $%d", argIdx))
		args = append(args, *req.ExitTime)
		argIdx++
	}
	if req.ToleranceMinutes != nil {
		updates = append(updates, fmt.Sprintf("tolerance_minutes = $%d", argIdx))
		args = append(args, *req.ToleranceMinutes)
		argIdx++
	}
	if req.Flexible != nil {
		updates = append(updates, fmt.Sprintf("flexible = $%d", argIdx))
		args = append(args, *req.Flexible)
		argIdx++
	}
	if req.ActiveWeekdays != nil {
		updates = append(updates, fmt.Sprintf("active_weekdays = $%d", argIdx))
		args = append(args, req.ActiveWeekdays)
		argIdx++
	}

	args = append(args, req.ID)

	sql := "UPDATE department_shifts SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update department shift: %w", err)
	}

	return nil
}

// Delete implements schedule.DepartmentShiftRepository. Existing
// assignments keep their shift_id; resolution treats them as dangling.
func (r *departmentShiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM department_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

func NewDepartmentShiftRepository(db *database.DB) schedule.DepartmentShiftRepository {
	return &departmentShiftRepositoryImpl{db: db}
}
