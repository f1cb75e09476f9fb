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

type departmentScheduleRepositoryImpl struct {
	db *database.DB
}

// Create implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepositoryImpl) Create(ctx context.Context, s schedule.DepartmentSchedule) (schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO department_schedules (id, department, name, entry_time, exit_time, tolerance_minutes, flexible)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Department, s.Name, s.EntryTime, s.ExitTime, s.ToleranceMinutes, s.Flexible,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to create department schedule: %w", err)
	}

	return s, nil
}

// GetByID implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department, name, entry_time, exit_time, tolerance_minutes, flexible, created_at, updated_at
		FROM department_schedules
		WHERE id = $1
	`

	var s schedule.DepartmentSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Department, &s.Name, &s.EntryTime, &s.ExitTime,
		&s.ToleranceMinutes, &s.Flexible, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.DepartmentSchedule{}, schedule.ErrScheduleNotFound
	}
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to get department schedule: %w", err)
	}

	overrides, err := r.overridesFor(ctx, []string{s.ID})
	if err != nil {
		return schedule.DepartmentSchedule{}, err
	}
	s.Overrides = overrides[s.ID]

	return s, nil
}

// GetByDepartment implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepositoryImpl) GetByDepartment(ctx context.Context, department string) ([]schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department, name, entry_time, exit_time, tolerance_minutes, flexible, created_at, updated_at
		FROM department_schedules
		WHERE department = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list department schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.DepartmentSchedule
	var ids []string
	for rows.Next() {
		var s schedule.DepartmentSchedule
		err := rows.Scan(
			&s.ID, &s.Department, &s.Name, &s.EntryTime, &s.ExitTime,
			&s.ToleranceMinutes, &s.Flexible, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department schedule: %w", err)
		}
		schedules = append(schedules, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department schedules: %w", err)
	}

	if len(ids) == 0 {
		return schedules, nil
	}

	overrides, err := r.overridesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		schedules[i].Overrides = overrides[schedules[i].ID]
	}

	return schedules, nil
}

func (r *departmentScheduleRepositoryImpl) overridesFor(ctx context.Context, scheduleIDs []string) (map[string][]schedule.DayOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, schedule_id, day_of_week, entry_time, exit_time,
			   exit_time_morning, entry_time_afternoon, day_off, created_at, updated_at
		FROM schedule_day_overrides
		WHERE schedule_id = ANY($1)
		ORDER BY schedule_id, day_of_week
	`

	rows, err := q.Query(ctx, query, scheduleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list day overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string][]schedule.DayOverride)
	for rows.Next() {
		var o schedule.DayOverride
		err := rows.Scan(
			&o.ID, &o.ScheduleID, &o.DayOfWeek, &o.EntryTime, &o.ExitTime,
			&o.ExitTimeMorning, &o.EntryTimeAfternoon, &o.DayOff, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day override: %w", err)
		}
		overrides[o.ScheduleID] = append(overrides[o.ScheduleID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day overrides: %w", err)
	}

	return overrides, nil
}

// Update implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepositoryImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) error {
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

	args = append(args, req.ID)

	sql := "UPDATE department_schedules SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to update department schedule: %w", err)
	}

	return nil
}

// Delete implements schedule.DepartmentScheduleRepository. Overrides go
// with it via ON DELETE CASCADE.
func (r *departmentScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM department_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

// PutOverride implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepositoryImpl) PutOverride(ctx context.Context, o schedule.DayOverride) (schedule.DayOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_day_overrides (
			id, schedule_id, day_of_week, entry_time, exit_time,
			exit_time_morning, entry_time_afternoon, day_off
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (schedule_id, day_of_week) DO UPDATE SET
			entry_time = EXCLUDED.entry_time,
			exit_time = EXCLUDED.exit_time,
			exit_time_morning = EXCLUDED.exit_time_morning,
			entry_time_afternoon = EXCLUDED.entry_time_afternoon,
			day_off = EXCLUDED.day_off,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		o.ID, o.ScheduleID, o.DayOfWeek, o.EntryTime, o.ExitTime,
		o.ExitTimeMorning, o.EntryTimeAfternoon, o.DayOff,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return schedule.DayOverride{}, fmt.Errorf("failed to put day override: %w", err)
	}

	return o, nil
}

// DeleteOverride implements schedule.DepartmentScheduleRepository.
func (r *departmentScheduleRepositoryImpl) DeleteOverride(ctx context.Context, scheduleID string, dayOfWeek int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM schedule_day_overrides WHERE schedule_id = $1 AND day_of_week = $2`,
		scheduleID, dayOfWeek,
	)
	if err != nil {
		return fmt.Errorf("failed to delete day override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrOverrideNotFound
	}

	return nil
}

func NewDepartmentScheduleRepository(db *database.DB) schedule.DepartmentScheduleRepository {
	return &departmentScheduleRepositoryImpl{db: db}
}
