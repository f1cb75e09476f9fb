package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepositoryImpl struct {
	db *database.DB
}

// Create implements clock.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, event clock.Event) (clock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clock_events (id, employee_id, department, type, occurred_at, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		event.ID, event.EmployeeID, event.Department, event.Type,
		event.Timestamp, event.Latitude, event.Longitude,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return clock.Event{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return event, nil
}

// GetByID implements clock.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (clock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, department, type, occurred_at, latitude, longitude, created_at, updated_at
		FROM clock_events
		WHERE id = $1
	`

	var event clock.Event
	err := q.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.EmployeeID, &event.Department, &event.Type,
		&event.Timestamp, &event.Latitude, &event.Longitude,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return clock.Event{}, clock.ErrEventNotFound
	}
	if err != nil {
		return clock.Event{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	return event, nil
}

// ListByEmployeeAndDate implements clock.EventRepository.
func (r *eventRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]clock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, department, type, occurred_at, latitude, longitude, created_at, updated_at
		FROM clock_events
		WHERE employee_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at
	`

	rows, err := q.Query(ctx, query, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	var events []clock.Event
	for rows.Next() {
		var event clock.Event
		err := rows.Scan(
			&event.ID, &event.EmployeeID, &event.Department, &event.Type,
			&event.Timestamp, &event.Latitude, &event.Longitude,
			&event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clock events: %w", err)
	}

	return events, nil
}

// UpdateTimestamp implements clock.EventRepository.
func (r *eventRepositoryImpl) UpdateTimestamp(ctx context.Context, id string, timestamp time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clock_events
		SET occurred_at = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, timestamp, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clock.ErrEventNotFound
		}
		return fmt.Errorf("failed to update clock event timestamp: %w", err)
	}

	return nil
}

func NewEventRepository(db *database.DB) clock.EventRepository {
	return &eventRepositoryImpl{db: db}
}
