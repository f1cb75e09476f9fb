package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/employee"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

// GetTimezone implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) GetTimezone(ctx context.Context, department string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT timezone FROM departments WHERE name = $1`

	var tz string
	err := q.QueryRow(ctx, query, department).Scan(&tz)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", employee.ErrDepartmentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get department timezone: %w", err)
	}

	return tz, nil
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}
