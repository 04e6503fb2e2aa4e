package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/ludus/internal/models"
)

const costColumns = `id, kind, description, amount, date, created_at, updated_at`

// CreateCost persists a new cost.
func (s *SQLiteStore) CreateCost(ctx context.Context, cost *models.Cost) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}
	stamp(&cost.CreatedAt, &cost.UpdatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO costs (`+costColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cost.ID, cost.Kind, cost.Description, cost.Amount, cost.Date, cost.CreatedAt, cost.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cost: %w", err)
	}
	return nil
}

// GetCost retrieves a cost by ID.
func (s *SQLiteStore) GetCost(ctx context.Context, id string) (*models.Cost, error) {
	cost := &models.Cost{}
	err := s.db.QueryRowContext(ctx, `SELECT `+costColumns+` FROM costs WHERE id = ?`, id).
		Scan(&cost.ID, &cost.Kind, &cost.Description, &cost.Amount, &cost.Date, &cost.CreatedAt, &cost.UpdatedAt)
	if isNoRows(err) {
		return nil, notFound("cost", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cost: %w", err)
	}
	return cost, nil
}

// ListCosts retrieves all costs, newest first.
func (s *SQLiteStore) ListCosts(ctx context.Context) ([]*models.Cost, error) {
	return s.queryCosts(ctx, `SELECT `+costColumns+` FROM costs ORDER BY created_at DESC, rowid DESC`)
}

// ListCostsByKind retrieves costs of one kind, newest first.
func (s *SQLiteStore) ListCostsByKind(ctx context.Context, kind models.CostKind) ([]*models.Cost, error) {
	return s.queryCosts(ctx,
		`SELECT `+costColumns+` FROM costs WHERE kind = ? ORDER BY created_at DESC, rowid DESC`, kind)
}

// ListCostsByDate retrieves costs dated within [from, to], latest first.
func (s *SQLiteStore) ListCostsByDate(ctx context.Context, from, to string) ([]*models.Cost, error) {
	return s.queryCosts(ctx,
		`SELECT `+costColumns+` FROM costs WHERE date >= ? AND date <= ?
		 ORDER BY date DESC, created_at DESC, rowid DESC`,
		from, to)
}

// UpdateCost overwrites the mutable fields of a cost.
func (s *SQLiteStore) UpdateCost(ctx context.Context, cost *models.Cost) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE costs SET kind = ?, description = ?, amount = ?, date = ?, updated_at = ? WHERE id = ?`,
		cost.Kind, cost.Description, cost.Amount, cost.Date, cost.UpdatedAt, cost.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cost: %w", err)
	}
	return checkAffected(res, "cost", cost.ID)
}

// DeleteCost removes a cost by ID.
func (s *SQLiteStore) DeleteCost(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM costs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete cost: %w", err)
	}
	return checkAffected(res, "cost", id)
}

func (s *SQLiteStore) queryCosts(ctx context.Context, query string, args ...any) ([]*models.Cost, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list costs: %w", err)
	}
	defer rows.Close()

	var costs []*models.Cost
	for rows.Next() {
		cost := &models.Cost{}
		if err := rows.Scan(&cost.ID, &cost.Kind, &cost.Description, &cost.Amount, &cost.Date,
			&cost.CreatedAt, &cost.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cost: %w", err)
		}
		costs = append(costs, cost)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate costs: %w", err)
	}
	return costs, nil
}
