package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/ludus/internal/models"
)

const revenueColumns = `id, person_id, kind, amount, status, due_date, paid_date, reference, description, discount, created_at, updated_at`

// CreateRevenue persists a new revenue.
func (s *SQLiteStore) CreateRevenue(ctx context.Context, revenue *models.Revenue) error {
	if revenue.ID == "" {
		revenue.ID = uuid.New().String()
	}
	if revenue.Status == "" {
		revenue.Status = models.RevenuePending
	}
	stamp(&revenue.CreatedAt, &revenue.UpdatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO revenues (`+revenueColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		revenue.ID, revenue.PersonID, revenue.Kind, revenue.Amount, revenue.Status,
		revenue.DueDate, nullable(revenue.PaidDate), revenue.Reference, revenue.Description,
		revenue.Discount, revenue.CreatedAt, revenue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert revenue: %w", err)
	}
	return nil
}

// GetRevenue retrieves a revenue by ID.
func (s *SQLiteStore) GetRevenue(ctx context.Context, id string) (*models.Revenue, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+revenueColumns+` FROM revenues WHERE id = ?`, id)
	revenue, err := scanRevenue(row)
	if isNoRows(err) {
		return nil, notFound("revenue", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue: %w", err)
	}
	return revenue, nil
}

// ListRevenues retrieves all revenues, newest first.
func (s *SQLiteStore) ListRevenues(ctx context.Context) ([]*models.Revenue, error) {
	return s.queryRevenues(ctx,
		`SELECT `+revenueColumns+` FROM revenues ORDER BY created_at DESC, rowid DESC`)
}

// ListRevenuesByPerson retrieves the revenues charged to a person, newest first.
func (s *SQLiteStore) ListRevenuesByPerson(ctx context.Context, personID string) ([]*models.Revenue, error) {
	return s.queryRevenues(ctx,
		`SELECT `+revenueColumns+` FROM revenues WHERE person_id = ? ORDER BY created_at DESC, rowid DESC`,
		personID)
}

// ListRevenuesByStatus retrieves revenues with the given status, newest first.
func (s *SQLiteStore) ListRevenuesByStatus(ctx context.Context, status models.RevenueStatus) ([]*models.Revenue, error) {
	return s.queryRevenues(ctx,
		`SELECT `+revenueColumns+` FROM revenues WHERE status = ? ORDER BY created_at DESC, rowid DESC`,
		status)
}

// ListRevenuesByDueDate retrieves revenues due within [from, to], latest due date first.
func (s *SQLiteStore) ListRevenuesByDueDate(ctx context.Context, from, to string) ([]*models.Revenue, error) {
	return s.queryRevenues(ctx,
		`SELECT `+revenueColumns+` FROM revenues
		 WHERE due_date >= ? AND due_date <= ?
		 ORDER BY due_date DESC, created_at DESC, rowid DESC`,
		from, to)
}

// UpdateRevenue overwrites the mutable fields of a revenue.
func (s *SQLiteStore) UpdateRevenue(ctx context.Context, revenue *models.Revenue) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE revenues
		 SET person_id = ?, kind = ?, amount = ?, status = ?, due_date = ?, paid_date = ?,
		     reference = ?, description = ?, discount = ?, updated_at = ?
		 WHERE id = ?`,
		revenue.PersonID, revenue.Kind, revenue.Amount, revenue.Status, revenue.DueDate,
		nullable(revenue.PaidDate), revenue.Reference, revenue.Description, revenue.Discount,
		revenue.UpdatedAt, revenue.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update revenue: %w", err)
	}
	return checkAffected(res, "revenue", revenue.ID)
}

// DeleteRevenue removes a revenue by ID.
func (s *SQLiteStore) DeleteRevenue(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM revenues WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete revenue: %w", err)
	}
	return checkAffected(res, "revenue", id)
}

func (s *SQLiteStore) queryRevenues(ctx context.Context, query string, args ...any) ([]*models.Revenue, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenues: %w", err)
	}
	defer rows.Close()

	var revenues []*models.Revenue
	for rows.Next() {
		revenue, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue: %w", err)
		}
		revenues = append(revenues, revenue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenues: %w", err)
	}
	return revenues, nil
}

func scanRevenue(row scanner) (*models.Revenue, error) {
	revenue := &models.Revenue{}
	var paidDate sql.NullString
	err := row.Scan(&revenue.ID, &revenue.PersonID, &revenue.Kind, &revenue.Amount, &revenue.Status,
		&revenue.DueDate, &paidDate, &revenue.Reference, &revenue.Description, &revenue.Discount,
		&revenue.CreatedAt, &revenue.UpdatedAt)
	if err != nil {
		return nil, err
	}
	revenue.PaidDate = paidDate.String
	return revenue, nil
}
