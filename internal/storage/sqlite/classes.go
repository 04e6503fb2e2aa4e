package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/ludus/internal/models"
)

// CreateClass persists a new class with its weekdays and roster.
func (s *SQLiteStore) CreateClass(ctx context.Context, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.New().String()
	}
	stamp(&class.CreatedAt, &class.UpdatedAt)
	class.PersonIDs = dedupe(class.PersonIDs)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO classes (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		class.ID, class.Name, class.CreatedAt, class.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert class: %w", err)
	}

	if err := writeClassLists(ctx, tx, class); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetClass retrieves a class by ID, including weekdays and roster.
func (s *SQLiteStore) GetClass(ctx context.Context, id string) (*models.Class, error) {
	class := &models.Class{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM classes WHERE id = ?", id,
	).Scan(&class.ID, &class.Name, &class.CreatedAt, &class.UpdatedAt)
	if isNoRows(err) {
		return nil, notFound("class", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	if err := s.loadClassLists(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// ListClasses retrieves all classes, newest first.
func (s *SQLiteStore) ListClasses(ctx context.Context) ([]*models.Class, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM classes ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.CreatedAt, &class.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, class)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate classes: %w", err)
	}

	// Lists are loaded after the class rows are closed.
	for _, class := range classes {
		if err := s.loadClassLists(ctx, class); err != nil {
			return nil, err
		}
	}
	return classes, nil
}

// UpdateClass overwrites the name, weekdays and roster of a class.
func (s *SQLiteStore) UpdateClass(ctx context.Context, class *models.Class) error {
	class.PersonIDs = dedupe(class.PersonIDs)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE classes SET name = ?, updated_at = ? WHERE id = ?",
		class.Name, class.UpdatedAt, class.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	if err := checkAffected(res, "class", class.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM class_weekdays WHERE class_id = ?", class.ID); err != nil {
		return fmt.Errorf("failed to clear class weekdays: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM class_members WHERE class_id = ?", class.ID); err != nil {
		return fmt.Errorf("failed to clear class roster: %w", err)
	}
	if err := writeClassLists(ctx, tx, class); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteClass removes a class; weekdays and roster cascade.
func (s *SQLiteStore) DeleteClass(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM classes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return checkAffected(res, "class", id)
}

// AddClassMember appends a person to the end of the roster. It is a no-op,
// and leaves updated_at untouched, when the person is already on it.
func (s *SQLiteStore) AddClassMember(ctx context.Context, classID, personID string, updatedAt int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := classExists(ctx, tx, classID); err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO class_members (class_id, person_id, position)
		 SELECT ?, ?, COALESCE(MAX(position), -1) + 1 FROM class_members WHERE class_id = ?
		 ON CONFLICT (class_id, person_id) DO NOTHING`,
		classID, personID, classID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add class member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, "UPDATE classes SET updated_at = ? WHERE id = ?", updatedAt, classID); err != nil {
		return false, fmt.Errorf("failed to touch class: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// RemoveClassMember removes a person from the roster if present.
func (s *SQLiteStore) RemoveClassMember(ctx context.Context, classID, personID string, updatedAt int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := classExists(ctx, tx, classID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM class_members WHERE class_id = ? AND person_id = ?", classID, personID,
	); err != nil {
		return fmt.Errorf("failed to remove class member: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE classes SET updated_at = ? WHERE id = ?", updatedAt, classID); err != nil {
		return fmt.Errorf("failed to touch class: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func classExists(ctx context.Context, tx *sql.Tx, classID string) error {
	var exists int
	err := tx.QueryRowContext(ctx, "SELECT 1 FROM classes WHERE id = ?", classID).Scan(&exists)
	if isNoRows(err) {
		return notFound("class", classID)
	}
	if err != nil {
		return fmt.Errorf("failed to check class existence: %w", err)
	}
	return nil
}

// writeClassLists inserts the weekdays and roster of a class in order.
func writeClassLists(ctx context.Context, tx *sql.Tx, class *models.Class) error {
	for i, day := range class.Weekdays {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO class_weekdays (class_id, position, weekday) VALUES (?, ?, ?)",
			class.ID, i, day,
		); err != nil {
			return fmt.Errorf("failed to insert class weekday: %w", err)
		}
	}
	for i, personID := range class.PersonIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO class_members (class_id, person_id, position) VALUES (?, ?, ?)",
			class.ID, personID, i,
		); err != nil {
			return fmt.Errorf("failed to insert class member: %w", err)
		}
	}
	return nil
}

// loadClassLists fills Weekdays and PersonIDs of a class. Both are returned
// as non-nil slices so an empty roster serializes as [].
func (s *SQLiteStore) loadClassLists(ctx context.Context, class *models.Class) error {
	weekdays, err := s.queryStrings(ctx,
		"SELECT weekday FROM class_weekdays WHERE class_id = ? ORDER BY position", class.ID)
	if err != nil {
		return fmt.Errorf("failed to get class weekdays: %w", err)
	}
	members, err := s.queryStrings(ctx,
		"SELECT person_id FROM class_members WHERE class_id = ? ORDER BY position", class.ID)
	if err != nil {
		return fmt.Errorf("failed to get class roster: %w", err)
	}
	class.Weekdays = weekdays
	class.PersonIDs = members
	return nil
}

func (s *SQLiteStore) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// dedupe drops repeated IDs, keeping the first occurrence.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
