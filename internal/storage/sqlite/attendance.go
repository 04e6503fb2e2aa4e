package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

const attendanceColumns = `id, class_id, person_id, date, present, note, created_at, updated_at`

// UpsertAttendance creates an attendance record, or updates the existing
// record for the same class, person and date.
func (s *SQLiteStore) UpsertAttendance(ctx context.Context, attendance *models.Attendance) (bool, error) {
	stamp(&attendance.CreatedAt, &attendance.UpdatedAt)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := scanAttendance(tx.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE class_id = ? AND person_id = ? AND date = ?`,
		attendance.ClassID, attendance.PersonID, attendance.Date,
	))
	if err != nil && !isNoRows(err) {
		return false, fmt.Errorf("failed to look up attendance: %w", err)
	}

	created := existing == nil
	if created {
		if attendance.ID == "" {
			attendance.ID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO attendance (`+attendanceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			attendance.ID, attendance.ClassID, attendance.PersonID, attendance.Date,
			attendance.Present, nullable(attendance.Note), attendance.CreatedAt, attendance.UpdatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert attendance: %w", err)
		}
	} else {
		attendance.ID = existing.ID
		attendance.CreatedAt = existing.CreatedAt
		_, err = tx.ExecContext(ctx,
			"UPDATE attendance SET present = ?, note = ?, updated_at = ? WHERE id = ?",
			attendance.Present, nullable(attendance.Note), attendance.UpdatedAt, attendance.ID,
		)
		if err != nil {
			return false, fmt.Errorf("failed to update attendance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// GetAttendance retrieves an attendance record by ID.
func (s *SQLiteStore) GetAttendance(ctx context.Context, id string) (*models.Attendance, error) {
	attendance, err := scanAttendance(s.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE id = ?`, id))
	if isNoRows(err) {
		return nil, notFound("attendance", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return attendance, nil
}

// ListAttendanceByClassAndDate retrieves the records of one class session.
func (s *SQLiteStore) ListAttendanceByClassAndDate(ctx context.Context, classID, date string) ([]*models.Attendance, error) {
	return s.queryAttendance(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE class_id = ? AND date = ?
		 ORDER BY created_at, rowid`,
		classID, date)
}

// ListAttendanceByClass retrieves all records of a class, latest date first.
func (s *SQLiteStore) ListAttendanceByClass(ctx context.Context, classID string) ([]*models.Attendance, error) {
	return s.queryAttendance(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE class_id = ?
		 ORDER BY date DESC, created_at DESC, rowid DESC`,
		classID)
}

// ListAttendanceByPerson retrieves a person's records within an optional date range.
func (s *SQLiteStore) ListAttendanceByPerson(ctx context.Context, personID, from, to string) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE person_id = ?`
	args := []any{personID}
	if from != "" {
		query += " AND date >= ?"
		args = append(args, from)
	}
	if to != "" {
		query += " AND date <= ?"
		args = append(args, to)
	}
	query += " ORDER BY date DESC, created_at DESC, rowid DESC"
	return s.queryAttendance(ctx, query, args...)
}

// UpdateAttendance overwrites an attendance record.
func (s *SQLiteStore) UpdateAttendance(ctx context.Context, attendance *models.Attendance) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE attendance
		 SET class_id = ?, person_id = ?, date = ?, present = ?, note = ?, updated_at = ?
		 WHERE id = ?`,
		attendance.ClassID, attendance.PersonID, attendance.Date, attendance.Present,
		nullable(attendance.Note), attendance.UpdatedAt, attendance.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("attendance for class %s, person %s on %s: %w",
			attendance.ClassID, attendance.PersonID, attendance.Date, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return checkAffected(res, "attendance", attendance.ID)
}

// DeleteAttendance removes an attendance record by ID.
func (s *SQLiteStore) DeleteAttendance(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM attendance WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return checkAffected(res, "attendance", id)
}

func (s *SQLiteStore) queryAttendance(ctx context.Context, query string, args ...any) ([]*models.Attendance, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, attendance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

func scanAttendance(row scanner) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	var note sql.NullString
	err := row.Scan(&attendance.ID, &attendance.ClassID, &attendance.PersonID, &attendance.Date,
		&attendance.Present, &note, &attendance.CreatedAt, &attendance.UpdatedAt)
	if err != nil {
		return nil, err
	}
	attendance.Note = note.String
	return attendance, nil
}
