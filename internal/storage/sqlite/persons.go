package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

const personColumns = `id, name, birth_date, national_id, photo_url, enrollment_code, status, created_at, updated_at`

// CreatePerson persists a new person, generating a unique enrollment code.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.Status == "" {
		person.Status = models.PersonActive
	}
	stamp(&person.CreatedAt, &person.UpdatedAt)

	// A caller-supplied code is inserted once; generated codes are retried on collision.
	generate := person.EnrollmentCode == ""
	for attempt := 0; attempt < enrollmentCodeAttempts; attempt++ {
		if generate {
			code, err := generateEnrollmentCode()
			if err != nil {
				return err
			}
			person.EnrollmentCode = code
		}

		_, err := s.db.ExecContext(ctx,
			`INSERT INTO persons (`+personColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			person.ID, person.Name, person.BirthDate, nullable(person.NationalID), nullable(person.PhotoURL),
			person.EnrollmentCode, person.Status, person.CreatedAt, person.UpdatedAt,
		)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to insert person: %w", err)
		}
		if !generate || !strings.Contains(err.Error(), "enrollment_code") {
			return fmt.Errorf("person %s: %w", person.ID, storage.ErrConflict)
		}
	}

	return fmt.Errorf("failed to generate a unique enrollment code after %d attempts: %w",
		enrollmentCodeAttempts, storage.ErrConflict)
}

// GetPerson retrieves a person by ID.
func (s *SQLiteStore) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM persons WHERE id = ?`, id)
	person, err := scanPerson(row)
	if isNoRows(err) {
		return nil, notFound("person", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// ListPersons retrieves all persons, newest first.
func (s *SQLiteStore) ListPersons(ctx context.Context) ([]*models.Person, error) {
	return s.queryPersons(ctx,
		`SELECT `+personColumns+` FROM persons ORDER BY created_at DESC, rowid DESC`)
}

// ListPersonsByStatus retrieves persons with the given status, newest first.
func (s *SQLiteStore) ListPersonsByStatus(ctx context.Context, status models.PersonStatus) ([]*models.Person, error) {
	return s.queryPersons(ctx,
		`SELECT `+personColumns+` FROM persons WHERE status = ? ORDER BY created_at DESC, rowid DESC`,
		status)
}

// UpdatePerson overwrites the mutable fields of a person.
func (s *SQLiteStore) UpdatePerson(ctx context.Context, person *models.Person) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE persons
		 SET name = ?, birth_date = ?, national_id = ?, photo_url = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		person.Name, person.BirthDate, nullable(person.NationalID), nullable(person.PhotoURL),
		person.Status, person.UpdatedAt, person.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	return checkAffected(res, "person", person.ID)
}

// DeletePerson removes a person by ID. References from rosters, revenues and
// attendance records are left in place.
func (s *SQLiteStore) DeletePerson(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM persons WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return checkAffected(res, "person", id)
}

func (s *SQLiteStore) queryPersons(ctx context.Context, query string, args ...any) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []*models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}
	return persons, nil
}

func scanPerson(row scanner) (*models.Person, error) {
	person := &models.Person{}
	var nationalID, photoURL sql.NullString
	err := row.Scan(&person.ID, &person.Name, &person.BirthDate, &nationalID, &photoURL,
		&person.EnrollmentCode, &person.Status, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return nil, err
	}
	person.NationalID = nationalID.String
	person.PhotoURL = photoURL.String
	return person, nil
}
