package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "ludus-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(tempDir)
	})
	return store
}

func TestPersons(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreatePerson generates ID, code and status", func(t *testing.T) {
		person := &models.Person{Name: "Maria", BirthDate: "2012-03-04"}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}

		if person.ID == "" {
			t.Error("Expected person ID to be generated")
		}
		if len(person.EnrollmentCode) != models.EnrollmentCodeLength {
			t.Errorf("Expected %d-char enrollment code, got %q", models.EnrollmentCodeLength, person.EnrollmentCode)
		}
		if person.Status != models.PersonActive {
			t.Errorf("Expected status active, got %s", person.Status)
		}
		if person.CreatedAt == 0 || person.UpdatedAt != person.CreatedAt {
			t.Errorf("Expected timestamps to be set, got %d/%d", person.CreatedAt, person.UpdatedAt)
		}
	})

	t.Run("duplicate enrollment code is a conflict", func(t *testing.T) {
		first := &models.Person{Name: "A", BirthDate: "2010-01-01", EnrollmentCode: "ABC1234"}
		if err := store.CreatePerson(ctx, first); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}

		second := &models.Person{Name: "B", BirthDate: "2010-01-01", EnrollmentCode: "ABC1234"}
		err := store.CreatePerson(ctx, second)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("UpdatePerson and GetPerson round-trip optional fields", func(t *testing.T) {
		person := &models.Person{Name: "Joana", BirthDate: "2011-07-08", CreatedAt: 100, UpdatedAt: 100}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}

		person.NationalID = "987"
		person.PhotoURL = "https://example.com/joana.jpg"
		person.Status = models.PersonLocked
		person.UpdatedAt = 200
		if err := store.UpdatePerson(ctx, person); err != nil {
			t.Fatalf("UpdatePerson failed: %v", err)
		}

		got, err := store.GetPerson(ctx, person.ID)
		if err != nil {
			t.Fatalf("GetPerson failed: %v", err)
		}
		if *got != *person {
			t.Errorf("Expected %+v, got %+v", person, got)
		}
	})

	t.Run("missing person is ErrNotFound", func(t *testing.T) {
		if _, err := store.GetPerson(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetPerson: expected ErrNotFound, got %v", err)
		}
		err := store.UpdatePerson(ctx, &models.Person{ID: "missing", Name: "x", BirthDate: "2010-01-01", Status: models.PersonActive})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdatePerson: expected ErrNotFound, got %v", err)
		}
		if err := store.DeletePerson(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeletePerson: expected ErrNotFound, got %v", err)
		}
	})
}

func TestClasses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	class := &models.Class{
		Name:      "Futsal",
		Weekdays:  []string{"segunda", "quarta"},
		PersonIDs: []string{"p1", "p2", "p1"},
	}
	if err := store.CreateClass(ctx, class); err != nil {
		t.Fatalf("CreateClass failed: %v", err)
	}

	got, err := store.GetClass(ctx, class.ID)
	if err != nil {
		t.Fatalf("GetClass failed: %v", err)
	}
	if !reflect.DeepEqual(got.PersonIDs, []string{"p1", "p2"}) {
		t.Errorf("Expected deduplicated roster, got %v", got.PersonIDs)
	}
	if !reflect.DeepEqual(got.Weekdays, []string{"segunda", "quarta"}) {
		t.Errorf("Expected weekdays in order, got %v", got.Weekdays)
	}

	added, err := store.AddClassMember(ctx, class.ID, "p3", 500)
	if err != nil || !added {
		t.Fatalf("AddClassMember: expected added, got %v, %v", added, err)
	}
	added, err = store.AddClassMember(ctx, class.ID, "p1", 600)
	if err != nil || added {
		t.Fatalf("AddClassMember of existing member: expected no-op, got %v, %v", added, err)
	}

	got, err = store.GetClass(ctx, class.ID)
	if err != nil {
		t.Fatalf("GetClass failed: %v", err)
	}
	if !reflect.DeepEqual(got.PersonIDs, []string{"p1", "p2", "p3"}) {
		t.Errorf("Expected p3 appended, got %v", got.PersonIDs)
	}
	if got.UpdatedAt != 500 {
		t.Errorf("Expected no-op add to leave updatedAt at 500, got %d", got.UpdatedAt)
	}

	if err := store.RemoveClassMember(ctx, class.ID, "p1", 700); err != nil {
		t.Fatalf("RemoveClassMember failed: %v", err)
	}
	added, err = store.AddClassMember(ctx, class.ID, "p1", 800)
	if err != nil || !added {
		t.Fatalf("re-adding removed member: got %v, %v", added, err)
	}

	got, err = store.GetClass(ctx, class.ID)
	if err != nil {
		t.Fatalf("GetClass failed: %v", err)
	}
	if !reflect.DeepEqual(got.PersonIDs, []string{"p2", "p3", "p1"}) {
		t.Errorf("Expected p1 at the end, got %v", got.PersonIDs)
	}

	if err := store.DeleteClass(ctx, class.ID); err != nil {
		t.Fatalf("DeleteClass failed: %v", err)
	}
	if _, err := store.AddClassMember(ctx, class.ID, "p4", 900); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("AddClassMember on deleted class: expected ErrNotFound, got %v", err)
	}

	classes, err := store.ListClasses(ctx)
	if err != nil {
		t.Fatalf("ListClasses failed: %v", err)
	}
	if len(classes) != 0 {
		t.Errorf("Expected no classes, got %d", len(classes))
	}
}

func TestRevenuesByDueDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, due := range []string{"2025-01-31", "2024-12-31", "2025-01-01", "2025-02-01"} {
		if err := store.CreateRevenue(ctx, &models.Revenue{
			PersonID: "p1",
			Kind:     models.RevenueMonthlyFee,
			Amount:   100,
			DueDate:  due,
		}); err != nil {
			t.Fatalf("CreateRevenue failed: %v", err)
		}
	}

	revenues, err := store.ListRevenuesByDueDate(ctx, "2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("ListRevenuesByDueDate failed: %v", err)
	}

	var dates []string
	for _, r := range revenues {
		dates = append(dates, r.DueDate)
		if r.Status != models.RevenuePending {
			t.Errorf("Expected default status pending, got %s", r.Status)
		}
	}
	if !reflect.DeepEqual(dates, []string{"2025-01-31", "2025-01-01"}) {
		t.Errorf("Expected January revenues latest first, got %v", dates)
	}
}

func TestUpsertAttendance(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &models.Attendance{ClassID: "c1", PersonID: "p1", Date: "2025-01-13", Present: false, CreatedAt: 10, UpdatedAt: 10}
	created, err := store.UpsertAttendance(ctx, first)
	if err != nil || !created {
		t.Fatalf("first upsert: expected created, got %v, %v", created, err)
	}

	second := &models.Attendance{ClassID: "c1", PersonID: "p1", Date: "2025-01-13", Present: true, Note: "ok", CreatedAt: 20, UpdatedAt: 20}
	created, err = store.UpsertAttendance(ctx, second)
	if err != nil || created {
		t.Fatalf("second upsert: expected update, got %v, %v", created, err)
	}
	if second.ID != first.ID || second.CreatedAt != 10 {
		t.Errorf("Expected existing record %s created at 10, got %s at %d", first.ID, second.ID, second.CreatedAt)
	}

	records, err := store.ListAttendanceByPerson(ctx, "p1", "", "")
	if err != nil {
		t.Fatalf("ListAttendanceByPerson failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if !records[0].Present || records[0].Note != "ok" || records[0].UpdatedAt != 20 {
		t.Errorf("Expected updated record, got %+v", records[0])
	}

	other := &models.Attendance{ClassID: "c1", PersonID: "p1", Date: "2025-01-15", Present: true}
	if _, err := store.UpsertAttendance(ctx, other); err != nil {
		t.Fatalf("UpsertAttendance failed: %v", err)
	}
	other.Date = "2025-01-13"
	err = store.UpdateAttendance(ctx, other)
	if !errors.Is(err, storage.ErrConflict) {
		t.Errorf("Expected ErrConflict moving onto an occupied session, got %v", err)
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("prof@escola.com", "Professor", "hash", models.RoleInstructor)
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "prof@escola.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.Role != models.RoleInstructor || byEmail.PasswordHash != "hash" {
		t.Errorf("Unexpected user: %+v", byEmail)
	}

	dup := models.NewUser("prof@escola.com", "Outro", "hash", models.RoleAdmin)
	if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate email, got %v", err)
	}

	if _, err := store.GetUserByID(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGenerateEnrollmentCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateEnrollmentCode()
		if err != nil {
			t.Fatalf("generateEnrollmentCode failed: %v", err)
		}
		if len(code) != models.EnrollmentCodeLength {
			t.Fatalf("Expected length %d, got %q", models.EnrollmentCodeLength, code)
		}
		for _, r := range code {
			if !strings.ContainsRune(enrollmentAlphabet, r) {
				t.Fatalf("Unexpected character %q in %q", r, code)
			}
		}
	}
}
