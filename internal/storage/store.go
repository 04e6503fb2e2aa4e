// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/ludus/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write would violate a uniqueness constraint.
	ErrConflict = errors.New("already exists")
)

// Store defines the interface for all Ludus storage operations.
// Each entity lives in its own flat collection keyed by a generated ID.
type Store interface {
	PersonStore
	ClassStore
	RevenueStore
	CostStore
	AttendanceStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}

// PersonStore persists the person registry.
type PersonStore interface {
	// CreatePerson persists a new person. ID, EnrollmentCode and timestamps
	// are populated by the store when empty.
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	// ListPersons returns all persons, newest first.
	ListPersons(ctx context.Context) ([]*models.Person, error)
	ListPersonsByStatus(ctx context.Context, status models.PersonStatus) ([]*models.Person, error)
	// UpdatePerson overwrites the stored fields of an existing person.
	UpdatePerson(ctx context.Context, person *models.Person) error
	DeletePerson(ctx context.Context, id string) error
}

// ClassStore persists classes and their rosters.
type ClassStore interface {
	CreateClass(ctx context.Context, class *models.Class) error
	GetClass(ctx context.Context, id string) (*models.Class, error)
	ListClasses(ctx context.Context) ([]*models.Class, error)
	// UpdateClass overwrites name, weekdays and roster of an existing class.
	UpdateClass(ctx context.Context, class *models.Class) error
	DeleteClass(ctx context.Context, id string) error

	// AddClassMember appends personID to the roster unless already present.
	// It reports whether the roster changed.
	AddClassMember(ctx context.Context, classID, personID string, updatedAt int64) (bool, error)
	// RemoveClassMember removes personID from the roster if present.
	RemoveClassMember(ctx context.Context, classID, personID string, updatedAt int64) error
}

// RevenueStore persists revenues.
type RevenueStore interface {
	CreateRevenue(ctx context.Context, revenue *models.Revenue) error
	GetRevenue(ctx context.Context, id string) (*models.Revenue, error)
	ListRevenues(ctx context.Context) ([]*models.Revenue, error)
	ListRevenuesByPerson(ctx context.Context, personID string) ([]*models.Revenue, error)
	ListRevenuesByStatus(ctx context.Context, status models.RevenueStatus) ([]*models.Revenue, error)
	// ListRevenuesByDueDate returns revenues due within [from, to], latest due date first.
	ListRevenuesByDueDate(ctx context.Context, from, to string) ([]*models.Revenue, error)
	UpdateRevenue(ctx context.Context, revenue *models.Revenue) error
	DeleteRevenue(ctx context.Context, id string) error
}

// CostStore persists costs.
type CostStore interface {
	CreateCost(ctx context.Context, cost *models.Cost) error
	GetCost(ctx context.Context, id string) (*models.Cost, error)
	ListCosts(ctx context.Context) ([]*models.Cost, error)
	ListCostsByKind(ctx context.Context, kind models.CostKind) ([]*models.Cost, error)
	// ListCostsByDate returns costs dated within [from, to], latest first.
	ListCostsByDate(ctx context.Context, from, to string) ([]*models.Cost, error)
	UpdateCost(ctx context.Context, cost *models.Cost) error
	DeleteCost(ctx context.Context, id string) error
}

// AttendanceStore persists attendance records.
type AttendanceStore interface {
	// UpsertAttendance creates the record, or updates Present and Note of the
	// existing record for the same (class, person, date). On return the
	// record holds the stored ID and timestamps; created reports which happened.
	UpsertAttendance(ctx context.Context, attendance *models.Attendance) (created bool, err error)
	GetAttendance(ctx context.Context, id string) (*models.Attendance, error)
	ListAttendanceByClassAndDate(ctx context.Context, classID, date string) ([]*models.Attendance, error)
	ListAttendanceByClass(ctx context.Context, classID string) ([]*models.Attendance, error)
	// ListAttendanceByPerson returns the person's records, latest date first.
	// Empty from/to leave that side of the range open.
	ListAttendanceByPerson(ctx context.Context, personID, from, to string) ([]*models.Attendance, error)
	// UpdateAttendance returns ErrConflict if the new (class, person, date)
	// is already taken by another record.
	UpdateAttendance(ctx context.Context, attendance *models.Attendance) error
	DeleteAttendance(ctx context.Context, id string) error
}

// UserStore persists staff accounts.
type UserStore interface {
	// CreateUser returns ErrConflict if the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
