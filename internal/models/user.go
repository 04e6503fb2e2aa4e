package models

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which parts of the application a user can reach.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// LandingPage is the page a user is routed to after login.
func (r Role) LandingPage() string {
	if r == RoleInstructor {
		return "/presencas"
	}
	return "/dashboard"
}

// User represents a staff account able to log in.
type User struct {
	// ID is the account identifier (UUID format). The profile shares it.
	ID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// NewUser creates a new User with a generated ID and timestamps.
func NewUser(email, name, passwordHash string, role Role) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
