package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

// memoryUsers is a map-backed UserStorage for tests.
type memoryUsers struct {
	byID map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(ctx context.Context, user *models.User) error {
	for _, u := range m.byID {
		if u.Email == user.Email {
			return fmt.Errorf("user %s: %w", user.Email, storage.ErrConflict)
		}
	}
	m.byID[user.ID] = user
	return nil
}

func (m *memoryUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memoryUsers) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUsers())

	user, err := a.Register(ctx, " Prof@Ludus.com ", "Professora Ana", "segredo123", models.RoleInstructor)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "prof@ludus.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "segredo123" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	t.Run("authenticates with the right password", func(t *testing.T) {
		got, err := a.Authenticate(ctx, "PROF@ludus.com", "segredo123")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID || got.Role != models.RoleInstructor {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "prof@ludus.com", "errado")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "ninguem@ludus.com", "segredo123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := a.Register(ctx, "prof@ludus.com", "Outra", "segredo456", models.RoleAdmin)
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		_, err := a.Register(ctx, "novo@ludus.com", "Novo", "curta", models.RoleAdmin)
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUsers()
	a := NewPasswordAuthenticator(users)

	created, err := a.EnsureAdmin(ctx, "admin@ludus.com", "Admin", "admin-password")
	if err != nil || !created {
		t.Fatalf("EnsureAdmin = %v, %v; want true, nil", created, err)
	}

	created, err = a.EnsureAdmin(ctx, "admin@ludus.com", "Admin", "admin-password")
	if err != nil || created {
		t.Fatalf("second EnsureAdmin = %v, %v; want false, nil", created, err)
	}

	admin, _ := users.GetUserByEmail(ctx, "admin@ludus.com")
	if admin.Role != models.RoleAdmin {
		t.Errorf("role = %s, want admin", admin.Role)
	}

	created, err = a.EnsureAdmin(ctx, "", "", "")
	if err != nil || created {
		t.Errorf("EnsureAdmin with no email = %v, %v; want false, nil", created, err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-1", Email: "admin@ludus.com", Role: models.RoleAdmin}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != models.RoleAdmin || claims.Email != "admin@ludus.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		tok, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := m.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
