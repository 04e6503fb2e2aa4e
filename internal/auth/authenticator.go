package auth

import (
	"context"

	"github.com/mmynk/ludus/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between a local password store and an
// external identity provider without changing the service layer code.
type Authenticator interface {
	// Register creates a new staff account with the given role and credential.
	Register(ctx context.Context, email, name, credential string, role models.Role) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
