package middleware

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/models"
)

// ErrForbidden is returned when the user's role may not call a procedure.
var ErrForbidden = errors.New("your role does not have access to this operation")

// AccessPolicy decides which roles may call which procedures.
// Admins may call everything. Instructors may call only the procedures
// listed for them. Public procedures need no session at all.
type AccessPolicy struct {
	public     map[string]bool
	instructor map[string]bool
}

// NewAccessPolicy creates a policy from the public and instructor procedure lists.
func NewAccessPolicy(public, instructor []string) *AccessPolicy {
	p := &AccessPolicy{
		public:     make(map[string]bool, len(public)),
		instructor: make(map[string]bool, len(instructor)),
	}
	for _, proc := range public {
		p.public[proc] = true
	}
	for _, proc := range instructor {
		p.instructor[proc] = true
	}
	return p
}

// IsPublic reports whether procedure can be called without a session.
func (p *AccessPolicy) IsPublic(procedure string) bool {
	return p.public[procedure]
}

// Allows reports whether role may call procedure.
func (p *AccessPolicy) Allows(role models.Role, procedure string) bool {
	if p.public[procedure] {
		return true
	}
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleInstructor:
		return p.instructor[procedure]
	default:
		return false
	}
}

// RequireRole returns an interceptor that rejects procedures the
// authenticated user's role may not call. It must run after RequireAuth.
func RequireRole(policy *AccessPolicy) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !policy.Allows(GetRole(ctx), req.Spec().Procedure) {
				return nil, connect.NewError(connect.CodePermissionDenied, ErrForbidden)
			}
			return next(ctx, req)
		}
	}
}
