// Package auth describes the authenticated caller and the tokens that carry it.
package auth

import (
	"context"
	"strings"

	apperrors "github.com/welldanyogia/webrana-posts-backend/internal/errors"
)

// Role is a permission level held by a caller
type Role string

// Known roles, lowest to highest
const (
	RoleGuest Role = "GUEST"
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var roleRank = map[Role]int{
	RoleGuest: 1,
	RoleUser:  2,
	RoleAdmin: 3,
}

// ParseRole normalizes a role name such as "user" or "ROLE_USER".
// Unknown names are returned upper-cased and rank below every known role.
func ParseRole(name string) Role {
	name = strings.ToUpper(strings.TrimSpace(name))
	return Role(strings.TrimPrefix(name, "ROLE_"))
}

// Satisfies reports whether r grants at least the permissions of required
func (r Role) Satisfies(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// Identity is the caller as established by the authorization layer
type Identity struct {
	Subject string
	Roles   []Role
}

// HasRole reports whether any of the caller's roles satisfies required
func (i *Identity) HasRole(required Role) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r.Satisfies(required) {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a context carrying id
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the caller identity, or nil when the request is anonymous
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}

// Authorize checks that the caller in ctx holds required.
// It returns ErrUnauthorized for anonymous callers and ErrForbidden for
// callers lacking the role.
func Authorize(ctx context.Context, required Role) error {
	id := FromContext(ctx)
	if id == nil {
		return apperrors.ErrUnauthorized
	}
	if !id.HasRole(required) {
		return apperrors.ErrForbidden
	}
	return nil
}
