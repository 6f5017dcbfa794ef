// Package authz holds the pure access-control decision functions applied
// by every handler that touches owned resources. No I/O happens here.
package authz

import (
	"errors"

	"english_coaching/internal/model"

	"github.com/google/uuid"
)

// ErrAdminRequired is returned by RequireAdmin for non-admin principals.
var ErrAdminRequired = errors.New("admin access required")

// Owned is any resource exposing its owning user id.
type Owned interface {
	OwnerID() uuid.UUID
}

// CanAccess reports whether the principal may access the resource:
// admins always, everyone else only their own resources.
func CanAccess(principal *model.User, resource Owned) bool {
	return principal.Role == model.RoleAdmin || principal.ID == resource.OwnerID()
}

// OwnershipFilter returns the owner id that list queries must be scoped
// to, or nil for admins (no filter, list everything). It is applied
// before querying storage, never as a post-filter.
func OwnershipFilter(principal *model.User) *uuid.UUID {
	if principal.Role == model.RoleAdmin {
		return nil
	}
	id := principal.ID
	return &id
}

// IsAdmin reports whether the principal has the admin role.
func IsAdmin(principal *model.User) bool {
	return principal.Role == model.RoleAdmin
}

// RequireAdmin guards admin-only operations.
func RequireAdmin(principal *model.User) error {
	if !IsAdmin(principal) {
		return ErrAdminRequired
	}
	return nil
}
