package service

import (
	"context"
	"fmt"

	"english_coaching/internal/authz"
	"english_coaching/internal/model"

	"github.com/google/uuid"
)

// ResourceRepository is the storage contract the generic service needs.
// *repository.CrudRepository[T] satisfies it.
type ResourceRepository[T any] interface {
	Create(ctx context.Context, e *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindByOwner(ctx context.Context, owner uuid.UUID) ([]T, error)
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceService applies the ownership access rules uniformly to any
// owned resource type: admins see and touch everything, other users only
// their own rows. Listing is scoped before the query hits storage.
type ResourceService[T authz.Owned] struct {
	repo ResourceRepository[T]
}

// NewResourceService creates a service over the given repository.
func NewResourceService[T authz.Owned](repo ResourceRepository[T]) *ResourceService[T] {
	return &ResourceService[T]{repo: repo}
}

// Create persists a new resource. Ownership is fixed by the caller when
// constructing the entity (handlers use the authenticated principal).
func (s *ResourceService[T]) Create(ctx context.Context, e *T) error {
	if err := s.repo.Create(ctx, e); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// Get fetches one resource, enforcing the access decision.
func (s *ResourceService[T]) Get(ctx context.Context, principal *model.User, id uuid.UUID) (*T, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}
	if e == nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(principal, *e) {
		return nil, ErrForbidden
	}
	return e, nil
}

// List returns the resources visible to the principal. The ownership
// filter shapes the query itself so non-admins never scan other users'
// rows.
func (s *ResourceService[T]) List(ctx context.Context, principal *model.User) ([]T, error) {
	var (
		items []T
		err   error
	)
	if owner := authz.OwnershipFilter(principal); owner != nil {
		items, err = s.repo.FindByOwner(ctx, *owner)
	} else {
		items, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Update fetches the resource, checks access, lets apply mutate the data
// fields and writes the result back.
func (s *ResourceService[T]) Update(ctx context.Context, principal *model.User, id uuid.UUID, apply func(*T)) (*T, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find resource for update: %w", err)
	}
	if e == nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(principal, *e) {
		return nil, ErrForbidden
	}

	apply(e)

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}
	return e, nil
}

// Delete removes the resource after the access check.
func (s *ResourceService[T]) Delete(ctx context.Context, principal *model.User, id uuid.UUID) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find resource for deletion: %w", err)
	}
	if e == nil {
		return ErrNotFound
	}
	if !authz.CanAccess(principal, *e) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}
