package model

import (
	"time"

	"github.com/google/uuid"
)

// ResourceMeta is the common metadata embedded in every owned resource:
// identity, ownership and timestamps. Embedding it makes the outer type
// satisfy authz.Owned through the promoted OwnerID method.
type ResourceMeta struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created" json:"created"`
	UpdatedAt time.Time `db:"updated" json:"updated"`
}

// OwnerID returns the id of the user owning this resource.
func (m ResourceMeta) OwnerID() uuid.UUID { return m.UserID }

func newResourceMeta(owner uuid.UUID) ResourceMeta {
	now := time.Now().UTC()
	return ResourceMeta{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
