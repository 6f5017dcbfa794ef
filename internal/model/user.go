package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// User represents an account in the system. At least one of Username or
// Email is always present; the storage layer enforces this alongside
// uniqueness of both.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     *string   `db:"username" json:"username,omitempty"`
	Email        *string   `db:"email" json:"email,omitempty"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose the hash in JSON responses
	Role         string    `db:"role" json:"role"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created" json:"created"`
	UpdatedAt    time.Time `db:"updated" json:"updated"`
}

// NewUser builds a user with a fresh UUIDv7 id (sortable by creation time)
// and the default pending status.
func NewUser(displayName string, email, username *string, passwordHash, role string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     username,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
