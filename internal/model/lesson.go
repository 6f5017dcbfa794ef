package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is a coaching session, optionally scheduled.
type Lesson struct {
	ResourceMeta
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`
}

// NewLesson creates a lesson owned by the given user.
func NewLesson(owner uuid.UUID, title, description string, scheduledAt *time.Time) *Lesson {
	return &Lesson{
		ResourceMeta: newResourceMeta(owner),
		Title:        title,
		Description:  description,
		ScheduledAt:  scheduledAt,
	}
}
