package model

import "github.com/google/uuid"

// Note is a free-form study note.
type Note struct {
	ResourceMeta
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}

// NewNote creates a note owned by the given user.
func NewNote(owner uuid.UUID, title, content string) *Note {
	return &Note{
		ResourceMeta: newResourceMeta(owner),
		Title:        title,
		Content:      content,
	}
}
