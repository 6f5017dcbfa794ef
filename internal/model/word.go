package model

import "github.com/google/uuid"

// Word is a vocabulary entry with an optional example sentence.
type Word struct {
	ResourceMeta
	Term        string  `db:"term" json:"term"`
	Translation string  `db:"translation" json:"translation"`
	Example     *string `db:"example" json:"example,omitempty"`
}

// NewWord creates a vocabulary entry owned by the given user.
func NewWord(owner uuid.UUID, term, translation string, example *string) *Word {
	return &Word{
		ResourceMeta: newResourceMeta(owner),
		Term:         term,
		Translation:  translation,
		Example:      example,
	}
}
