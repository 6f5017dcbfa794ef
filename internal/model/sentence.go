package model

import "github.com/google/uuid"

// Sentence is a practice sentence with its translation.
type Sentence struct {
	ResourceMeta
	Text        string `db:"text" json:"text"`
	Translation string `db:"translation" json:"translation"`
}

// NewSentence creates a practice sentence owned by the given user.
func NewSentence(owner uuid.UUID, text, translation string) *Sentence {
	return &Sentence{
		ResourceMeta: newResourceMeta(owner),
		Text:         text,
		Translation:  translation,
	}
}
