package handler

import (
	"english_coaching/internal/model"
	"english_coaching/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateNoteRequest is the body for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateNoteRequest is the body for replacing a note's data fields.
type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// RegisterNoteRoutes mounts the note CRUD endpoints under rg.
func RegisterNoteRoutes(rg *gin.RouterGroup, svc *service.ResourceService[model.Note]) {
	h := NewResourceHandler(
		svc,
		func(owner uuid.UUID, req CreateNoteRequest) *model.Note {
			return model.NewNote(owner, req.Title, req.Content)
		},
		func(e *model.Note, req UpdateNoteRequest) {
			e.Title = req.Title
			e.Content = req.Content
		},
	)
	h.RegisterRoutes(rg, "/notes")
}
