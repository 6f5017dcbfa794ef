package handler

import (
	"english_coaching/internal/model"
	"english_coaching/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateWordRequest is the body for creating a vocabulary entry.
type CreateWordRequest struct {
	Term        string  `json:"term" binding:"required"`
	Translation string  `json:"translation" binding:"required"`
	Example     *string `json:"example"`
}

// UpdateWordRequest is the body for replacing a vocabulary entry's data
// fields.
type UpdateWordRequest struct {
	Term        string  `json:"term" binding:"required"`
	Translation string  `json:"translation" binding:"required"`
	Example     *string `json:"example"`
}

// RegisterWordRoutes mounts the word CRUD endpoints under rg.
func RegisterWordRoutes(rg *gin.RouterGroup, svc *service.ResourceService[model.Word]) {
	h := NewResourceHandler(
		svc,
		func(owner uuid.UUID, req CreateWordRequest) *model.Word {
			return model.NewWord(owner, req.Term, req.Translation, req.Example)
		},
		func(e *model.Word, req UpdateWordRequest) {
			e.Term = req.Term
			e.Translation = req.Translation
			e.Example = req.Example
		},
	)
	h.RegisterRoutes(rg, "/words")
}
