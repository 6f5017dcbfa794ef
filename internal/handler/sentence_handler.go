package handler

import (
	"english_coaching/internal/model"
	"english_coaching/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSentenceRequest is the body for creating a practice sentence.
type CreateSentenceRequest struct {
	Text        string `json:"text" binding:"required"`
	Translation string `json:"translation" binding:"required"`
}

// UpdateSentenceRequest is the body for replacing a practice sentence's
// data fields.
type UpdateSentenceRequest struct {
	Text        string `json:"text" binding:"required"`
	Translation string `json:"translation" binding:"required"`
}

// RegisterSentenceRoutes mounts the sentence CRUD endpoints under rg.
func RegisterSentenceRoutes(rg *gin.RouterGroup, svc *service.ResourceService[model.Sentence]) {
	h := NewResourceHandler(
		svc,
		func(owner uuid.UUID, req CreateSentenceRequest) *model.Sentence {
			return model.NewSentence(owner, req.Text, req.Translation)
		},
		func(e *model.Sentence, req UpdateSentenceRequest) {
			e.Text = req.Text
			e.Translation = req.Translation
		},
	)
	h.RegisterRoutes(rg, "/sentences")
}
