package handler

import (
	"time"

	"english_coaching/internal/model"
	"english_coaching/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateLessonRequest is the body for creating a lesson.
type CreateLessonRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// UpdateLessonRequest is the body for replacing a lesson's data fields.
type UpdateLessonRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// RegisterLessonRoutes mounts the lesson CRUD endpoints under rg.
func RegisterLessonRoutes(rg *gin.RouterGroup, svc *service.ResourceService[model.Lesson]) {
	h := NewResourceHandler(
		svc,
		func(owner uuid.UUID, req CreateLessonRequest) *model.Lesson {
			return model.NewLesson(owner, req.Title, req.Description, req.ScheduledAt)
		},
		func(e *model.Lesson, req UpdateLessonRequest) {
			e.Title = req.Title
			e.Description = req.Description
			e.ScheduledAt = req.ScheduledAt
		},
	)
	h.RegisterRoutes(rg, "/lessons")
}
