package handler

import (
	"errors"
	"net/http"

	"english_coaching/internal/authz"
	"english_coaching/internal/middleware"
	"english_coaching/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ResourceHandler serves the standard CRUD endpoints for one owned
// resource type. C is the create request body, U the update body; build
// constructs a new entity for the authenticated owner and apply copies
// an update body onto an existing entity.
type ResourceHandler[T authz.Owned, C any, U any] struct {
	service *service.ResourceService[T]
	build   func(owner uuid.UUID, req C) *T
	apply   func(e *T, req U)
}

// NewResourceHandler creates a handler over the given service.
func NewResourceHandler[T authz.Owned, C any, U any](
	svc *service.ResourceService[T],
	build func(owner uuid.UUID, req C) *T,
	apply func(e *T, req U),
) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{service: svc, build: build, apply: apply}
}

func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	e := h.build(user.ID, req)
	if err := h.service.Create(c.Request.Context(), e); err != nil {
		respondServiceError(c, err, "create")
		return
	}

	c.JSON(http.StatusCreated, e)
}

func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err, "list")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	e, err := h.service.Get(c.Request.Context(), user, id)
	if err != nil {
		respondServiceError(c, err, "get")
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	e, err := h.service.Update(c.Request.Context(), user, id, func(e *T) {
		h.apply(e, req)
	})
	if err != nil {
		respondServiceError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		respondServiceError(c, err, "delete")
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes mounts the CRUD endpoints under rg at the given path.
func (h *ResourceHandler[T, C, U]) RegisterRoutes(rg *gin.RouterGroup, path string) {
	grp := rg.Group(path)
	{
		grp.POST("", h.Create)
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
		grp.PUT("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}

func respondServiceError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrForbidden.Error()})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("op", op).Msg("resource operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
