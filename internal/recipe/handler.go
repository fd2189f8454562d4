package recipe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create recipe
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req RecipeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec, err := h.service.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// --------------------------------------------------
// List recipes
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	ownerID := c.GetString("userID")

	recipes, err := h.service.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// --------------------------------------------------
// Get one recipe
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	rec, err := h.service.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// --------------------------------------------------
// Cost breakdown
// --------------------------------------------------
func (h *Handler) Cost(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	breakdown, err := h.service.Cost(c.Request.Context(), id, ownerID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrInvalidYield):
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	// Partial totals are always returned with their line errors so the
	// client can never show a silently-short number.
	c.JSON(http.StatusOK, breakdown)
}

// --------------------------------------------------
// Update recipe
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req RecipeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec, err := h.service.Update(c.Request.Context(), id, ownerID, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// --------------------------------------------------
// Delete recipe
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, ownerID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
