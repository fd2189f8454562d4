package ingredient

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

type ingredientRequest struct {
	Name         string `json:"name"`
	PackQuantity string `json:"pack_quantity"`
	PackUnit     string `json:"pack_unit"`
	PackPrice    string `json:"pack_price"`
	Currency     string `json:"currency"`
	Density      string `json:"density"`
}

func (req ingredientRequest) toInput() CreateInput {
	return CreateInput{
		Name:         req.Name,
		PackQuantity: req.PackQuantity,
		PackUnit:     req.PackUnit,
		PackPrice:    req.PackPrice,
		Currency:     req.Currency,
		Density:      req.Density,
	}
}

// --------------------------------------------------
// Create ingredient
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ing, err := h.service.Create(c.Request.Context(), ownerID, req.toInput())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ing)
}

// --------------------------------------------------
// List ingredients
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	ownerID := c.GetString("userID")

	items, err := h.service.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": items})
}

// --------------------------------------------------
// Get one ingredient
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ing, err := h.service.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// Unit cost view
// --------------------------------------------------
func (h *Handler) UnitCost(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	cost, baseUnit, err := h.service.UnitCost(c.Request.Context(), id, ownerID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrInvalidIngredient):
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cost_per_base_unit": cost,
		"base_unit":          baseUnit,
	})
}

// --------------------------------------------------
// Update ingredient
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ing, err := h.service.Update(c.Request.Context(), id, ownerID, req.toInput())
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// Delete ingredient
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	ownerID := c.GetString("userID")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
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

	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
