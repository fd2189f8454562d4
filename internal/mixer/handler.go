package mixer

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type combineRequest struct {
	Selections []SelectionInput `json:"selections"`
}

// --------------------------------------------------
// Combine selections into one consolidated list
// --------------------------------------------------
func (h *Handler) Combine(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req combineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.service.Combine(c.Request.Context(), ownerID, req.Selections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Export combined list as a CSV shopping list
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req combineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	url, result, err := h.service.Export(c.Request.Context(), ownerID, req.Selections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      url,
		"combined": result,
	})
}
