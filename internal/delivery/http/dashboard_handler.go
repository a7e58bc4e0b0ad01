package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/housestock/backend/internal/domain"
)

// settingsRequest is the body of a settings update
type settingsRequest struct {
	CellarName *string `json:"cellarName"`
}

// GetSettings returns the cellar settings
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings renames the cellar
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), req.CellarName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// CellarStats returns the wine dashboard aggregates
func (h *Handler) CellarStats(c *gin.Context) {
	stats, err := h.stats.Cellar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PantryStats returns the pantry dashboard aggregates
func (h *Handler) PantryStats(c *gin.Context) {
	stats, err := h.stats.Pantry(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExtractProduct reads wine data from a shop product page
func (h *Handler) ExtractProduct(c *gin.Context) {
	var req domain.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.extraction.Extract(c.Request.Context(), req.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
