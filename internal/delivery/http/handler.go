package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/housestock/backend/internal/domain"
	"github.com/housestock/backend/internal/usecase"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Pinger reports whether the database answers
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	wines      *usecase.WineService
	pantry     *usecase.PantryService
	shopping   *usecase.ShoppingService
	settings   *usecase.SettingsService
	stats      *usecase.StatsService
	extraction *usecase.ExtractionService
	db         Pinger
}

// Services bundles the use cases served over HTTP
type Services struct {
	Wines      *usecase.WineService
	Pantry     *usecase.PantryService
	Shopping   *usecase.ShoppingService
	Settings   *usecase.SettingsService
	Stats      *usecase.StatsService
	Extraction *usecase.ExtractionService
}

// NewHandler creates a new HTTP handler
func NewHandler(services Services, db Pinger) *Handler {
	return &Handler{
		wines:      services.Wines,
		pantry:     services.Pantry,
		shopping:   services.Shopping,
		settings:   services.Settings,
		stats:      services.Stats,
		extraction: services.Extraction,
		db:         db,
	}
}

// HealthCheck returns the health status of the API and its database
func (h *Handler) HealthCheck(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	database := "up"
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			status, code, database = "degraded", http.StatusServiceUnavailable, "down"
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"service":  "housestock-backend",
		"version":  Version,
		"database": database,
	})
}

// echoPatch answers a partial update with the request body plus the id
func echoPatch(c *gin.Context, id string, body []byte) {
	response := map[string]interface{}{}
	_ = json.Unmarshal(body, &response)
	response["id"] = id
	c.JSON(http.StatusOK, response)
}

// ListWines returns all wines
func (h *Handler) ListWines(c *gin.Context) {
	wines, err := h.wines.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wines)
}

// CreateWine adds a wine to the cellar
func (h *Handler) CreateWine(c *gin.Context) {
	var wine domain.Wine
	if err := c.ShouldBindJSON(&wine); err != nil {
		invalidBody(c, err)
		return
	}

	created, err := h.wines.Create(c.Request.Context(), &wine)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateWine changes the fields present in the body
func (h *Handler) UpdateWine(c *gin.Context) {
	id := c.Param("id")
	body, err := c.GetRawData()
	if err != nil {
		invalidBody(c, err)
		return
	}

	if err := h.wines.Update(c.Request.Context(), id, body); err != nil {
		respondError(c, err)
		return
	}
	echoPatch(c, id, body)
}

// DeleteWine removes a wine
func (h *Handler) DeleteWine(c *gin.Context) {
	if err := h.wines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPantry returns all pantry items
func (h *Handler) ListPantry(c *gin.Context) {
	items, err := h.pantry.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreatePantryItem adds an item to the pantry
func (h *Handler) CreatePantryItem(c *gin.Context) {
	var item domain.PantryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		invalidBody(c, err)
		return
	}

	created, err := h.pantry.Create(c.Request.Context(), &item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePantryItem changes the fields present in the body
func (h *Handler) UpdatePantryItem(c *gin.Context) {
	id := c.Param("id")
	body, err := c.GetRawData()
	if err != nil {
		invalidBody(c, err)
		return
	}

	if err := h.pantry.Update(c.Request.Context(), id, body); err != nil {
		respondError(c, err)
		return
	}
	echoPatch(c, id, body)
}

// DeletePantryItem removes a pantry item
func (h *Handler) DeletePantryItem(c *gin.Context) {
	if err := h.pantry.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
