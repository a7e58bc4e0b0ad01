package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/housestock/backend/internal/domain"
)

// checkRequest is the body of a shopping list toggle
type checkRequest struct {
	Checked *bool `json:"checked"`
}

// bindChecked reads the checked flag; a body without it has nothing to update
func bindChecked(c *gin.Context) (bool, bool) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return false, false
	}
	if req.Checked == nil {
		respondError(c, domain.ErrNoFieldsToUpdate)
		return false, false
	}
	return *req.Checked, true
}

// ListShopping returns the wine shopping list
func (h *Handler) ListShopping(c *gin.Context) {
	items, err := h.shopping.ListWines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateShoppingItem puts a wine on the shopping list
func (h *Handler) CreateShoppingItem(c *gin.Context) {
	var item domain.ShoppingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		invalidBody(c, err)
		return
	}

	created, err := h.shopping.AddWine(c.Request.Context(), &item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ToggleShoppingItem sets the checked flag of a wine shopping item
func (h *Handler) ToggleShoppingItem(c *gin.Context) {
	checked, ok := bindChecked(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.shopping.CheckWine(c.Request.Context(), id, checked); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "checked": checked})
}

// DeleteShoppingItem removes a wine shopping item
func (h *Handler) DeleteShoppingItem(c *gin.Context) {
	if err := h.shopping.RemoveWine(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPantryShopping returns the pantry shopping list
func (h *Handler) ListPantryShopping(c *gin.Context) {
	items, err := h.shopping.ListPantry(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreatePantryShoppingItem puts a product on the pantry shopping list
func (h *Handler) CreatePantryShoppingItem(c *gin.Context) {
	var item domain.PantryShoppingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		invalidBody(c, err)
		return
	}

	created, err := h.shopping.AddPantry(c.Request.Context(), &item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// TogglePantryShoppingItem sets the checked flag of a pantry shopping item
func (h *Handler) TogglePantryShoppingItem(c *gin.Context) {
	checked, ok := bindChecked(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.shopping.CheckPantry(c.Request.Context(), id, checked); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "checked": checked})
}

// DeletePantryShoppingItem removes a pantry shopping item
func (h *Handler) DeletePantryShoppingItem(c *gin.Context) {
	if err := h.shopping.RemovePantry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
