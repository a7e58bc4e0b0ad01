package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/housestock/backend/internal/domain"
)

// ShoppingService manages the wine and pantry shopping lists
type ShoppingService struct {
	wines  domain.ShoppingRepository
	pantry domain.PantryShoppingRepository
	newID  func() string
}

// NewShoppingService creates a new shopping list service
func NewShoppingService(wines domain.ShoppingRepository, pantry domain.PantryShoppingRepository) *ShoppingService {
	return &ShoppingService{wines: wines, pantry: pantry, newID: uuid.NewString}
}

// ListWines returns the wine shopping list
func (s *ShoppingService) ListWines(ctx context.Context) ([]domain.ShoppingItem, error) {
	return s.wines.List(ctx)
}

// AddWine puts a wine on the shopping list, unchecked
func (s *ShoppingService) AddWine(ctx context.Context, item *domain.ShoppingItem) (*domain.ShoppingItem, error) {
	if item == nil || strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if item.Quantity < 0 || item.EstimatedPrice < 0 {
		return nil, fmt.Errorf("%w: quantity and estimatedPrice must not be negative", domain.ErrInvalidRequest)
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	item.ID = s.newID()
	item.Checked = false
	if err := s.wines.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// CheckWine sets the checked flag of a wine shopping item
func (s *ShoppingService) CheckWine(ctx context.Context, id string, checked bool) error {
	return s.wines.SetChecked(ctx, id, checked)
}

// RemoveWine deletes a wine shopping item
func (s *ShoppingService) RemoveWine(ctx context.Context, id string) error {
	return s.wines.Delete(ctx, id)
}

// ListPantry returns the pantry shopping list
func (s *ShoppingService) ListPantry(ctx context.Context) ([]domain.PantryShoppingItem, error) {
	return s.pantry.List(ctx)
}

// AddPantry puts a product on the pantry shopping list, unchecked
func (s *ShoppingService) AddPantry(ctx context.Context, item *domain.PantryShoppingItem) (*domain.PantryShoppingItem, error) {
	if item == nil || strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if item.Quantity < 0 || item.EstimatedPrice < 0 {
		return nil, fmt.Errorf("%w: quantity and estimatedPrice must not be negative", domain.ErrInvalidRequest)
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Unit == "" {
		item.Unit = domain.DefaultUnit
	}

	item.ID = s.newID()
	item.Checked = false
	if err := s.pantry.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// CheckPantry sets the checked flag of a pantry shopping item
func (s *ShoppingService) CheckPantry(ctx context.Context, id string, checked bool) error {
	return s.pantry.SetChecked(ctx, id, checked)
}

// RemovePantry deletes a pantry shopping item
func (s *ShoppingService) RemovePantry(ctx context.Context, id string) error {
	return s.pantry.Delete(ctx, id)
}
