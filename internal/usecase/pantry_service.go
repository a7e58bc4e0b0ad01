package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/housestock/backend/internal/domain"
)

var pantryFields = []patchField{
	{"name", "name", requiredText},
	{"category", "category", text},
	{"quantity", "quantity", nonNegativeInteger},
	{"unit", "unit", text},
	{"location", "location", text},
	{"expiryDate", "expiry_date", text},
	{"purchasePrice", "purchase_price", price},
	{"notes", "notes", text},
}

// PantryService manages the household pantry
type PantryService struct {
	repo  domain.PantryRepository
	newID func() string
}

// NewPantryService creates a new pantry service
func NewPantryService(repo domain.PantryRepository) *PantryService {
	return &PantryService{repo: repo, newID: uuid.NewString}
}

// List returns every pantry item, newest first
func (s *PantryService) List(ctx context.Context) ([]domain.PantryItem, error) {
	return s.repo.List(ctx)
}

// Create validates item, fills defaults and stores it
func (s *PantryService) Create(ctx context.Context, item *domain.PantryItem) (*domain.PantryItem, error) {
	if item == nil || strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if item.Quantity < 0 || item.PurchasePrice < 0 {
		return nil, fmt.Errorf("%w: quantity and purchasePrice must not be negative", domain.ErrInvalidRequest)
	}
	if item.Unit == "" {
		item.Unit = domain.DefaultUnit
	}

	item.ID = s.newID()
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies the fields present in body to the item with the given id
func (s *PantryService) Update(ctx context.Context, id string, body []byte) error {
	changes, err := changesFromPatch(body, pantryFields)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, changes)
}

// Delete removes the item with the given id
func (s *PantryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
