package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/housestock/backend/internal/domain"
)

// wineFields lists the updatable wine fields in column order
var wineFields = []patchField{
	{"name", "name", requiredText},
	{"producer", "producer", requiredText},
	{"vintage", "vintage", positiveInteger},
	{"region", "region", text},
	{"country", "country", text},
	{"type", "type", wineType},
	{"grape", "grape", text},
	{"quantity", "quantity", nonNegativeInteger},
	{"purchasePrice", "purchase_price", price},
	{"purchaseDate", "purchase_date", text},
	{"purchaseLocation", "purchase_location", text},
	{"drinkFrom", "drink_from", optionalInteger},
	{"drinkUntil", "drink_until", optionalInteger},
	{"rating", "rating", optionalInteger},
	{"personalRating", "personal_rating", optionalInteger},
	{"notes", "notes", text},
	{"imageUrl", "image_url", text},
	{"isGift", "is_gift", boolean},
	{"giftFrom", "gift_from", text},
}

// WineService manages the wines of the cellar
type WineService struct {
	repo  domain.WineRepository
	newID func() string
}

// NewWineService creates a new wine service
func NewWineService(repo domain.WineRepository) *WineService {
	return &WineService{repo: repo, newID: uuid.NewString}
}

// List returns every wine, newest first
func (s *WineService) List(ctx context.Context) ([]domain.Wine, error) {
	return s.repo.List(ctx)
}

// Create validates wine, assigns a new id and stores it
func (s *WineService) Create(ctx context.Context, wine *domain.Wine) (*domain.Wine, error) {
	if wine == nil {
		return nil, domain.ErrInvalidRequest
	}
	if err := validateWine(wine); err != nil {
		return nil, err
	}

	wine.ID = s.newID()
	if err := s.repo.Create(ctx, wine); err != nil {
		return nil, err
	}
	return wine, nil
}

// Update applies the fields present in body to the wine with the given id
func (s *WineService) Update(ctx context.Context, id string, body []byte) error {
	changes, err := changesFromPatch(body, wineFields)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, changes)
}

// Delete removes the wine with the given id
func (s *WineService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateWine(w *domain.Wine) error {
	switch {
	case strings.TrimSpace(w.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	case strings.TrimSpace(w.Producer) == "":
		return fmt.Errorf("%w: producer is required", domain.ErrInvalidRequest)
	case !w.Type.Valid():
		return fmt.Errorf("%w: type must be one of %v", domain.ErrInvalidRequest, domain.WineTypes)
	case w.Vintage <= 0:
		return fmt.Errorf("%w: vintage must be positive", domain.ErrInvalidRequest)
	case w.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidRequest)
	case w.PurchasePrice < 0:
		return fmt.Errorf("%w: purchasePrice must not be negative", domain.ErrInvalidRequest)
	}
	return nil
}
