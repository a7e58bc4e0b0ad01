// Package seed generates a reproducible cellar of test wines and loads it into the store.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/housestock/backend/internal/domain"
)

const (
	// DefaultSeed yields the reference data set
	DefaultSeed uint32 = 42
	// DefaultCount is the number of wines generated when none is requested
	DefaultCount = 300

	firstVintage = 2005
	lastVintage  = 2023
	lastPurchase = 2025
)

// Generate returns count wines derived from seed; equal arguments give equal output
func Generate(seed uint32, count int) []domain.Wine {
	rng := newMulberry32(seed)
	wines := make([]domain.Wine, 0, count)

	for i := 0; i < count; i++ {
		profile := pick(rng, profiles)
		g := pick(rng, profile.grapes)
		producer := pick(rng, profile.producers)
		name := pick(rng, profile.names)
		location := pick(rng, profile.locations)

		vintage := rng.Between(firstVintage, lastVintage)
		ageability := ageabilityFor(rng, g.kind)
		drinkFrom := vintage + rng.Between(1, min(5, ageability))
		drinkUntil := vintage + ageability

		price := rng.Between(profile.minPrice, profile.maxPrice)
		quantity := rng.Between(1, 12)

		purchaseYear := rng.Between(max(vintage, 2018), lastPurchase)
		purchaseMonth := rng.Between(1, 12)
		purchaseDay := rng.Between(1, 28)

		wine := domain.Wine{
			ID:               fmt.Sprintf("test_%04d", i+1),
			Name:             name,
			Producer:         producer,
			Vintage:          vintage,
			Region:           profile.region,
			Country:          profile.country,
			Type:             g.kind,
			Grape:            g.name,
			Quantity:         quantity,
			PurchasePrice:    float64(price),
			PurchaseDate:     fmt.Sprintf("%d-%02d-%02d", purchaseYear, purchaseMonth, purchaseDay),
			PurchaseLocation: location,
			DrinkFrom:        &drinkFrom,
			DrinkUntil:       &drinkUntil,
		}

		if rng.Chance(0.7) {
			rating := rng.Between(82, 100)
			wine.Rating = &rating
		}
		if rng.Chance(0.6) {
			personal := rng.Between(2, 5)
			wine.PersonalRating = &personal
		}

		notes, ok := notesByType[g.kind]
		if !ok {
			notes = notesByType[domain.WineTypeRed]
		}
		if rng.Chance(0.7) {
			wine.Notes = pick(rng, notes)
		}

		if rng.Chance(0.1) {
			wine.IsGift = true
			wine.GiftFrom = pick(rng, giftGivers)
		}

		wines = append(wines, wine)
	}

	return wines
}

// ageabilityFor draws how many years after the vintage a wine of this type stays drinkable
func ageabilityFor(rng *mulberry32, kind domain.WineType) int {
	switch kind {
	case domain.WineTypeDessert:
		return rng.Between(15, 40)
	case domain.WineTypeSparkling:
		return rng.Between(3, 12)
	case domain.WineTypeRed:
		return rng.Between(3, 25)
	default:
		return rng.Between(2, 10)
	}
}

// Load inserts wines whose id is not stored yet and reports how many were added
func Load(ctx context.Context, repo domain.WineRepository, wines []domain.Wine, log *zap.SugaredLogger) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing wines: %w", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, w := range existing {
		known[w.ID] = struct{}{}
	}

	inserted := 0
	for i := range wines {
		if _, ok := known[wines[i].ID]; ok {
			continue
		}
		if err := repo.Create(ctx, &wines[i]); err != nil {
			return inserted, fmt.Errorf("inserting %s: %w", wines[i].ID, err)
		}
		inserted++
	}

	log.Infow("Seeded wines", "inserted", inserted, "skipped", len(wines)-inserted)
	return inserted, nil
}
