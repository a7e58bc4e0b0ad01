package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housestock/backend/internal/domain"
)

// expiryWarningDays is how far ahead an expiry date counts as soon
const expiryWarningDays = 7

// StatsService computes the dashboard aggregates
type StatsService struct {
	wines  domain.WineRepository
	pantry domain.PantryRepository
	now    func() time.Time
}

// NewStatsService creates a new statistics service
func NewStatsService(wines domain.WineRepository, pantry domain.PantryRepository) *StatsService {
	return &StatsService{wines: wines, pantry: pantry, now: time.Now}
}

// Cellar aggregates the wine cellar
func (s *StatsService) Cellar(ctx context.Context) (*domain.CellarStats, error) {
	wines, err := s.wines.List(ctx)
	if err != nil {
		return nil, err
	}

	year := s.now().Year()
	stats := &domain.CellarStats{
		DistinctWines:    len(wines),
		BottlesByType:    make(map[string]int),
		BottlesByCountry: make(map[string]int),
	}

	total := decimal.Zero
	for _, w := range wines {
		stats.TotalBottles += w.Quantity
		total = total.Add(lineValue(w.Quantity, w.PurchasePrice))

		if w.Quantity > 0 {
			stats.BottlesByType[string(w.Type)] += w.Quantity
			if w.Country != "" {
				stats.BottlesByCountry[w.Country] += w.Quantity
			}
		}
		if w.Quantity > 0 && readyToDrink(w, year) {
			stats.ReadyToDrink++
		}
	}
	stats.TotalValue = total.Round(2).InexactFloat64()

	return stats, nil
}

// readyToDrink reports whether year lies inside a complete drinking window
func readyToDrink(w domain.Wine, year int) bool {
	if w.DrinkFrom == nil || w.DrinkUntil == nil {
		return false
	}
	return *w.DrinkFrom <= year && year <= *w.DrinkUntil
}

// Pantry aggregates the household pantry
func (s *StatsService) Pantry(ctx context.Context) (*domain.PantryStats, error) {
	items, err := s.pantry.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, expiryWarningDays)

	stats := &domain.PantryStats{
		DistinctProducts:   len(items),
		ExpiringSoon:       []domain.PantryItem{},
		Locations:          []string{},
		QuantityByCategory: make(map[string]int),
	}

	total := decimal.Zero
	seenLocations := make(map[string]bool)
	expiry := make(map[string]time.Time)
	for _, item := range items {
		stats.TotalItems += item.Quantity
		total = total.Add(lineValue(item.Quantity, item.PurchasePrice))

		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = domain.DefaultCategory
		}
		stats.QuantityByCategory[category] += item.Quantity

		if item.Location != "" && !seenLocations[item.Location] {
			seenLocations[item.Location] = true
			stats.Locations = append(stats.Locations, item.Location)
		}

		if date, err := time.Parse("2006-01-02", item.ExpiryDate); err == nil && !date.After(horizon) {
			expiry[item.ID] = date
			stats.ExpiringSoon = append(stats.ExpiringSoon, item)
		}
	}

	sort.SliceStable(stats.ExpiringSoon, func(i, j int) bool {
		return expiry[stats.ExpiringSoon[i].ID].Before(expiry[stats.ExpiringSoon[j].ID])
	})
	sort.Strings(stats.Locations)
	stats.TotalValue = total.Round(2).InexactFloat64()

	return stats, nil
}

func lineValue(quantity int, price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}
