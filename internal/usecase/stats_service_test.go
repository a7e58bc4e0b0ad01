package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/housestock/backend/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestStatsService_Cellar(t *testing.T) {
	wines := &MockWineRepository{wines: []domain.Wine{
		{ID: "1", Type: domain.WineTypeRed, Country: "Italien", Quantity: 3, PurchasePrice: 19.99,
			DrinkFrom: intPtr(2020), DrinkUntil: intPtr(2030)},
		{ID: "2", Type: domain.WineTypeWhite, Country: "Deutschland", Quantity: 6, PurchasePrice: 12.5,
			DrinkFrom: intPtr(2027), DrinkUntil: intPtr(2035)},
		{ID: "3", Type: domain.WineTypeRed, Country: "Italien", Quantity: 1, PurchasePrice: 0.1,
			DrinkFrom: intPtr(2010), DrinkUntil: intPtr(2026)},
		{ID: "4", Type: domain.WineTypeSparkling, Quantity: 0, PurchasePrice: 40,
			DrinkFrom: intPtr(2020), DrinkUntil: intPtr(2030)},
		{ID: "5", Type: domain.WineTypeRose, Country: "Frankreich", Quantity: 2, PurchasePrice: 0.2},
	}}
	service := NewStatsService(wines, &MockPantryRepository{})
	service.now = fixedClock(2026, 10, 17)

	got, err := service.Cellar(context.Background())
	if err != nil {
		t.Fatalf("Cellar() error = %v", err)
	}

	if got.TotalBottles != 12 {
		t.Errorf("TotalBottles = %d, want 12", got.TotalBottles)
	}
	if got.DistinctWines != 5 {
		t.Errorf("DistinctWines = %d, want 5", got.DistinctWines)
	}
	// 59.97 + 75 + 0.1 + 0 + 0.4
	if got.TotalValue != 135.47 {
		t.Errorf("TotalValue = %v, want 135.47", got.TotalValue)
	}
	if got.ReadyToDrink != 2 {
		t.Errorf("ReadyToDrink = %d, want 2", got.ReadyToDrink)
	}
	if got.BottlesByType["rot"] != 4 || got.BottlesByType["weiss"] != 6 || got.BottlesByType["rosé"] != 2 {
		t.Errorf("BottlesByType = %v", got.BottlesByType)
	}
	if _, ok := got.BottlesByType["schaumwein"]; ok {
		t.Error("empty wines must not count towards a type")
	}
	if got.BottlesByCountry["Italien"] != 4 || len(got.BottlesByCountry) != 3 {
		t.Errorf("BottlesByCountry = %v", got.BottlesByCountry)
	}
}

func TestStatsService_CellarEmpty(t *testing.T) {
	service := NewStatsService(&MockWineRepository{}, &MockPantryRepository{})

	got, err := service.Cellar(context.Background())
	if err != nil {
		t.Fatalf("Cellar() error = %v", err)
	}
	if got.TotalBottles != 0 || got.TotalValue != 0 || got.BottlesByType == nil {
		t.Errorf("unexpected stats for empty cellar: %+v", got)
	}
}

func TestStatsService_Pantry(t *testing.T) {
	pantry := &MockPantryRepository{items: []domain.PantryItem{
		{ID: "a", Name: "Joghurt", Category: "Kühlware", Quantity: 4, Location: "Kühlschrank",
			ExpiryDate: "2026-10-20", PurchasePrice: 0.79},
		{ID: "b", Name: "Milch", Category: "Kühlware", Quantity: 1, Location: "Kühlschrank",
			ExpiryDate: "2026-10-10", PurchasePrice: 1.19},
		{ID: "c", Name: "Reis", Quantity: 2, Location: "Vorratsschrank",
			ExpiryDate: "2027-06-01", PurchasePrice: 2.49},
		{ID: "d", Name: "Salz", Category: "Gewürze", Quantity: 1, ExpiryDate: ""},
		{ID: "e", Name: "Butter", Category: "Kühlware", Quantity: 2, Location: "Keller",
			ExpiryDate: "2026-10-24", PurchasePrice: 2.29},
		{ID: "f", Name: "Senf", Category: "Gewürze", Quantity: 1, ExpiryDate: "bald"},
	}}
	service := NewStatsService(&MockWineRepository{}, pantry)
	service.now = fixedClock(2026, 10, 17)

	got, err := service.Pantry(context.Background())
	if err != nil {
		t.Fatalf("Pantry() error = %v", err)
	}

	if got.TotalItems != 11 {
		t.Errorf("TotalItems = %d, want 11", got.TotalItems)
	}
	if got.DistinctProducts != 6 {
		t.Errorf("DistinctProducts = %d, want 6", got.DistinctProducts)
	}
	// 3.16 + 1.19 + 4.98 + 0 + 4.58 + 0
	if got.TotalValue != 13.91 {
		t.Errorf("TotalValue = %v, want 13.91", got.TotalValue)
	}

	wantExpiring := []string{"b", "a", "e"}
	if len(got.ExpiringSoon) != len(wantExpiring) {
		t.Fatalf("ExpiringSoon = %v, want ids %v", got.ExpiringSoon, wantExpiring)
	}
	for i, id := range wantExpiring {
		if got.ExpiringSoon[i].ID != id {
			t.Errorf("ExpiringSoon[%d] = %s, want %s", i, got.ExpiringSoon[i].ID, id)
		}
	}

	wantLocations := []string{"Keller", "Kühlschrank", "Vorratsschrank"}
	if len(got.Locations) != len(wantLocations) {
		t.Fatalf("Locations = %v, want %v", got.Locations, wantLocations)
	}
	for i, loc := range wantLocations {
		if got.Locations[i] != loc {
			t.Errorf("Locations[%d] = %q, want %q", i, got.Locations[i], loc)
		}
	}

	if got.QuantityByCategory["Kühlware"] != 7 || got.QuantityByCategory[domain.DefaultCategory] != 2 {
		t.Errorf("QuantityByCategory = %v", got.QuantityByCategory)
	}
}

func TestStatsService_RepositoryError(t *testing.T) {
	service := NewStatsService(
		&MockWineRepository{listError: domain.ErrStoreUnavailable},
		&MockPantryRepository{listError: domain.ErrStoreUnavailable},
	)

	if _, err := service.Cellar(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("Cellar() error = %v", err)
	}
	if _, err := service.Pantry(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("Pantry() error = %v", err)
	}
}
