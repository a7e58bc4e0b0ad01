package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housestock/backend/internal/domain"
)

const wineColumns = `id, name, producer, vintage, region, country, type, grape, quantity,
	purchase_price, COALESCE(purchase_date, ''), COALESCE(purchase_location, ''),
	drink_from, drink_until, rating, personal_rating, COALESCE(notes, ''),
	COALESCE(image_url, ''), COALESCE(is_gift, 0), COALESCE(gift_from, '')`

var wineTable = table{
	name: "wines",
	updatable: columnSet(
		"name", "producer", "vintage", "region", "country", "type", "grape",
		"quantity", "purchase_price", "purchase_date", "purchase_location",
		"drink_from", "drink_until", "rating", "personal_rating",
		"notes", "image_url", "is_gift", "gift_from",
	),
	touchable: true,
}

// WineStore implements domain.WineRepository
type WineStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewWineStore creates a wine repository on db
func NewWineStore(db *sql.DB) *WineStore {
	return &WineStore{db: db, now: time.Now}
}

// List returns all wines, newest first
func (s *WineStore) List(ctx context.Context) ([]domain.Wine, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+wineColumns+" FROM wines ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}
	defer rows.Close()

	wines := []domain.Wine{}
	for rows.Next() {
		var (
			w                                           domain.Wine
			price                                       decimal.Decimal
			drinkFrom, drinkUntil, rating, personalRate sql.NullInt64
		)
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Producer, &w.Vintage, &w.Region, &w.Country, &w.Type, &w.Grape,
			&w.Quantity, &price, &w.PurchaseDate, &w.PurchaseLocation,
			&drinkFrom, &drinkUntil, &rating, &personalRate, &w.Notes,
			&w.ImageURL, &w.IsGift, &w.GiftFrom,
		); err != nil {
			return nil, fmt.Errorf("scan wine: %w", err)
		}
		w.PurchasePrice = price.InexactFloat64()
		w.DrinkFrom = intOrNil(drinkFrom)
		w.DrinkUntil = intOrNil(drinkUntil)
		w.Rating = intOrNil(rating)
		w.PersonalRating = intOrNil(personalRate)
		wines = append(wines, w)
	}

	return wines, rows.Err()
}

// Create inserts wine using its ID
func (s *WineStore) Create(ctx context.Context, w *domain.Wine) error {
	now := s.now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wines (id, name, producer, vintage, region, country, type, grape,
			quantity, purchase_price, purchase_date, purchase_location,
			drink_from, drink_until, rating, personal_rating, notes, image_url,
			is_gift, gift_from, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Producer, w.Vintage, w.Region, w.Country, string(w.Type), w.Grape,
		w.Quantity, money(w.PurchasePrice), w.PurchaseDate, w.PurchaseLocation,
		nullableInt(w.DrinkFrom), nullableInt(w.DrinkUntil),
		nullableInt(w.Rating), nullableInt(w.PersonalRating),
		w.Notes, w.ImageURL, w.IsGift, w.GiftFrom, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert wine: %w", err)
	}
	return nil
}

// Update applies a partial update to the wine with the given id
func (s *WineStore) Update(ctx context.Context, id string, changes []domain.Change) error {
	return update(ctx, s.db, wineTable, id, changes, s.now().UTC())
}

// Delete removes the wine with the given id
func (s *WineStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.db, wineTable.name, id)
}
