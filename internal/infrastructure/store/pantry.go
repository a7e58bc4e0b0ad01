package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housestock/backend/internal/domain"
)

var pantryTable = table{
	name: "pantry_items",
	updatable: columnSet(
		"name", "category", "quantity", "unit", "location",
		"expiry_date", "purchase_price", "notes",
	),
	touchable: true,
}

// PantryStore implements domain.PantryRepository
type PantryStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewPantryStore creates a pantry repository on db
func NewPantryStore(db *sql.DB) *PantryStore {
	return &PantryStore{db: db, now: time.Now}
}

// List returns all pantry items, newest first
func (s *PantryStore) List(ctx context.Context) ([]domain.PantryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, quantity, unit, location, COALESCE(expiry_date, ''),
			purchase_price, COALESCE(notes, '')
		FROM pantry_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	defer rows.Close()

	items := []domain.PantryItem{}
	for rows.Next() {
		var (
			item  domain.PantryItem
			price decimal.Decimal
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit,
			&item.Location, &item.ExpiryDate, &price, &item.Notes); err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		item.PurchasePrice = price.InexactFloat64()
		items = append(items, item)
	}

	return items, rows.Err()
}

// Create inserts item using its ID
func (s *PantryStore) Create(ctx context.Context, item *domain.PantryItem) error {
	now := s.now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pantry_items (id, name, category, quantity, unit, location, expiry_date,
			purchase_price, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Category, item.Quantity, item.Unit, item.Location,
		item.ExpiryDate, money(item.PurchasePrice), item.Notes, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert pantry item: %w", err)
	}
	return nil
}

// Update applies a partial update to the item with the given id
func (s *PantryStore) Update(ctx context.Context, id string, changes []domain.Change) error {
	return update(ctx, s.db, pantryTable, id, changes, s.now().UTC())
}

// Delete removes the item with the given id
func (s *PantryStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.db, pantryTable.name, id)
}
