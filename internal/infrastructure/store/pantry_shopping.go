package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housestock/backend/internal/domain"
)

// PantryShoppingStore implements domain.PantryShoppingRepository
type PantryShoppingStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewPantryShoppingStore creates a pantry shopping list repository on db
func NewPantryShoppingStore(db *sql.DB) *PantryShoppingStore {
	return &PantryShoppingStore{db: db, now: time.Now}
}

// List returns the pantry shopping list, newest first
func (s *PantryShoppingStore) List(ctx context.Context) ([]domain.PantryShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, quantity, unit, estimated_price, COALESCE(reason, ''), COALESCE(checked, 0)
		FROM pantry_shopping_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list pantry shopping items: %w", err)
	}
	defer rows.Close()

	items := []domain.PantryShoppingItem{}
	for rows.Next() {
		var (
			item  domain.PantryShoppingItem
			price decimal.Decimal
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit,
			&price, &item.Reason, &item.Checked); err != nil {
			return nil, fmt.Errorf("scan pantry shopping item: %w", err)
		}
		item.EstimatedPrice = price.InexactFloat64()
		items = append(items, item)
	}

	return items, rows.Err()
}

// Create inserts item using its ID
func (s *PantryShoppingStore) Create(ctx context.Context, item *domain.PantryShoppingItem) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pantry_shopping_items (id, name, category, quantity, unit, estimated_price, reason, checked, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Category, item.Quantity, item.Unit,
		money(item.EstimatedPrice), item.Reason, item.Checked, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert pantry shopping item: %w", err)
	}
	return nil
}

// SetChecked marks the item as bought or not
func (s *PantryShoppingStore) SetChecked(ctx context.Context, id string, checked bool) error {
	return setChecked(ctx, s.db, "pantry_shopping_items", id, checked)
}

// Delete removes the item with the given id
func (s *PantryShoppingStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.db, "pantry_shopping_items", id)
}
