package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housestock/backend/internal/domain"
)

// ShoppingStore implements domain.ShoppingRepository
type ShoppingStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewShoppingStore creates a wine shopping list repository on db
func NewShoppingStore(db *sql.DB) *ShoppingStore {
	return &ShoppingStore{db: db, now: time.Now}
}

// List returns the wine shopping list, newest first
func (s *ShoppingStore) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, producer, quantity, estimated_price, COALESCE(reason, ''), COALESCE(checked, 0)
		FROM shopping_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	defer rows.Close()

	items := []domain.ShoppingItem{}
	for rows.Next() {
		var (
			item  domain.ShoppingItem
			price decimal.Decimal
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Producer, &item.Quantity, &price, &item.Reason, &item.Checked); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		item.EstimatedPrice = price.InexactFloat64()
		items = append(items, item)
	}

	return items, rows.Err()
}

// Create inserts item using its ID
func (s *ShoppingStore) Create(ctx context.Context, item *domain.ShoppingItem) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shopping_items (id, name, producer, quantity, estimated_price, reason, checked, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Producer, item.Quantity, money(item.EstimatedPrice),
		item.Reason, item.Checked, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert shopping item: %w", err)
	}
	return nil
}

// SetChecked marks the item as bought or not
func (s *ShoppingStore) SetChecked(ctx context.Context, id string, checked bool) error {
	return setChecked(ctx, s.db, "shopping_items", id, checked)
}

// Delete removes the item with the given id
func (s *ShoppingStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.db, "shopping_items", id)
}
