package domain

import (
	"context"
	"time"
)

// Change is a single column assignment of a partial update
type Change struct {
	Column string
	Value  interface{}
}

// WineRepository defines persistence operations for wines
type WineRepository interface {
	List(ctx context.Context) ([]Wine, error)
	Create(ctx context.Context, wine *Wine) error
	Update(ctx context.Context, id string, changes []Change) error
	Delete(ctx context.Context, id string) error
}

// ShoppingRepository defines persistence operations for the wine shopping list
type ShoppingRepository interface {
	List(ctx context.Context) ([]ShoppingItem, error)
	Create(ctx context.Context, item *ShoppingItem) error
	SetChecked(ctx context.Context, id string, checked bool) error
	Delete(ctx context.Context, id string) error
}

// PantryRepository defines persistence operations for pantry items
type PantryRepository interface {
	List(ctx context.Context) ([]PantryItem, error)
	Create(ctx context.Context, item *PantryItem) error
	Update(ctx context.Context, id string, changes []Change) error
	Delete(ctx context.Context, id string) error
}

// PantryShoppingRepository defines persistence operations for the pantry shopping list
type PantryShoppingRepository interface {
	List(ctx context.Context) ([]PantryShoppingItem, error)
	Create(ctx context.Context, item *PantryShoppingItem) error
	SetChecked(ctx context.Context, id string, checked bool) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepository reads and writes the settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	SetCellarName(ctx context.Context, name string) error
}

// PageFetcher retrieves the HTML of a product page
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RateLimiter decides whether a caller identified by key may proceed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
