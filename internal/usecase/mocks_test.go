package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/housestock/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]interface{}
	getCalled int
	setError  error
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: make(map[string]interface{})}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.getCalled++
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockWineRepository is a mock implementation of domain.WineRepository
type MockWineRepository struct {
	wines        []domain.Wine
	created      []*domain.Wine
	lastID       string
	lastChanges  []domain.Change
	listError    error
	createError  error
	updateError  error
	deleteError  error
	deleteCalled bool
}

func (m *MockWineRepository) List(ctx context.Context) ([]domain.Wine, error) {
	return m.wines, m.listError
}

func (m *MockWineRepository) Create(ctx context.Context, wine *domain.Wine) error {
	if m.createError != nil {
		return m.createError
	}
	m.created = append(m.created, wine)
	return nil
}

func (m *MockWineRepository) Update(ctx context.Context, id string, changes []domain.Change) error {
	m.lastID = id
	m.lastChanges = changes
	return m.updateError
}

func (m *MockWineRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalled = true
	m.lastID = id
	return m.deleteError
}

// MockPantryRepository is a mock implementation of domain.PantryRepository
type MockPantryRepository struct {
	items       []domain.PantryItem
	created     []*domain.PantryItem
	lastChanges []domain.Change
	listError   error
}

func (m *MockPantryRepository) List(ctx context.Context) ([]domain.PantryItem, error) {
	return m.items, m.listError
}

func (m *MockPantryRepository) Create(ctx context.Context, item *domain.PantryItem) error {
	m.created = append(m.created, item)
	return nil
}

func (m *MockPantryRepository) Update(ctx context.Context, id string, changes []domain.Change) error {
	m.lastChanges = changes
	return nil
}

func (m *MockPantryRepository) Delete(ctx context.Context, id string) error {
	return nil
}

// MockShoppingRepository is a mock implementation of domain.ShoppingRepository
type MockShoppingRepository struct {
	items   []domain.ShoppingItem
	created []*domain.ShoppingItem
	checked map[string]bool
}

func (m *MockShoppingRepository) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	return m.items, nil
}

func (m *MockShoppingRepository) Create(ctx context.Context, item *domain.ShoppingItem) error {
	m.created = append(m.created, item)
	return nil
}

func (m *MockShoppingRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	if m.checked == nil {
		m.checked = make(map[string]bool)
	}
	m.checked[id] = checked
	return nil
}

func (m *MockShoppingRepository) Delete(ctx context.Context, id string) error {
	return fmt.Errorf("%w: shopping_items %s", domain.ErrNotFound, id)
}

// MockPantryShoppingRepository is a mock implementation of domain.PantryShoppingRepository
type MockPantryShoppingRepository struct {
	created []*domain.PantryShoppingItem
	checked map[string]bool
}

func (m *MockPantryShoppingRepository) List(ctx context.Context) ([]domain.PantryShoppingItem, error) {
	return nil, nil
}

func (m *MockPantryShoppingRepository) Create(ctx context.Context, item *domain.PantryShoppingItem) error {
	m.created = append(m.created, item)
	return nil
}

func (m *MockPantryShoppingRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	if m.checked == nil {
		m.checked = make(map[string]bool)
	}
	m.checked[id] = checked
	return nil
}

func (m *MockPantryShoppingRepository) Delete(ctx context.Context, id string) error {
	return nil
}

// MockSettingsRepository is a mock implementation of domain.SettingsRepository
type MockSettingsRepository struct {
	name      string
	getCalled int
	getError  error
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	m.getCalled++
	if m.getError != nil {
		return nil, m.getError
	}
	return &domain.Settings{CellarName: m.name}, nil
}

func (m *MockSettingsRepository) SetCellarName(ctx context.Context, name string) error {
	m.name = name
	return nil
}

// MockPageFetcher is a mock implementation of domain.PageFetcher
type MockPageFetcher struct {
	html       string
	err        error
	requested  string
	fetchCalls int
}

func (m *MockPageFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	m.fetchCalls++
	m.requested = pageURL
	return m.html, m.err
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	}
}
