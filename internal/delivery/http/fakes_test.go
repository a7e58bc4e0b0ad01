package http

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/housestock/backend/internal/domain"
)

// memWines is an in-memory domain.WineRepository
type memWines struct {
	mu    sync.Mutex
	wines []domain.Wine
}

func (m *memWines) List(ctx context.Context) ([]domain.Wine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Wine, len(m.wines))
	copy(out, m.wines)
	return out, nil
}

func (m *memWines) Create(ctx context.Context, wine *domain.Wine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wines = append([]domain.Wine{*wine}, m.wines...)
	return nil
}

func (m *memWines) Update(ctx context.Context, id string, changes []domain.Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.wines {
		if m.wines[i].ID != id {
			continue
		}
		for _, ch := range changes {
			switch ch.Column {
			case "quantity":
				m.wines[i].Quantity = ch.Value.(int)
			case "name":
				m.wines[i].Name = ch.Value.(string)
			case "notes":
				m.wines[i].Notes = ch.Value.(string)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: wines %s", domain.ErrNotFound, id)
}

func (m *memWines) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.wines {
		if m.wines[i].ID == id {
			m.wines = append(m.wines[:i], m.wines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: wines %s", domain.ErrNotFound, id)
}

// memPantry is an in-memory domain.PantryRepository
type memPantry struct {
	items []domain.PantryItem
}

func (m *memPantry) List(ctx context.Context) ([]domain.PantryItem, error) {
	return m.items, nil
}

func (m *memPantry) Create(ctx context.Context, item *domain.PantryItem) error {
	m.items = append(m.items, *item)
	return nil
}

func (m *memPantry) Update(ctx context.Context, id string, changes []domain.Change) error {
	for i := range m.items {
		if m.items[i].ID == id {
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memPantry) Delete(ctx context.Context, id string) error {
	return domain.ErrNotFound
}

// memShopping is an in-memory shopping list for both wine and pantry items
type memShopping struct {
	wines  []domain.ShoppingItem
	pantry []domain.PantryShoppingItem
}

type wineShopping struct{ *memShopping }

func (m wineShopping) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	return m.wines, nil
}

func (m wineShopping) Create(ctx context.Context, item *domain.ShoppingItem) error {
	m.wines = append(m.wines, *item)
	return nil
}

func (m wineShopping) SetChecked(ctx context.Context, id string, checked bool) error {
	for i := range m.wines {
		if m.wines[i].ID == id {
			m.wines[i].Checked = checked
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m wineShopping) Delete(ctx context.Context, id string) error {
	for i := range m.wines {
		if m.wines[i].ID == id {
			m.wines = append(m.wines[:i], m.wines[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type pantryShopping struct{ *memShopping }

func (m pantryShopping) List(ctx context.Context) ([]domain.PantryShoppingItem, error) {
	return m.pantry, nil
}

func (m pantryShopping) Create(ctx context.Context, item *domain.PantryShoppingItem) error {
	m.pantry = append(m.pantry, *item)
	return nil
}

func (m pantryShopping) SetChecked(ctx context.Context, id string, checked bool) error {
	for i := range m.pantry {
		if m.pantry[i].ID == id {
			m.pantry[i].Checked = checked
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m pantryShopping) Delete(ctx context.Context, id string) error {
	return nil
}

// memSettings is an in-memory domain.SettingsRepository
type memSettings struct {
	name string
}

func (m *memSettings) Get(ctx context.Context) (*domain.Settings, error) {
	if m.name == "" {
		return &domain.Settings{CellarName: domain.DefaultCellarName}, nil
	}
	return &domain.Settings{CellarName: m.name}, nil
}

func (m *memSettings) SetCellarName(ctx context.Context, name string) error {
	m.name = name
	return nil
}

// stubFetcher serves a fixed page or error
type stubFetcher struct {
	html string
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.html, nil
}

// stubPinger simulates the database health
type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

var errDatabaseDown = errors.New("connection refused")
