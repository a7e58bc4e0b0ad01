package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/housestock/backend/internal/domain"
)

// SettingsStore implements domain.SettingsRepository on the single settings row
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a settings repository on db
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the settings, falling back to defaults when the row is missing or empty
func (s *SettingsStore) Get(ctx context.Context) (*domain.Settings, error) {
	var name sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT cellar_name FROM settings WHERE id = 1").Scan(&name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	settings := &domain.Settings{CellarName: domain.DefaultCellarName}
	if name.Valid && name.String != "" {
		settings.CellarName = name.String
	}
	return settings, nil
}

// SetCellarName renames the cellar
func (s *SettingsStore) SetCellarName(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE settings SET cellar_name = ? WHERE id = 1", name)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		if _, err := s.db.ExecContext(ctx, "INSERT INTO settings (id, cellar_name) VALUES (1, ?)", name); err != nil {
			return fmt.Errorf("insert settings: %w", err)
		}
	}
	return nil
}
