package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/housestock/backend/internal/domain"
)

const settingsCacheKey = "settings"

// SettingsService reads and renames the cellar settings. Reads are served from
// the cache until the settings change.
type SettingsService struct {
	repo     domain.SettingsRepository
	cache    domain.CacheRepository
	cacheTTL time.Duration
	log      *zap.SugaredLogger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo domain.SettingsRepository, cache domain.CacheRepository, cacheTTL time.Duration, log *zap.SugaredLogger) *SettingsService {
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}
	return &SettingsService{repo: repo, cache: cache, cacheTTL: cacheTTL, log: log}
}

// Get returns the current settings
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if cached, err := s.cache.Get(ctx, settingsCacheKey); err == nil {
		if settings, ok := cached.(domain.Settings); ok {
			return &settings, nil
		}
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, settingsCacheKey, *settings, s.cacheTTL); err != nil {
		s.log.Warnw("Failed to cache settings", "error", err)
	}
	return settings, nil
}

// Update renames the cellar when cellarName is given and returns the resulting settings
func (s *SettingsService) Update(ctx context.Context, cellarName *string) (*domain.Settings, error) {
	if cellarName == nil {
		return s.Get(ctx)
	}

	name := strings.TrimSpace(*cellarName)
	if name == "" {
		return nil, fmt.Errorf("%w: cellarName must not be empty", domain.ErrInvalidRequest)
	}

	if err := s.repo.SetCellarName(ctx, name); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, settingsCacheKey); err != nil {
		s.log.Warnw("Failed to invalidate cached settings", "error", err)
	}

	return &domain.Settings{CellarName: name}, nil
}
