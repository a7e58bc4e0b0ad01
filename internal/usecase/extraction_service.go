package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/housestock/backend/internal/domain"
	"github.com/housestock/backend/internal/extractor"
	"github.com/housestock/backend/internal/metrics"
)

// ExtractionService pre-fills wine data from a shop product page.
// Flow: validate URL -> fetch through relay -> extract -> return
type ExtractionService struct {
	fetcher   domain.PageFetcher
	extractor *extractor.Extractor
	metrics   *metrics.Metrics
	log       *zap.SugaredLogger
}

// NewExtractionService creates a new extraction service with dependencies
func NewExtractionService(
	fetcher domain.PageFetcher,
	ext *extractor.Extractor,
	m *metrics.Metrics,
	log *zap.SugaredLogger,
) *ExtractionService {
	return &ExtractionService{
		fetcher:   fetcher,
		extractor: ext,
		metrics:   m,
		log:       log,
	}
}

// Extract loads rawURL and returns whatever wine data it carries.
// Only a failed fetch is an error; a page without any recognised field yields an empty result.
func (s *ExtractionService) Extract(ctx context.Context, rawURL string) (*domain.ExtractionResult, error) {
	pageURL, err := validateProductURL(rawURL)
	if err != nil {
		s.metrics.Extractions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	start := time.Now()
	defer func() {
		s.metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	}()

	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		s.metrics.Extractions.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.log.Warnw("Product page fetch failed", "url", pageURL, "error", err)
		if !errors.Is(err, domain.ErrFetchFailed) {
			err = &domain.FetchError{URL: pageURL, Err: err}
		}
		return nil, err
	}

	report := s.extractor.Extract(html)
	for _, skipped := range report.Skipped {
		s.log.Debugw("Skipped structured data block", "url", pageURL, "error", skipped)
	}
	s.metrics.SkippedBlocks.Add(float64(len(report.Skipped)))

	result := report.Result
	if result.IsEmpty() {
		s.metrics.Extractions.WithLabelValues(metrics.OutcomeEmpty).Inc()
	} else {
		s.metrics.Extractions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}

	s.log.Infow("Extracted product page", "url", pageURL, "empty", result.IsEmpty())
	return &result, nil
}

// validateProductURL accepts absolute http and https URLs only
func validateProductURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", fmt.Errorf("%w: url is required", domain.ErrInvalidRequest)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute http(s) URL", domain.ErrInvalidRequest, rawURL)
	}

	return u.String(), nil
}
