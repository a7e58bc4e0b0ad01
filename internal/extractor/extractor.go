// Package extractor recognises wine data on shop product pages.
//
// Three sources are read from a single HTML document, in priority order: JSON-LD
// structured data, Open Graph / meta tags, and DOM / body-text heuristics. They are folded
// with Merge so that a field set by a higher-priority source is never replaced, and the
// merged record is post-processed to derive the vintage and the wine type.
package extractor

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/housestock/backend/internal/domain"
)

// Extractor turns product page HTML into an ExtractionResult. It holds no state between
// calls and is safe for concurrent use.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor
type Option func(*Extractor)

// WithClock overrides the clock used to bound vintages by the current year
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// New creates a new Extractor
func New(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report is the outcome of one extraction
type Report struct {
	Result domain.ExtractionResult
	// Skipped lists JSON-LD blocks ignored because they were not valid JSON
	Skipped []error
}

// Extract recognises wine data in html. An empty result is a valid outcome.
func (e *Extractor) Extract(html string) Report {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Report{}
	}

	currentYear := e.now().Year()

	structured, skipped := extractStructuredData(doc)
	sources := []domain.ExtractionResult{
		structured,
		extractMetaTags(doc),
		extractPageContent(doc, currentYear),
	}

	var merged domain.ExtractionResult
	for _, source := range sources {
		merged = Merge(merged, source)
	}

	return Report{
		Result:  postProcess(merged, currentYear),
		Skipped: skipped,
	}
}
