package extractor

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/housestock/backend/internal/domain"
)

// extractMetaTags reads Open Graph and standard meta tags
func extractMetaTags(doc *goquery.Document) domain.ExtractionResult {
	var data domain.ExtractionResult

	if title := metaContent(doc, "property", "og:title"); title != "" {
		data.Name = stringPtr(cleanText(title))
	}

	description := firstNonEmpty(
		metaContent(doc, "property", "og:description"),
		metaContent(doc, "name", "description"),
	)
	if description != "" {
		data.Notes = stringPtr(truncate(cleanText(description), maxNotesLength))
	}

	price := firstNonEmpty(
		metaContent(doc, "property", "product:price:amount"),
		metaContent(doc, "property", "og:price:amount"),
	)
	if value, ok := parsePrice(price); ok {
		data.PurchasePrice = floatPtr(value)
	}

	brand := firstNonEmpty(
		metaContent(doc, "property", "product:brand"),
		metaContent(doc, "property", "og:brand"),
	)
	if brand != "" {
		data.Producer = stringPtr(cleanText(brand))
	}

	return data
}

// metaContent returns the content attribute of the first meta[attr="value"] tag
func metaContent(doc *goquery.Document, attr, value string) string {
	selector := fmt.Sprintf(`meta[%s=%q]`, attr, value)
	content, _ := doc.Find(selector).First().Attr("content")
	return content
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
