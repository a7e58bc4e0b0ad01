package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/housestock/backend/internal/domain"
	"github.com/tidwall/gjson"
)

const jsonLDSelector = `script[type="application/ld+json"]`

// extractStructuredData maps the first schema.org Product or Wine object found in the
// page's JSON-LD blocks. Malformed blocks are skipped.
func extractStructuredData(doc *goquery.Document) (domain.ExtractionResult, []error) {
	var (
		result  domain.ExtractionResult
		skipped []error
	)

	doc.Find(jsonLDSelector).EachWithBreak(func(i int, script *goquery.Selection) bool {
		raw := script.Text()
		if !gjson.Valid(raw) {
			skipped = append(skipped, fmt.Errorf("%w: block %d", domain.ErrMalformedStructuredData, i))
			return true
		}

		parsed := gjson.Parse(raw)
		items := []gjson.Result{parsed}
		if parsed.IsArray() {
			items = parsed.Array()
		}

		for _, item := range items {
			if product, ok := findProduct(item); ok {
				result = mapProduct(product)
				return false
			}
		}
		return true
	})

	return result, skipped
}

// findProduct searches obj and its @graph container depth-first for a Product or Wine
func findProduct(obj gjson.Result) (gjson.Result, bool) {
	if !obj.IsObject() {
		return gjson.Result{}, false
	}

	fields := obj.Map()
	if isProductType(fields["@type"]) {
		return obj, true
	}

	if graph := fields["@graph"]; graph.IsArray() {
		for _, item := range graph.Array() {
			if found, ok := findProduct(item); ok {
				return found, true
			}
		}
	}

	return gjson.Result{}, false
}

func isProductType(t gjson.Result) bool {
	if t.IsArray() {
		for _, v := range t.Array() {
			if isProductType(v) {
				return true
			}
		}
		return false
	}
	if t.Type != gjson.String {
		return false
	}
	switch strings.ToLower(t.Str) {
	case "product", "wine":
		return true
	}
	return false
}

// mapProduct converts a JSON-LD product object into an extraction result
func mapProduct(product gjson.Result) domain.ExtractionResult {
	var data domain.ExtractionResult
	fields := product.Map()

	if name := fields["name"]; name.Type == gjson.String {
		data.Name = stringPtr(cleanText(name.Str))
	}

	brand := fields["brand"]
	if brandName := brand.Get("name"); brand.IsObject() && brandName.Type == gjson.String {
		data.Producer = stringPtr(cleanText(brandName.Str))
	} else if brand.Type == gjson.String {
		data.Producer = stringPtr(cleanText(brand.Str))
	} else if manufacturer := fields["manufacturer"]; manufacturer.Type == gjson.String {
		data.Producer = stringPtr(cleanText(manufacturer.Str))
	}

	if description := fields["description"]; description.Type == gjson.String {
		data.Notes = stringPtr(truncate(cleanText(description.Str), maxNotesLength))
	}

	offer := fields["offers"]
	if offer.IsArray() {
		offer = offer.Get("0")
	}
	if offer.IsObject() {
		price := offer.Get("price")
		switch price.Type {
		case gjson.Number:
			if price.Num > 0 {
				data.PurchasePrice = floatPtr(price.Num)
			}
		case gjson.String:
			if value, ok := parsePrice(price.Str); ok {
				data.PurchasePrice = floatPtr(value)
			}
		}
	}

	origin := fields["countryOfOrigin"]
	if origin.Type == gjson.String {
		data.Country = stringPtr(cleanText(origin.Str))
	}
	if originName := origin.Get("name"); origin.IsObject() && originName.Type == gjson.String {
		data.Country = stringPtr(cleanText(originName.Str))
	}

	return data
}
