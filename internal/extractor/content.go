package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/housestock/backend/internal/domain"
)

const (
	maxTitleLength = 200
	minVintage     = 1900

	titleFallbackSelector = `[class*="product-name"], [class*="product_name"], [class*="productName"]`
	priceSelector         = `[class*="price"]:not([class*="old"]):not([class*="crossed"]), [itemprop="price"], .product-price`
)

var (
	pricePatternRegex   = regexp.MustCompile(`\d+[.,]\d{2}`)
	vintageKeywordRegex = regexp.MustCompile(`(?i)(?:Jahrgang|Vintage|Millésime|Annata|Jahr|Ernte)[:\s\p{Zs}]*(\d{4})`)
)

// extractPageContent applies DOM and body-text heuristics
func extractPageContent(doc *goquery.Document, currentYear int) domain.ExtractionResult {
	var data domain.ExtractionResult

	titleEl := doc.Find("h1").First()
	if titleEl.Length() == 0 {
		titleEl = doc.Find(titleFallbackSelector).First()
	}
	if titleEl.Length() > 0 {
		title := cleanText(titleEl.Text())
		if title != "" && utf8.RuneCountInString(title) < maxTitleLength {
			data.Name = &title
		}
	}

	if priceEl := doc.Find(priceSelector).First(); priceEl.Length() > 0 {
		if match := pricePatternRegex.FindString(priceEl.Text()); match != "" {
			if value, ok := parsePrice(strings.Replace(match, ",", ".", 1)); ok {
				data.PurchasePrice = floatPtr(value)
			}
		}
	}

	extractWineDetailsFromText(doc.Find("body").Text(), currentYear, &data)

	return data
}

// extractWineDetailsFromText fills region, country, grape and vintage from free text.
// Matching is plain substring search, so unrelated text (footers, menus) can produce hits.
func extractWineDetailsFromText(text string, currentYear int, data *domain.ExtractionResult) {
	lower := strings.ToLower(text)

	if data.Region == nil {
		for _, region := range wineRegions {
			if strings.Contains(lower, strings.ToLower(region)) {
				data.Region = stringPtr(region)
				break
			}
		}
	}

	if data.Country == nil {
	countries:
		for _, c := range wineCountries {
			for _, keyword := range c.keywords {
				if strings.Contains(lower, keyword) {
					data.Country = stringPtr(c.country)
					break countries
				}
			}
		}
	}

	if data.Grape == nil {
		for _, grape := range grapeVarieties {
			if strings.Contains(lower, strings.ToLower(grape)) {
				data.Grape = stringPtr(grape)
				break
			}
		}
	}

	if data.Vintage == nil {
		if match := vintageKeywordRegex.FindStringSubmatch(text); match != nil {
			year, err := strconv.Atoi(match[1])
			if err == nil && validVintage(year, currentYear) {
				data.Vintage = intPtr(year)
			}
		}
	}
}

func validVintage(year, currentYear int) bool {
	return year >= minVintage && year <= currentYear
}
