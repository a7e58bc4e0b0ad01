package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/housestock/backend/internal/domain"
)

var (
	yearInNameRegex    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	multipleSpaceRegex = regexp.MustCompile(`[\s\p{Zs}]{2,}`)
)

// wineTypePattern pairs a wine type with the keywords that indicate it
type wineTypePattern struct {
	wineType domain.WineType
	pattern  *regexp.Regexp
}

// wineTypePatterns are evaluated in order; the first match decides the type
var wineTypePatterns = []wineTypePattern{
	{domain.WineTypeSparkling, wordsRegex(`schaumwein|champagne|prosecco|cava|crémant|spumante|sekt|brut|franciacorta|perlwein`)},
	{domain.WineTypeRose, wordsRegex(`rosé|rosato|rosado`)},
	{domain.WineTypeDessert, wordsRegex(`dessertwein|süsswein|sauternes|auslese|beerenauslese|trockenbeerenauslese|eiswein|tokaji|moscato\s*d'asti|vin\s*doux|passito|recioto`)},
	{domain.WineTypeWhite, wordsRegex(`weisswein|white\s*wine|vin\s*blanc|vino\s*bianco|chardonnay|sauvignon\s*blanc|riesling|pinot\s*grigio|grüner\s*veltliner|gewürztraminer|chenin\s*blanc|viognier|albariño|verdejo|müller.thurgau|silvaner|weissburgunder|chasselas`)},
	{domain.WineTypeRed, wordsRegex(`rotwein|red\s*wine|vin\s*rouge|vino\s*rosso|cabernet|merlot|pinot\s*noir|syrah|shiraz|nebbiolo|sangiovese|tempranillo|malbec|grenache|blaufränkisch|zweigelt|spätburgunder|primitivo|zinfandel`)},
}

// wordsRegex matches any of the alternatives as a whole word. RE2's \b only knows ASCII
// word characters, so the boundaries are spelled out with Unicode classes.
func wordsRegex(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(?:` + alternatives + `)(?:[^\p{L}\p{N}_]|$)`)
}

// postProcess derives the vintage from the name and infers the wine type.
// A year in the name outside 1900..currentYear is left in place.
func postProcess(data domain.ExtractionResult, currentYear int) domain.ExtractionResult {
	if data.Vintage == nil && data.Name != nil {
		if year := yearInNameRegex.FindString(*data.Name); year != "" {
			if v, err := strconv.Atoi(year); err == nil && validVintage(v, currentYear) {
				data.Vintage = intPtr(v)
				name := strings.Replace(*data.Name, year, "", 1)
				name = multipleSpaceRegex.ReplaceAllString(name, " ")
				data.Name = stringPtr(strings.TrimSpace(name))
			}
		}
	}

	if data.Type == nil {
		var parts []string
		for _, field := range []*string{data.Name, data.Grape, data.Notes} {
			if field != nil {
				parts = append(parts, *field)
			}
		}
		if t, ok := DetectWineType(strings.Join(parts, " ")); ok {
			data.Type = &t
		}
	}

	return data
}

// DetectWineType infers a wine type from free text
func DetectWineType(text string) (domain.WineType, bool) {
	lower := strings.ToLower(text)
	for _, p := range wineTypePatterns {
		if p.pattern.MatchString(lower) {
			return p.wineType, true
		}
	}
	return "", false
}
