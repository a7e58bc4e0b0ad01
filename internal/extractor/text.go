package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxNotesLength = 500

var leadingFloatRegex = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// cleanText collapses every run of whitespace into a single space and trims the ends
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most n characters
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// parsePrice reads the leading number of s. Zero, negative or unparsable prices are
// reported as absent.
func parsePrice(s string) (float64, bool) {
	match := leadingFloatRegex.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
