package extractor

import "github.com/housestock/backend/internal/domain"

// Merge folds candidate into acc. A field is taken from candidate only when acc does not
// have it yet, so values from higher-priority sources are never overwritten.
func Merge(acc, candidate domain.ExtractionResult) domain.ExtractionResult {
	if acc.Name == nil {
		acc.Name = candidate.Name
	}
	if acc.Producer == nil {
		acc.Producer = candidate.Producer
	}
	if acc.Vintage == nil {
		acc.Vintage = candidate.Vintage
	}
	if acc.Region == nil {
		acc.Region = candidate.Region
	}
	if acc.Country == nil {
		acc.Country = candidate.Country
	}
	if acc.Type == nil {
		acc.Type = candidate.Type
	}
	if acc.Grape == nil {
		acc.Grape = candidate.Grape
	}
	if acc.PurchasePrice == nil {
		acc.PurchasePrice = candidate.PurchasePrice
	}
	if acc.Notes == nil {
		acc.Notes = candidate.Notes
	}
	return acc
}
