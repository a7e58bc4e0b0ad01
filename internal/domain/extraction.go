package domain

// ExtractionResult is a best-effort partial wine record recognised on a product page.
// Every field is optional; nil means the field was not recognised.
type ExtractionResult struct {
	Name          *string   `json:"name,omitempty"`
	Producer      *string   `json:"producer,omitempty"`
	Vintage       *int      `json:"vintage,omitempty"`
	Region        *string   `json:"region,omitempty"`
	Country       *string   `json:"country,omitempty"`
	Type          *WineType `json:"type,omitempty"`
	Grape         *string   `json:"grape,omitempty"`
	PurchasePrice *float64  `json:"purchasePrice,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// IsEmpty reports whether no field was recognised
func (r ExtractionResult) IsEmpty() bool {
	return r.Name == nil && r.Producer == nil && r.Vintage == nil &&
		r.Region == nil && r.Country == nil && r.Type == nil &&
		r.Grape == nil && r.PurchasePrice == nil && r.Notes == nil
}

// ExtractRequest represents a request to pre-fill a wine from a shop URL
type ExtractRequest struct {
	URL string `json:"url" binding:"required"`
}
