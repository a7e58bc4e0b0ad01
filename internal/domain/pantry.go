package domain

// DefaultUnit is the unit assigned when none is given
const DefaultUnit = "Stück"

// DefaultCategory groups pantry items without a category in statistics
const DefaultCategory = "Sonstiges"

// PantryItem represents a household supply in the pantry
type PantryItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	Location      string  `json:"location"`
	ExpiryDate    string  `json:"expiryDate"` // YYYY-MM-DD or empty
	PurchasePrice float64 `json:"purchasePrice"`
	Notes         string  `json:"notes"`
}

// PantryShoppingItem is an entry on the pantry shopping list
type PantryShoppingItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Quantity       int     `json:"quantity"`
	Unit           string  `json:"unit"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Reason         string  `json:"reason"`
	Checked        bool    `json:"checked"`
}
