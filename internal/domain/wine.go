package domain

// WineType is the style of a wine as stored in the cellar
type WineType string

const (
	WineTypeRed       WineType = "rot"
	WineTypeWhite     WineType = "weiss"
	WineTypeRose      WineType = "rosé"
	WineTypeSparkling WineType = "schaumwein"
	WineTypeDessert   WineType = "dessert"
)

// WineTypes lists every accepted wine type
var WineTypes = []WineType{
	WineTypeRed, WineTypeWhite, WineTypeRose, WineTypeSparkling, WineTypeDessert,
}

// Valid reports whether t is one of the known wine types
func (t WineType) Valid() bool {
	for _, known := range WineTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Wine represents a wine held in the cellar
type Wine struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Producer         string   `json:"producer"`
	Vintage          int      `json:"vintage"`
	Region           string   `json:"region"`
	Country          string   `json:"country"`
	Type             WineType `json:"type"`
	Grape            string   `json:"grape"`
	Quantity         int      `json:"quantity"`
	PurchasePrice    float64  `json:"purchasePrice"`
	PurchaseDate     string   `json:"purchaseDate"`
	PurchaseLocation string   `json:"purchaseLocation"`
	DrinkFrom        *int     `json:"drinkFrom"`
	DrinkUntil       *int     `json:"drinkUntil"`
	Rating           *int     `json:"rating,omitempty"`         // critic score, 50-100
	PersonalRating   *int     `json:"personalRating,omitempty"` // 1-5 stars
	Notes            string   `json:"notes"`
	ImageURL         string   `json:"imageUrl"`
	IsGift           bool     `json:"isGift"`
	GiftFrom         string   `json:"giftFrom"`
}

// ShoppingItem is an entry on the wine shopping list
type ShoppingItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Producer       string  `json:"producer"`
	Quantity       int     `json:"quantity"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Reason         string  `json:"reason"`
	Checked        bool    `json:"checked"`
}

// Settings holds the single application settings row
type Settings struct {
	CellarName string `json:"cellarName"`
}

// DefaultCellarName is used until the user renames the cellar
const DefaultCellarName = "Yves Weinkeller"
