package domain

// CellarStats aggregates the wine cellar for the dashboard
type CellarStats struct {
	TotalBottles     int            `json:"totalBottles"`
	DistinctWines    int            `json:"distinctWines"`
	TotalValue       float64        `json:"totalValue"`
	ReadyToDrink     int            `json:"readyToDrink"`
	BottlesByType    map[string]int `json:"bottlesByType"`
	BottlesByCountry map[string]int `json:"bottlesByCountry"`
}

// PantryStats aggregates the pantry for the dashboard
type PantryStats struct {
	TotalItems         int            `json:"totalItems"`
	DistinctProducts   int            `json:"distinctProducts"`
	TotalValue         float64        `json:"totalValue"`
	ExpiringSoon       []PantryItem   `json:"expiringSoon"`
	Locations          []string       `json:"locations"`
	QuantityByCategory map[string]int `json:"quantityByCategory"`
}
