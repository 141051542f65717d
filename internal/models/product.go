package models

// Product represents a sellable item in the catalog.
// Products are seeded at startup and are read-only to the storefront.
type Product struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}
