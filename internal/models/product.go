package models

// Product represents a dish on the menu. Prices are whole rupees.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         int64   `json:"price"`
	Category      string  `json:"category"`
	Badge         string  `json:"badge,omitempty"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	PrepTime      string  `json:"prepTime,omitempty"`
	Image         string  `json:"image"`
}

// Category groups products. A product belongs to a category when its
// Category tag equals the lower-cased category Name.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// AllProducts is the category name that disables filtering.
const AllProducts = "All Products"
