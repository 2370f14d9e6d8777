package domain

// Product is a catalog entry. The cart references products by id only; the
// name/price/image carried on a line item are snapshots taken server-side.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Category    string  `json:"category,omitempty"`
}
