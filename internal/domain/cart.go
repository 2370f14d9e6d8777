package domain

// DefaultImageURL is served when a line item carries no image snapshot.
const DefaultImageURL = "/vitamine.jpg"

// LineItem is one row of a cart as the server last reported it. The client
// never builds or edits these locally; LineTotal in particular is trusted
// as-is so server-side discounts and rounding survive the round trip.
type LineItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Image returns the display image for the line, falling back to the default
// asset when the snapshot has none.
func (li LineItem) Image() string {
	if li.ImageURL == "" {
		return DefaultImageURL
	}
	return li.ImageURL
}
