package domain

import "time"

// Order statuses as the backend reports them.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

type Order struct {
	ID        int64       `json:"id"`
	UserID    string      `json:"userId"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Lines     []OrderLine `json:"lines,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderLine is the frozen copy of a cart line at checkout time.
type OrderLine struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}
