package models

import "time"

// OrderItem is a single line on an order. PriceAtOrder is the price snapshot
// taken at transaction time and backs the order's stated total; the menu
// performance table instead values items at the current catalog price.
type OrderItem struct {
	MenuItemID   string  `json:"menu_item_id"`
	Quantity     int     `json:"quantity"` // >= 1
	PriceAtOrder float64 `json:"price_at_order"`
}

type Order struct {
	ID            string      `json:"id"`
	Timestamp     time.Time   `json:"timestamp"`
	CustomerID    string      `json:"customer_id"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	OrderPlacedAt time.Time   `json:"order_placed_at"`
	OrderServedAt time.Time   `json:"order_served_at"`
	GuestCount    int         `json:"guest_count"` // >= 1
	Rating        float64     `json:"rating"`      // 1.0 to 5.0
}
