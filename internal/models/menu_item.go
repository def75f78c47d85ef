package models

// MenuItem is immutable catalog reference data. SellingPrice may diverge from
// the price snapshot stored on historical order lines.
type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"` // one of the values in Categories
	SellingPrice float64 `json:"selling_price"`
	CostPrice    float64 `json:"cost_price"`
}
