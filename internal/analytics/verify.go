package analytics

import (
	"math"

	"github.com/bitexhq/bitemetrics/internal/models"
)

// TotalMismatch records an order whose stated total diverges from the sum of
// its item lines.
type TotalMismatch struct {
	OrderID  string  `json:"order_id"`
	Stated   float64 `json:"stated"`
	Computed float64 `json:"computed"`
}

// VerifyOrderTotals checks each order's stated total against the sum of its
// priced item lines. The stated total remains authoritative for every
// revenue figure the engine derives; divergence is reported here so upstream
// data problems surface instead of passing silently. Orders without item
// lines (manual walk-in entries) carry no breakdown and are skipped.
func VerifyOrderTotals(orders []models.Order) []TotalMismatch {
	var mismatches []TotalMismatch
	for _, o := range orders {
		if len(o.Items) == 0 {
			continue
		}
		var sum float64
		for _, line := range o.Items {
			sum += line.PriceAtOrder * float64(line.Quantity)
		}
		if math.Abs(sum-o.TotalAmount) > 0.005 {
			mismatches = append(mismatches, TotalMismatch{OrderID: o.ID, Stated: o.TotalAmount, Computed: sum})
		}
	}
	return mismatches
}
