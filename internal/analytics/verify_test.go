package analytics

import (
	"testing"

	"github.com/bitexhq/bitemetrics/internal/models"
)

func TestVerifyOrderTotals(t *testing.T) {
	good := order("good", "c1", testNow, 1100)
	good.Items = []models.OrderItem{
		{MenuItemID: "m1", Quantity: 2, PriceAtOrder: 400},
		{MenuItemID: "m2", Quantity: 1, PriceAtOrder: 300},
	}

	bad := order("bad", "c2", testNow, 999)
	bad.Items = []models.OrderItem{{MenuItemID: "m1", Quantity: 1, PriceAtOrder: 400}}

	manual := order("manual", "c3", testNow, 750) // walk-in entry, no line items

	mismatches := VerifyOrderTotals([]models.Order{good, bad, manual})

	if len(mismatches) != 1 {
		t.Fatalf("got %d mismatches, want 1", len(mismatches))
	}
	mm := mismatches[0]
	if mm.OrderID != "bad" || mm.Stated != 999 || mm.Computed != 400 {
		t.Errorf("mismatch = %+v, want bad/999/400", mm)
	}
}
