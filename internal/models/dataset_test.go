package models

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDataset_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	ts := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

	original := &Dataset{
		MenuItems: []MenuItem{{ID: "1", Name: "Butter Chicken", Category: CategoryMain, SellingPrice: 850, CostPrice: 320}},
		Customers: []Customer{{ID: "cust-1", Name: "Asha", FirstVisit: ts.AddDate(0, 0, -30)}},
		Orders: []Order{{
			ID:            "order-1",
			Timestamp:     ts,
			CustomerID:    "cust-1",
			Items:         []OrderItem{{MenuItemID: "1", Quantity: 2, PriceAtOrder: 850}},
			TotalAmount:   1700,
			OrderPlacedAt: ts,
			OrderServedAt: ts.Add(25 * time.Minute),
			GuestCount:    3,
			Rating:        4.5,
		}},
	}

	if err := original.Save(path); err != nil {
		t.Fatalf("saving: %v", err)
	}

	loaded, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if len(loaded.Orders) != 1 || len(loaded.MenuItems) != 1 || len(loaded.Customers) != 1 {
		t.Fatalf("loaded %d orders, %d items, %d customers", len(loaded.Orders), len(loaded.MenuItems), len(loaded.Customers))
	}

	o := loaded.Orders[0]
	if o.ID != "order-1" || o.TotalAmount != 1700 || o.GuestCount != 3 {
		t.Errorf("order round trip mismatch: %+v", o)
	}
	if !o.Timestamp.Equal(ts) {
		t.Errorf("timestamp %v, want %v", o.Timestamp, ts)
	}
	if loaded.MenuItems[0].Category != CategoryMain {
		t.Errorf("category %q", loaded.MenuItems[0].Category)
	}
}

func TestLoadDataset_Missing(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
