package export

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bitexhq/bitemetrics/internal/models"
)

func TestSerialize(t *testing.T) {
	rows := []Row{
		{{"Name", "Masala Tea"}, {"Price", "150"}},
		{{"Name", "Paneer, Extra Spicy"}, {"Price", "550"}},
	}

	got := Serialize(rows)
	want := "Name,Price\r\nMasala Tea,150\r\n\"Paneer, Extra Spicy\",550\r\n"
	if got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestSerialize_Empty(t *testing.T) {
	if got := Serialize(nil); got != "" {
		t.Errorf("Serialize(nil) = %q, want empty", got)
	}
}

func TestOrdersToTable_RoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
	orders := []models.Order{{
		ID:          "order-1",
		Timestamp:   ts,
		CustomerID:  "cust-1",
		TotalAmount: 1234.5,
		GuestCount:  3,
		Rating:      4.2,
		Items: []models.OrderItem{
			{MenuItemID: "m1", Quantity: 1, PriceAtOrder: 1234.5},
		},
	}}

	text := Serialize(OrdersToTable(orders))
	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus one row", len(lines))
	}
	if lines[0] != "OrderID,Timestamp,CustomerID,TotalAmount,GuestCount,Rating,ItemsCount" {
		t.Errorf("header = %q", lines[0])
	}

	fields := strings.Split(lines[1], ",")
	if fields[0] != "order-1" || fields[2] != "cust-1" {
		t.Errorf("identity fields = %v", fields)
	}
	if parsed, err := time.Parse(time.RFC3339, fields[1]); err != nil || !parsed.Equal(ts) {
		t.Errorf("timestamp %q does not round-trip: %v", fields[1], err)
	}
	if amount, err := strconv.ParseFloat(fields[3], 64); err != nil || amount != 1234.5 {
		t.Errorf("total %q does not round-trip: %v", fields[3], err)
	}
	if fields[4] != "3" || fields[6] != "1" {
		t.Errorf("counts = %v, want guest 3 items 1", fields)
	}
	if rating, err := strconv.ParseFloat(fields[5], 64); err != nil || rating != 4.2 {
		t.Errorf("rating %q does not round-trip: %v", fields[5], err)
	}
}

func TestMetricsToTable(t *testing.T) {
	m := models.DerivedMetrics{
		TotalDailySales: 2000,
		AOV:             1000,
		RepeatRate:      50,
		AvgRating:       4.25,
		ContributionData: []models.Contribution{
			{Name: "Butter Chicken", Value: 1700, Percentage: "42.3"},
		},
	}

	text := Serialize(MetricsToTable(m))
	want := "DailySales,AverageOrderValue,RepeatRate,AverageRating,TopCategory\r\n" +
		"2000,1000,50.00%,4.25,Butter Chicken\r\n"
	if text != want {
		t.Errorf("metrics table = %q, want %q", text, want)
	}
}

func TestMetricsToTable_NoContributions(t *testing.T) {
	rows := MetricsToTable(models.DerivedMetrics{})
	last := rows[0][len(rows[0])-1]
	if last.Name != "TopCategory" || last.Value != "N/A" {
		t.Errorf("top category cell = %+v, want N/A", last)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	if got := Filename("bitex_orders", now); got != "bitex_orders_2026-03-14.csv" {
		t.Errorf("Filename = %q", got)
	}
}
