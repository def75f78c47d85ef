package analytics

import (
	"testing"
	"time"

	"github.com/bitexhq/bitemetrics/internal/models"
)

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"7d", "30d", "all"} {
		if _, err := ParseWindow(valid); err != nil {
			t.Errorf("ParseWindow(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseWindow("90d"); err == nil {
		t.Error("ParseWindow(90d) should fail")
	}
}

func TestFilterByWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		order("today", "c1", now, 100),
		order("boundary7", "c2", now.AddDate(0, 0, -7), 200), // exactly on the cutoff, kept
		order("old8", "c3", now.AddDate(0, 0, -8), 300),
		order("old20", "c4", now.AddDate(0, 0, -20), 400),
		order("ancient", "c5", now.AddDate(0, 0, -45), 500),
	}

	tests := []struct {
		window Window
		want   []string
	}{
		{Last7Days, []string{"today", "boundary7"}},
		{Last30Days, []string{"today", "boundary7", "old8", "old20"}},
		{AllTime, []string{"today", "boundary7", "old8", "old20", "ancient"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			got := FilterByWindow(orders, tt.window, now)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d orders, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterByWindow_NeverMutatesInput(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		order("o1", "c1", now.AddDate(0, 0, -40), 100),
		order("o2", "c2", now, 200),
	}

	filtered := FilterByWindow(orders, Last7Days, now)

	if len(orders) != 2 || orders[0].ID != "o1" {
		t.Error("input slice changed")
	}
	if len(filtered) != 1 {
		t.Fatalf("got %d orders, want 1", len(filtered))
	}
	filtered[0].ID = "mutated"
	if orders[1].ID != "o2" {
		t.Error("filtered result aliases the input")
	}
}
