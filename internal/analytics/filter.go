package analytics

import (
	"fmt"
	"time"

	"github.com/bitexhq/bitemetrics/internal/models"
)

// Window narrows an order set to a trailing time range before aggregation.
type Window string

const (
	Last7Days  Window = "7d"
	Last30Days Window = "30d"
	AllTime    Window = "all"
)

func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Last7Days, Last30Days, AllTime:
		return Window(s), nil
	}
	return "", fmt.Errorf("unknown window %q, want 7d, 30d or all", s)
}

// FilterByWindow retains orders with a timestamp at or after the window's
// cutoff instant. It never mutates its input; the result is a fresh slice
// preserving input order. For AllTime the cutoff is the zero instant, so
// every order passes.
func FilterByWindow(orders []models.Order, window Window, now time.Time) []models.Order {
	var cutoff time.Time
	switch window {
	case Last7Days:
		cutoff = now.AddDate(0, 0, -7)
	case Last30Days:
		cutoff = now.AddDate(0, 0, -30)
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Timestamp.Before(cutoff) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
