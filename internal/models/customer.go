package models

import "time"

// Customer is only read for repeat-rate grouping via Order.CustomerID.
type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FirstVisit time.Time `json:"first_visit"`
}
