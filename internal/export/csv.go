// Package export serialises raw orders and computed metric snapshots into
// flat tables for download, and ships them to a configured destination.
//
// The tabular format is deliberately simple: comma-separated values, CRLF
// line terminators, a header row of field names, and double quotes around any
// value containing a comma. Embedded quote characters and embedded CRLF are
// NOT escaped; that limitation is part of the format's contract, so
// encoding/csv (which escapes) is not used for writing. Consumers that need
// full RFC 4180 quoting should post-process the output.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bitexhq/bitemetrics/internal/models"
)

// Cell is one named field value in a row.
type Cell struct {
	Name  string
	Value string
}

type Row []Cell

// Serialize renders rows as comma-separated text. The header comes from the
// field names of the first row; every row is assumed to share its shape.
func Serialize(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	for i, c := range rows[0] {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Name)
	}
	b.WriteString("\r\n")

	for _, row := range rows {
		for i, c := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			v := c.Value
			if strings.Contains(v, ",") {
				v = `"` + v + `"`
			}
			b.WriteString(v)
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

// OrdersToTable flattens each order to a fixed column projection, one row per
// order, input order preserved.
func OrdersToTable(orders []models.Order) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Row{
			{"OrderID", o.ID},
			{"Timestamp", o.Timestamp.Format(time.RFC3339)},
			{"CustomerID", o.CustomerID},
			{"TotalAmount", formatNumber(o.TotalAmount)},
			{"GuestCount", strconv.Itoa(o.GuestCount)},
			{"Rating", formatNumber(o.Rating)},
			{"ItemsCount", strconv.Itoa(len(o.Items))},
		})
	}
	return rows
}

// MetricsToTable flattens a single metrics snapshot into one row of named
// scalar fields.
func MetricsToTable(m models.DerivedMetrics) []Row {
	topCategory := "N/A"
	if len(m.ContributionData) > 0 {
		topCategory = m.ContributionData[0].Name
	}
	return []Row{{
		{"DailySales", formatNumber(m.TotalDailySales)},
		{"AverageOrderValue", formatNumber(m.AOV)},
		{"RepeatRate", fmt.Sprintf("%.2f%%", m.RepeatRate)},
		{"AverageRating", fmt.Sprintf("%.2f", m.AvgRating)},
		{"TopCategory", topCategory},
	}}
}

// Filename builds the conventional download name, e.g. bitex_orders_2026-09-01.csv.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("2006-01-02"))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
