package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bitexhq/bitemetrics/internal/models"
)

const topN = 5

// ComputeMetrics derives the full metric set from an order set and the menu
// catalog. It is a pure function of its three inputs: the same orders,
// catalog and evaluation instant always produce the same result, and the
// input collections are never mutated. Degenerate inputs (empty order set,
// empty catalog, zero totals) resolve to zero-valued outputs, never NaN.
func ComputeMetrics(orders []models.Order, menuItems []models.MenuItem, now time.Time) models.DerivedMetrics {
	m := models.DerivedMetrics{}

	// daily revenue and trend: calendar-date match against now, not a
	// rolling 24h window
	today := dayKey(now)
	yesterday := dayKey(now.AddDate(0, 0, -1))
	var yesterdaySales float64
	for _, o := range orders {
		switch dayKey(o.Timestamp) {
		case today:
			m.TotalDailySales += o.TotalAmount
		case yesterday:
			yesterdaySales += o.TotalAmount
		}
	}
	// a zero yesterday yields a 0% trend even when today is nonzero
	if yesterdaySales != 0 {
		m.SalesTrend = (m.TotalDailySales - yesterdaySales) / yesterdaySales * 100
	}

	// average order value over the whole input set
	if len(orders) > 0 {
		var total float64
		for _, o := range orders {
			total += o.TotalAmount
		}
		m.AOV = total / float64(len(orders))
	}

	// repeat rate: share of distinct customers with two or more orders
	ordersByCustomer := make(map[string]int)
	for _, o := range orders {
		ordersByCustomer[o.CustomerID]++
	}
	if len(ordersByCustomer) > 0 {
		repeat := 0
		for _, n := range ordersByCustomer {
			if n > 1 {
				repeat++
			}
		}
		m.RepeatRate = float64(repeat) / float64(len(ordersByCustomer)) * 100
	}

	m.PeakHourData = peakHours(orders)

	// average rating, guarded so an empty order set reports 0 rather than
	// an undefined value
	if len(orders) > 0 {
		var sum float64
		for _, o := range orders {
			sum += o.Rating
		}
		m.AvgRating = sum / float64(len(orders))
	}

	perf := itemPerformance(orders, menuItems)

	top := topBy(perf, func(a, b models.ItemPerformance) bool { return a.TotalProfit > b.TotalProfit })
	m.SortedProfitItems = top

	for _, p := range topBy(perf, func(a, b models.ItemPerformance) bool { return a.QuantitySold > b.QuantitySold }) {
		m.MostOrderedItems = append(m.MostOrderedItems, models.OrderedItem{
			Name:    p.Name,
			Orders:  p.QuantitySold,
			Revenue: p.TotalRevenue,
		})
	}

	m.ContributionData = contribution(perf)
	m.Buckets = basketBuckets(orders)
	m.DayAverages = dayAverages(orders, now)
	m.PartySizeDist = partySizes(orders)
	m.MatrixData, m.AvgQty, m.AvgProfit = menuMatrix(perf)

	return m
}

// dayKey reduces an instant to its calendar date.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func peakHours(orders []models.Order) []models.PeakHour {
	sales := make([]float64, 24)
	for _, o := range orders {
		sales[o.Timestamp.Hour()] += o.TotalAmount
	}

	var max float64
	for _, s := range sales {
		if s > max {
			max = s
		}
	}

	buckets := make([]models.PeakHour, 24)
	for h, s := range sales {
		bucket := models.PeakHour{Hour: fmt.Sprintf("%d:00", h), Sales: s}
		if max > 0 {
			bucket.Intensity = s / max
		}
		buckets[h] = bucket
	}
	return buckets
}

// itemPerformance sums quantities per catalog item across every order line.
// Lines referencing an unknown menu item contribute to nothing and raise no
// error. TotalRevenue is intentionally priced from the current catalog, not
// the per-order snapshot: the performance table reports what the item earns
// at today's menu prices.
func itemPerformance(orders []models.Order, menuItems []models.MenuItem) []models.ItemPerformance {
	qtyByItem := make(map[string]int)
	for _, o := range orders {
		for _, line := range o.Items {
			qtyByItem[line.MenuItemID] += line.Quantity
		}
	}

	perf := make([]models.ItemPerformance, len(menuItems))
	for i, mi := range menuItems {
		qty := qtyByItem[mi.ID]
		p := models.ItemPerformance{
			MenuItem:      mi,
			QuantitySold:  qty,
			ProfitPerItem: mi.SellingPrice - mi.CostPrice,
		}
		p.TotalProfit = p.ProfitPerItem * float64(qty)
		p.TotalRevenue = mi.SellingPrice * float64(qty)
		perf[i] = p
	}
	return perf
}

// topBy returns the top five entries under the given ordering. The sort is
// stable so ties keep their catalog input order.
func topBy(perf []models.ItemPerformance, more func(a, b models.ItemPerformance) bool) []models.ItemPerformance {
	sorted := make([]models.ItemPerformance, len(perf))
	copy(sorted, perf)
	sort.SliceStable(sorted, func(i, j int) bool { return more(sorted[i], sorted[j]) })
	if len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}

func contribution(perf []models.ItemPerformance) []models.Contribution {
	var totalRevenue float64
	for _, p := range perf {
		totalRevenue += p.TotalRevenue
	}

	var out []models.Contribution
	for _, p := range topBy(perf, func(a, b models.ItemPerformance) bool { return a.TotalRevenue > b.TotalRevenue }) {
		c := models.Contribution{Name: p.Name, Value: p.TotalRevenue, Percentage: "0.0"}
		if totalRevenue > 0 {
			c.Percentage = fmt.Sprintf("%.1f", p.TotalRevenue/totalRevenue*100)
		}
		out = append(out, c)
	}
	return out
}

// basketBuckets counts orders into fixed half-open [min, max) ranges of
// TotalAmount. The ranges are exhaustive and non-overlapping, so every order
// lands in exactly one bucket.
func basketBuckets(orders []models.Order) []models.BasketBucket {
	buckets := []models.BasketBucket{
		{Range: "₹0-500", Min: 0, Max: 500},
		{Range: "₹500-1k", Min: 500, Max: 1000},
		{Range: "₹1k-2k", Min: 1000, Max: 2000},
		{Range: "₹2k-3k", Min: 2000, Max: 3000},
		{Range: "₹3k+", Min: 3000, Max: math.MaxFloat64},
	}
	for _, o := range orders {
		for i := range buckets {
			if o.TotalAmount >= buckets[i].Min && o.TotalAmount < buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// dayAverages compares each of the trailing seven calendar days against the
// same weekday one week earlier. When the prior week has no orders for that
// day the comparison value is synthesised as 95% of the current day's
// average; it is a display heuristic, not a measurement.
func dayAverages(orders []models.Order, now time.Time) []models.DayAverage {
	aovByDay := make(map[string]float64)
	countByDay := make(map[string]int)
	for _, o := range orders {
		key := dayKey(o.Timestamp)
		aovByDay[key] += o.TotalAmount
		countByDay[key]++
	}
	dayAOV := func(t time.Time) float64 {
		key := dayKey(t)
		if countByDay[key] == 0 {
			return 0
		}
		return aovByDay[key] / float64(countByDay[key])
	}

	out := make([]models.DayAverage, 7)
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, -(6 - i))
		cur := dayAOV(d)
		prev := dayAOV(d.AddDate(0, 0, -7))
		if prev == 0 {
			prev = cur * 0.95
		}
		out[i] = models.DayAverage{
			Day:     d.Weekday().String()[:3],
			AOV:     math.Round(cur),
			PrevAOV: math.Round(prev),
		}
	}
	return out
}

// partySizes buckets orders by guest count: sizes 1-5 map one-to-one and
// everything larger collapses into a single 6+ bucket.
func partySizes(orders []models.Order) []models.PartySizeCount {
	out := make([]models.PartySizeCount, 6)
	for i := range out {
		if i == 5 {
			out[i].Size = "6+ Guests"
		} else {
			out[i].Size = fmt.Sprintf("%d Guests", i+1)
		}
	}
	for _, o := range orders {
		idx := o.GuestCount - 1
		if idx > 5 {
			idx = 5
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count++
	}
	return out
}

// menuMatrix classifies every catalog item into one of four quadrants by
// comparing its sales volume and unit profit against the catalog-wide
// averages. The greater-or-equal comparison on the high side makes the four
// quadrants partition the catalog exhaustively and without overlap.
func menuMatrix(perf []models.ItemPerformance) ([]models.MatrixPoint, float64, float64) {
	var avgQty, avgProfit float64
	if len(perf) > 0 {
		for _, p := range perf {
			avgQty += float64(p.QuantitySold)
			avgProfit += p.ProfitPerItem
		}
		avgQty /= float64(len(perf))
		avgProfit /= float64(len(perf))
	}

	points := make([]models.MatrixPoint, len(perf))
	for i, p := range perf {
		var quadrant string
		switch {
		case float64(p.QuantitySold) >= avgQty && p.ProfitPerItem >= avgProfit:
			quadrant = "Star"
		case float64(p.QuantitySold) >= avgQty:
			quadrant = "Plowhorse"
		case p.ProfitPerItem >= avgProfit:
			quadrant = "Puzzle"
		default:
			quadrant = "Dog"
		}
		points[i] = models.MatrixPoint{
			Name:     p.Name,
			X:        p.QuantitySold,
			Y:        p.ProfitPerItem,
			Quadrant: quadrant,
		}
	}
	return points, avgQty, avgProfit
}
