package analytics

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/bitexhq/bitemetrics/internal/models"
)

var testNow = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

func order(id, customerID string, ts time.Time, total float64) models.Order {
	return models.Order{
		ID:            id,
		Timestamp:     ts,
		CustomerID:    customerID,
		TotalAmount:   total,
		OrderPlacedAt: ts,
		OrderServedAt: ts.Add(25 * time.Minute),
		GuestCount:    2,
		Rating:        4.0,
	}
}

func testCatalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: "m1", Name: "Butter Chicken", Category: models.CategoryMain, SellingPrice: 850, CostPrice: 220},
		{ID: "m2", Name: "Paneer Tikka", Category: models.CategoryAppetizer, SellingPrice: 550, CostPrice: 150},
		{ID: "m3", Name: "Rasmalai", Category: models.CategoryDessert, SellingPrice: 420, CostPrice: 90},
		{ID: "m4", Name: "Mango Lassi", Category: models.CategoryBeverage, SellingPrice: 280, CostPrice: 60},
	}
}

func TestComputeMetrics_DailySalesAndAOV(t *testing.T) {
	orders := []models.Order{
		order("o1", "c1", testNow.Add(-2*time.Hour), 500),
		order("o2", "c2", testNow.Add(-5*time.Hour), 1500),
	}

	m := ComputeMetrics(orders, testCatalog(), testNow)

	if m.TotalDailySales != 2000 {
		t.Errorf("TotalDailySales = %v, want 2000", m.TotalDailySales)
	}
	if m.AOV != 1000 {
		t.Errorf("AOV = %v, want 1000", m.AOV)
	}
}

func TestComputeMetrics_SalesTrend(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)

	t.Run("positive trend", func(t *testing.T) {
		orders := []models.Order{
			order("o1", "c1", yesterday, 1000),
			order("o2", "c2", testNow, 1500),
		}
		m := ComputeMetrics(orders, nil, testNow)
		if m.SalesTrend != 50 {
			t.Errorf("SalesTrend = %v, want 50", m.SalesTrend)
		}
	})

	t.Run("zero yesterday yields zero trend even with sales today", func(t *testing.T) {
		orders := []models.Order{order("o1", "c1", testNow, 1500)}
		m := ComputeMetrics(orders, nil, testNow)
		if m.SalesTrend != 0 {
			t.Errorf("SalesTrend = %v, want 0", m.SalesTrend)
		}
	})

	t.Run("orders outside today do not count as daily sales", func(t *testing.T) {
		orders := []models.Order{order("o1", "c1", testNow.AddDate(0, 0, -3), 900)}
		m := ComputeMetrics(orders, nil, testNow)
		if m.TotalDailySales != 0 {
			t.Errorf("TotalDailySales = %v, want 0", m.TotalDailySales)
		}
	})
}

func TestComputeMetrics_RepeatRate(t *testing.T) {
	tests := []struct {
		name      string
		customers []string
		want      float64
	}{
		{"one repeat of two customers", []string{"c1", "c1", "c1", "c2"}, 50},
		{"no repeats", []string{"c1", "c2", "c3"}, 0},
		{"all repeat", []string{"c1", "c1", "c2", "c2"}, 100},
		{"no customers", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var orders []models.Order
			for i, c := range tt.customers {
				orders = append(orders, order("o"+strconv.Itoa(i), c, testNow, 400))
			}
			m := ComputeMetrics(orders, nil, testNow)
			if m.RepeatRate != tt.want {
				t.Errorf("RepeatRate = %v, want %v", m.RepeatRate, tt.want)
			}
			if m.RepeatRate < 0 || m.RepeatRate > 100 {
				t.Errorf("RepeatRate %v out of [0, 100]", m.RepeatRate)
			}
		})
	}
}

func TestComputeMetrics_PeakHours(t *testing.T) {
	orders := []models.Order{
		order("o1", "c1", time.Date(2026, 3, 10, 13, 15, 0, 0, time.UTC), 600),
		order("o2", "c2", time.Date(2026, 3, 11, 13, 45, 0, 0, time.UTC), 400),
		order("o3", "c3", time.Date(2026, 3, 12, 20, 5, 0, 0, time.UTC), 500),
	}

	m := ComputeMetrics(orders, nil, testNow)

	if len(m.PeakHourData) != 24 {
		t.Fatalf("PeakHourData has %d entries, want 24", len(m.PeakHourData))
	}

	var sum float64
	for _, b := range m.PeakHourData {
		sum += b.Sales
	}
	if sum != 1500 {
		t.Errorf("bucket sales sum = %v, want 1500", sum)
	}

	thirteen := m.PeakHourData[13]
	if thirteen.Hour != "13:00" || thirteen.Sales != 1000 || thirteen.Intensity != 1 {
		t.Errorf("hour 13 = %+v, want sales 1000 intensity 1", thirteen)
	}
	if got := m.PeakHourData[20].Intensity; got != 0.5 {
		t.Errorf("hour 20 intensity = %v, want 0.5", got)
	}
}

func TestComputeMetrics_EmptyOrderSet(t *testing.T) {
	m := ComputeMetrics(nil, testCatalog(), testNow)

	if m.AOV != 0 {
		t.Errorf("AOV = %v, want 0", m.AOV)
	}
	if m.RepeatRate != 0 {
		t.Errorf("RepeatRate = %v, want 0", m.RepeatRate)
	}
	if m.AvgRating != 0 {
		t.Errorf("AvgRating = %v, want 0", m.AvgRating)
	}
	if m.SalesTrend != 0 {
		t.Errorf("SalesTrend = %v, want 0", m.SalesTrend)
	}
	if len(m.PeakHourData) != 24 {
		t.Fatalf("PeakHourData has %d entries, want 24", len(m.PeakHourData))
	}
	for _, b := range m.PeakHourData {
		if b.Intensity != 0 {
			t.Errorf("hour %s intensity = %v, want 0", b.Hour, b.Intensity)
		}
	}
	for _, c := range m.ContributionData {
		if c.Percentage != "0.0" {
			t.Errorf("contribution %s percentage = %q, want 0.0", c.Name, c.Percentage)
		}
	}
}

func TestComputeMetrics_ItemPerformance(t *testing.T) {
	catalog := testCatalog()
	o := order("o1", "c1", testNow, 2250)
	o.Items = []models.OrderItem{
		{MenuItemID: "m1", Quantity: 2, PriceAtOrder: 800}, // old price snapshot
		{MenuItemID: "m2", Quantity: 1, PriceAtOrder: 550},
		{MenuItemID: "ghost", Quantity: 9, PriceAtOrder: 100}, // unknown item, silently ignored
	}

	m := ComputeMetrics([]models.Order{o}, catalog, testNow)

	if len(m.SortedProfitItems) != 4 {
		t.Fatalf("SortedProfitItems has %d entries, want 4", len(m.SortedProfitItems))
	}
	top := m.SortedProfitItems[0]
	if top.ID != "m1" || top.QuantitySold != 2 {
		t.Fatalf("top profit item = %s qty %d, want m1 qty 2", top.ID, top.QuantitySold)
	}
	if top.ProfitPerItem != 630 || top.TotalProfit != 1260 {
		t.Errorf("m1 profit = %v/%v, want 630/1260", top.ProfitPerItem, top.TotalProfit)
	}
	// revenue reports at the current catalog price, not the order snapshot
	if top.TotalRevenue != 1700 {
		t.Errorf("m1 TotalRevenue = %v, want 1700 (2 x current 850)", top.TotalRevenue)
	}

	if got := m.MostOrderedItems[0]; got.Name != "Butter Chicken" || got.Orders != 2 {
		t.Errorf("most ordered = %+v, want Butter Chicken with 2 orders", got)
	}
}

func TestComputeMetrics_TopFiveStableTies(t *testing.T) {
	catalog := make([]models.MenuItem, 7)
	for i := range catalog {
		catalog[i] = models.MenuItem{
			ID:           "m" + strconv.Itoa(i),
			Name:         "Item " + strconv.Itoa(i),
			Category:     models.CategoryMain,
			SellingPrice: 500,
			CostPrice:    300,
		}
	}

	// identical performance everywhere: top five must keep catalog order
	m := ComputeMetrics(nil, catalog, testNow)
	if len(m.SortedProfitItems) != 5 {
		t.Fatalf("SortedProfitItems has %d entries, want 5", len(m.SortedProfitItems))
	}
	for i, p := range m.SortedProfitItems {
		if p.ID != "m"+strconv.Itoa(i) {
			t.Errorf("position %d = %s, want m%d", i, p.ID, i)
		}
	}
}

func TestComputeMetrics_ContributionSumsToHundred(t *testing.T) {
	catalog := testCatalog()
	o1 := order("o1", "c1", testNow, 0)
	o1.Items = []models.OrderItem{
		{MenuItemID: "m1", Quantity: 3, PriceAtOrder: 850},
		{MenuItemID: "m2", Quantity: 2, PriceAtOrder: 550},
	}
	o2 := order("o2", "c2", testNow, 0)
	o2.Items = []models.OrderItem{
		{MenuItemID: "m3", Quantity: 5, PriceAtOrder: 420},
		{MenuItemID: "m4", Quantity: 1, PriceAtOrder: 280},
	}

	m := ComputeMetrics([]models.Order{o1, o2}, catalog, testNow)

	var sum float64
	for _, c := range m.ContributionData {
		pct, err := strconv.ParseFloat(c.Percentage, 64)
		if err != nil {
			t.Fatalf("percentage %q does not parse: %v", c.Percentage, err)
		}
		sum += pct
	}
	if math.Abs(sum-100) > 0.3 {
		t.Errorf("contribution percentages sum to %v, want ~100", sum)
	}
}

func TestComputeMetrics_BasketBuckets(t *testing.T) {
	totals := []float64{0, 499, 500, 999.99, 1000, 1999, 2000, 2999, 3000, 12000}
	orders := make([]models.Order, len(totals))
	for i, total := range totals {
		orders[i] = order("o"+strconv.Itoa(i), "c1", testNow, total)
	}

	m := ComputeMetrics(orders, nil, testNow)

	if len(m.Buckets) != 5 {
		t.Fatalf("Buckets has %d entries, want 5", len(m.Buckets))
	}
	wantCounts := []int{2, 2, 2, 2, 2}
	sum := 0
	for i, b := range m.Buckets {
		if b.Count != wantCounts[i] {
			t.Errorf("bucket %s count = %d, want %d", b.Range, b.Count, wantCounts[i])
		}
		sum += b.Count
	}
	if sum != len(orders) {
		t.Errorf("bucket counts sum to %d, want %d", sum, len(orders))
	}
}

func TestComputeMetrics_BasketBoundary(t *testing.T) {
	orders := []models.Order{
		order("o1", "c1", testNow, 499),
		order("o2", "c2", testNow, 500),
	}
	m := ComputeMetrics(orders, nil, testNow)

	if m.Buckets[0].Count != 1 {
		t.Errorf("[0,500) count = %d, want 1", m.Buckets[0].Count)
	}
	if m.Buckets[1].Count != 1 {
		t.Errorf("[500,1000) count = %d, want 1", m.Buckets[1].Count)
	}
}

func TestComputeMetrics_DayAverages(t *testing.T) {
	twoDaysAgo := testNow.AddDate(0, 0, -2)
	orders := []models.Order{
		order("o1", "c1", twoDaysAgo, 100),
		order("o2", "c2", twoDaysAgo, 200),
		order("o3", "c3", twoDaysAgo.AddDate(0, 0, -7), 100),
		order("o4", "c4", testNow, 400),
	}

	m := ComputeMetrics(orders, nil, testNow)

	if len(m.DayAverages) != 7 {
		t.Fatalf("DayAverages has %d entries, want 7", len(m.DayAverages))
	}

	measured := m.DayAverages[4] // six days back is index 0, so -2 lands at 4
	if measured.Day != twoDaysAgo.Weekday().String()[:3] {
		t.Errorf("day label = %q, want %q", measured.Day, twoDaysAgo.Weekday().String()[:3])
	}
	if measured.AOV != 150 || measured.PrevAOV != 100 {
		t.Errorf("measured day = %+v, want aov 150 prev 100", measured)
	}

	// no orders a week before today: prev falls back to 95% of current
	synthetic := m.DayAverages[6]
	if synthetic.AOV != 400 || synthetic.PrevAOV != math.Round(400*0.95) {
		t.Errorf("synthetic day = %+v, want aov 400 prev %v", synthetic, math.Round(400*0.95))
	}

	// a day with no orders at all stays zero on both sides
	empty := m.DayAverages[0]
	if empty.AOV != 0 || empty.PrevAOV != 0 {
		t.Errorf("empty day = %+v, want zeros", empty)
	}
}

func TestComputeMetrics_PartySizes(t *testing.T) {
	guests := []int{1, 2, 2, 5, 6, 9, 14}
	orders := make([]models.Order, len(guests))
	for i, g := range guests {
		o := order("o"+strconv.Itoa(i), "c1", testNow, 700)
		o.GuestCount = g
		orders[i] = o
	}

	m := ComputeMetrics(orders, nil, testNow)

	if len(m.PartySizeDist) != 6 {
		t.Fatalf("PartySizeDist has %d entries, want 6", len(m.PartySizeDist))
	}
	want := []int{1, 2, 0, 0, 1, 3}
	for i, p := range m.PartySizeDist {
		if p.Count != want[i] {
			t.Errorf("bucket %q count = %d, want %d", p.Size, p.Count, want[i])
		}
	}
	if m.PartySizeDist[5].Size != "6+ Guests" {
		t.Errorf("last bucket label = %q, want 6+ Guests", m.PartySizeDist[5].Size)
	}
}

func TestComputeMetrics_MenuMatrixClassification(t *testing.T) {
	catalog := []models.MenuItem{
		{ID: "a", Name: "A", Category: models.CategoryMain, SellingPrice: 500, CostPrice: 200}, // profit 300
		{ID: "b", Name: "B", Category: models.CategoryMain, SellingPrice: 400, CostPrice: 300}, // profit 100
	}
	o := order("o1", "c1", testNow, 5000)
	o.Items = []models.OrderItem{{MenuItemID: "a", Quantity: 10, PriceAtOrder: 500}}

	m := ComputeMetrics([]models.Order{o}, catalog, testNow)

	if m.AvgQty != 5 || m.AvgProfit != 200 {
		t.Fatalf("avgQty/avgProfit = %v/%v, want 5/200", m.AvgQty, m.AvgProfit)
	}
	if m.MatrixData[0].Quadrant != "Star" {
		t.Errorf("A quadrant = %q, want Star", m.MatrixData[0].Quadrant)
	}
	if m.MatrixData[1].Quadrant != "Dog" {
		t.Errorf("B quadrant = %q, want Dog", m.MatrixData[1].Quadrant)
	}
}

func TestComputeMetrics_MenuMatrixPartition(t *testing.T) {
	catalog := testCatalog()
	o := order("o1", "c1", testNow, 0)
	o.Items = []models.OrderItem{
		{MenuItemID: "m1", Quantity: 7, PriceAtOrder: 850},
		{MenuItemID: "m2", Quantity: 1, PriceAtOrder: 550},
		{MenuItemID: "m4", Quantity: 3, PriceAtOrder: 280},
	}

	m := ComputeMetrics([]models.Order{o}, catalog, testNow)

	if len(m.MatrixData) != len(catalog) {
		t.Fatalf("MatrixData has %d entries, want %d", len(m.MatrixData), len(catalog))
	}
	known := map[string]bool{"Star": true, "Plowhorse": true, "Puzzle": true, "Dog": true}
	for _, p := range m.MatrixData {
		if !known[p.Quadrant] {
			t.Errorf("item %s has unknown quadrant %q", p.Name, p.Quadrant)
		}
	}
}

func TestComputeMetrics_EqualAveragesAllStars(t *testing.T) {
	// identical items sit exactly on both averages; >= on the high side
	// must classify every one of them as a Star
	catalog := []models.MenuItem{
		{ID: "a", Name: "A", Category: models.CategoryMain, SellingPrice: 500, CostPrice: 200},
		{ID: "b", Name: "B", Category: models.CategoryMain, SellingPrice: 500, CostPrice: 200},
	}
	m := ComputeMetrics(nil, catalog, testNow)
	for _, p := range m.MatrixData {
		if p.Quadrant != "Star" {
			t.Errorf("item %s quadrant = %q, want Star", p.Name, p.Quadrant)
		}
	}
}

func TestComputeMetrics_DoesNotMutateInputs(t *testing.T) {
	catalog := testCatalog()
	orders := []models.Order{
		order("b", "c1", testNow, 900),
		order("a", "c2", testNow, 100),
	}

	ComputeMetrics(orders, catalog, testNow)

	if orders[0].ID != "b" || orders[1].ID != "a" {
		t.Error("order slice was reordered")
	}
	if catalog[0].ID != "m1" {
		t.Error("catalog slice was reordered")
	}
}
