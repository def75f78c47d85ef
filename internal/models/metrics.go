package models

// ItemPerformance aggregates per-item sales across every order in the input
// set. TotalRevenue is reported at the current catalog selling price, not the
// historical per-order snapshot; the snapshot only drives order-level totals.
type ItemPerformance struct {
	MenuItem
	QuantitySold  int     `json:"quantity_sold"`
	ProfitPerItem float64 `json:"profit_per_item"`
	TotalProfit   float64 `json:"total_profit"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// PeakHour is one of 24 fixed hourly revenue buckets. Intensity is the bucket
// sum divided by the maximum bucket sum, 0 when every bucket is empty.
type PeakHour struct {
	Hour      string  `json:"hour"` // "0:00" .. "23:00"
	Sales     float64 `json:"sales"`
	Intensity float64 `json:"intensity"`
}

type OrderedItem struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Contribution carries an item's share of total revenue, formatted with one
// decimal place.
type Contribution struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage string  `json:"percentage"`
}

// BasketBucket is a half-open [Min, Max) order-total range. The last bucket
// is unbounded above and uses math.MaxFloat64 for Max so the value survives
// JSON encoding.
type BasketBucket struct {
	Range string  `json:"range"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

type DayAverage struct {
	Day     string  `json:"day"`
	AOV     float64 `json:"aov"`
	PrevAOV float64 `json:"prev_aov"`
}

type PartySizeCount struct {
	Size  string `json:"size"`
	Count int    `json:"count"`
}

// MatrixPoint places a catalog item on the menu-engineering matrix: X is
// quantity sold, Y is profit per item, Quadrant one of Star, Plowhorse,
// Puzzle or Dog.
type MatrixPoint struct {
	Name     string  `json:"name"`
	X        int     `json:"x"`
	Y        float64 `json:"y"`
	Quadrant string  `json:"quadrant"`
}

// DerivedMetrics is the full result set of one engine computation. It is a
// value with no identity or lifecycle: always fully recomputed, never
// partially updated.
type DerivedMetrics struct {
	TotalDailySales   float64           `json:"total_daily_sales"`
	SalesTrend        float64           `json:"sales_trend"` // percent vs yesterday
	AOV               float64           `json:"aov"`
	RepeatRate        float64           `json:"repeat_rate"` // percent, 0-100
	PeakHourData      []PeakHour        `json:"peak_hour_data"`
	AvgRating         float64           `json:"avg_rating"`
	SortedProfitItems []ItemPerformance `json:"sorted_profit_items"`
	MostOrderedItems  []OrderedItem     `json:"most_ordered_items"`
	ContributionData  []Contribution    `json:"contribution_data"`
	Buckets           []BasketBucket    `json:"buckets"`
	DayAverages       []DayAverage      `json:"day_averages"`
	PartySizeDist     []PartySizeCount  `json:"party_size_dist"`
	MatrixData        []MatrixPoint     `json:"matrix_data"`
	AvgQty            float64           `json:"avg_qty"`
	AvgProfit         float64           `json:"avg_profit"`
}
