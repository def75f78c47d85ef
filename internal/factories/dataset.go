package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/bitexhq/bitemetrics/internal/models"
)

var fake = faker.New()

// DatasetFactory produces synthetic dine-in transaction data with the same
// texture as a real service week: lunch and dinner peaks, heavier weekend
// volume and a skew towards larger weekend parties.
type DatasetFactory struct {
	rng *rand.Rand
}

func NewDatasetFactory(seed int64) *DatasetFactory {
	return &DatasetFactory{rng: rand.New(rand.NewSource(seed))}
}

func (f *DatasetFactory) CreateCustomer(now time.Time) models.Customer {
	// first visit sometime in the trailing 60 days
	return models.Customer{
		ID:         fmt.Sprintf("cust-%s", cuid.New()),
		Name:       fake.Person().Name(),
		FirstVisit: now.Add(-time.Duration(f.rng.Float64()*60*24) * time.Hour),
	}
}

// CreateOrder builds one order placed on the given day. The stated total is
// always the sum of its item lines, and every line snapshots the catalog
// price current at generation time.
func (f *DatasetFactory) CreateOrder(day time.Time, customer models.Customer, catalog []models.MenuItem) models.Order {
	placed := time.Date(day.Year(), day.Month(), day.Day(), f.pickHour(), f.rng.Intn(60), 0, 0, day.Location())
	served := placed.Add(time.Duration(20+f.rng.Intn(30)) * time.Minute)

	// larger parties on roughly a third of visits
	guests := 1 + f.rng.Intn(3)
	if f.rng.Float64() > 0.7 {
		guests = 4 + f.rng.Intn(6)
	}

	items := f.pickItems(catalog)
	var total float64
	for _, line := range items {
		total += line.PriceAtOrder * float64(line.Quantity)
	}

	return models.Order{
		ID:            fmt.Sprintf("order-%s", cuid.New()),
		Timestamp:     placed,
		CustomerID:    customer.ID,
		Items:         items,
		TotalAmount:   total,
		OrderPlacedAt: placed,
		OrderServedAt: served,
		GuestCount:    guests,
		Rating:        3.5 + f.rng.Float64()*1.5,
	}
}

// CreateDay generates a full day of orders against the given customer base.
func (f *DatasetFactory) CreateDay(day time.Time, customers []models.Customer, catalog []models.MenuItem) []models.Order {
	count := 40 + f.rng.Intn(30)
	switch day.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		count = 75 + f.rng.Intn(50)
	}

	orders := make([]models.Order, count)
	for i := range orders {
		customer := customers[f.rng.Intn(len(customers))]
		orders[i] = f.CreateOrder(day, customer, catalog)
	}
	return orders
}

// pickHour biases order times towards the lunch and dinner services.
func (f *DatasetFactory) pickHour() int {
	r := f.rng.Float64()
	switch {
	case r > 0.6:
		return 19 + f.rng.Intn(4) // dinner, 19:00-22:59
	case r > 0.3:
		return 12 + f.rng.Intn(3) // lunch, 12:00-14:59
	default:
		return f.rng.Intn(24)
	}
}

// pickItems draws 2 to 6 distinct catalog items, quantity mostly 1.
func (f *DatasetFactory) pickItems(catalog []models.MenuItem) []models.OrderItem {
	shuffled := make([]models.MenuItem, len(catalog))
	copy(shuffled, catalog)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := 2 + f.rng.Intn(5)
	if n > len(shuffled) {
		n = len(shuffled)
	}

	items := make([]models.OrderItem, n)
	for i, mi := range shuffled[:n] {
		qty := 1
		if f.rng.Float64() > 0.8 {
			qty = 2
		}
		items[i] = models.OrderItem{
			MenuItemID:   mi.ID,
			Quantity:     qty,
			PriceAtOrder: mi.SellingPrice,
		}
	}
	return items
}
