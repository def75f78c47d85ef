package server

import (
	"sync"

	"github.com/bitexhq/bitemetrics/internal/models"
)

// datasetState guards the live dataset. Reads take a shallow snapshot of the
// slices so a concurrent manual entry never races an in-flight computation.
type datasetState struct {
	mu   sync.Mutex
	data *models.Dataset
}

func newDatasetState(data *models.Dataset) *datasetState {
	return &datasetState{data: data}
}

func (st *datasetState) snapshot() models.Dataset {
	st.mu.Lock()
	defer st.mu.Unlock()
	return models.Dataset{
		Orders:    append([]models.Order(nil), st.data.Orders...),
		MenuItems: append([]models.MenuItem(nil), st.data.MenuItems...),
		Customers: append([]models.Customer(nil), st.data.Customers...),
	}
}

func (st *datasetState) addOrder(customer models.Customer, order models.Order) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.data.Customers = append(st.data.Customers, customer)
	st.data.Orders = append([]models.Order{order}, st.data.Orders...)
}

// clearOrders wipes the transaction history but keeps the menu catalog.
func (st *datasetState) clearOrders() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.data.Orders = nil
	st.data.Customers = nil
}

func (st *datasetState) orderCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.data.Orders)
}
