package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg            *prometheus.Registry
	Computations   prometheus.Counter
	ComputeSeconds prometheus.Histogram
	OrdersRecorded prometheus.Counter
	DatasetOrders  prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	computations := prometheus.NewCounter(prometheus.CounterOpts{Name: "bitex_computations_total"})
	computeSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bitex_compute_seconds",
		Buckets: prometheus.DefBuckets,
	})
	ordersRecorded := prometheus.NewCounter(prometheus.CounterOpts{Name: "bitex_orders_recorded_total"})
	datasetOrders := prometheus.NewGauge(prometheus.GaugeOpts{Name: "bitex_dataset_orders"})

	r.MustRegister(computations, computeSeconds, ordersRecorded, datasetOrders)
	return &Registry{
		reg:            r,
		Computations:   computations,
		ComputeSeconds: computeSeconds,
		OrdersRecorded: ordersRecorded,
		DatasetOrders:  datasetOrders,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
