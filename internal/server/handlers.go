package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucsky/cuid"

	"github.com/bitexhq/bitemetrics/internal/analytics"
	"github.com/bitexhq/bitemetrics/internal/export"
	"github.com/bitexhq/bitemetrics/internal/models"
)

func (s *Server) getMetrics(c *gin.Context) {
	window, err := analytics.ParseWindow(c.DefaultQuery("window", string(analytics.AllTime)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := s.state.snapshot()
	now := time.Now()

	start := time.Now()
	filtered := analytics.FilterByWindow(data.Orders, window, now)
	m := analytics.ComputeMetrics(filtered, data.MenuItems, now)
	s.registry.ComputeSeconds.Observe(time.Since(start).Seconds())
	s.registry.Computations.Inc()

	c.JSON(http.StatusOK, m)
}

func (s *Server) exportOrders(c *gin.Context) {
	data := s.state.snapshot()
	table := export.Serialize(export.OrdersToTable(data.Orders))
	s.sendCSV(c, "bitex_orders", table)
}

func (s *Server) exportMetrics(c *gin.Context) {
	data := s.state.snapshot()
	now := time.Now()
	m := analytics.ComputeMetrics(data.Orders, data.MenuItems, now)
	s.registry.Computations.Inc()

	table := export.Serialize(export.MetricsToTable(m))
	s.sendCSV(c, "bitex_metrics", table)
}

func (s *Server) sendCSV(c *gin.Context, prefix, body string) {
	filename := export.Filename(prefix, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

func (s *Server) getDataset(c *gin.Context) {
	data := s.state.snapshot()
	c.JSON(http.StatusOK, data)
}

type recordOrderRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	GuestCount   int     `json:"guest_count" binding:"required,gte=1"`
	Rating       float64 `json:"rating" binding:"required,gte=1,lte=5"`
}

// recordOrder captures a manual walk-in transaction. The entry has no item
// breakdown; the stated amount is taken as the order total.
func (s *Server) recordOrder(c *gin.Context) {
	var req recordOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	customer := models.Customer{
		ID:         fmt.Sprintf("walk-in-%s", cuid.New()),
		Name:       req.CustomerName,
		FirstVisit: now,
	}
	order := models.Order{
		ID:            fmt.Sprintf("manual-%s", cuid.New()),
		Timestamp:     now,
		CustomerID:    customer.ID,
		TotalAmount:   req.Amount,
		OrderPlacedAt: now,
		OrderServedAt: now.Add(15 * time.Minute),
		GuestCount:    req.GuestCount,
		Rating:        req.Rating,
	}

	s.state.addOrder(customer, order)
	s.registry.OrdersRecorded.Inc()
	s.registry.DatasetOrders.Set(float64(s.state.orderCount()))

	c.JSON(http.StatusCreated, order)
}

func (s *Server) clearOrders(c *gin.Context) {
	s.state.clearOrders()
	s.registry.DatasetOrders.Set(0)
	c.Status(http.StatusNoContent)
}
