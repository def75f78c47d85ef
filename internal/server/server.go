// Package server exposes the dashboard backend API. All mutable dashboard
// state (the in-memory dataset, manual entries) lives here behind a mutex;
// the analytics engine itself stays a pure function of its inputs and is
// invoked fresh on every request, with no caching.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bitexhq/bitemetrics/internal/metrics"
	"github.com/bitexhq/bitemetrics/internal/models"
)

type Server struct {
	router   *gin.Engine
	registry *metrics.Registry
	state    *datasetState
}

func New(data *models.Dataset, registry *metrics.Registry) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	s := &Server{
		router:   router,
		registry: registry,
		state:    newDatasetState(data),
	}
	registry.DatasetOrders.Set(float64(len(data.Orders)))

	api := router.Group("/api")
	{
		api.GET("/metrics", s.getMetrics)
		api.GET("/export/orders", s.exportOrders)
		api.GET("/export/metrics", s.exportMetrics)
		api.GET("/dataset", s.getDataset)
		api.POST("/orders", s.recordOrder)
		api.DELETE("/orders", s.clearOrders)
	}

	router.GET("/metrics", gin.WrapH(registry.Handler()))

	return s
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
