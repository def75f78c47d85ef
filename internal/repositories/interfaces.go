package repositories

import (
	"context"

	"github.com/bitexhq/bitemetrics/internal/models"
)

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, items []models.MenuItem) error
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type CustomerRepository interface {
	BulkCreate(ctx context.Context, customers []models.Customer) error
	GetAll(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
