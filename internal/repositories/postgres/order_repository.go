package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bitexhq/bitemetrics/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []models.Order) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{
			"id", "order_timestamp", "customer_id", "total_amount",
			"order_placed_at", "order_served_at", "guest_count", "rating",
		},
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			return []interface{}{
				orders[i].ID,
				orders[i].Timestamp,
				orders[i].CustomerID,
				orders[i].TotalAmount,
				orders[i].OrderPlacedAt,
				orders[i].OrderServedAt,
				orders[i].GuestCount,
				orders[i].Rating,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy orders: %w", err)
	}

	var lines []models.OrderItem
	var orderIDs []string
	for _, o := range orders {
		for _, line := range o.Items {
			lines = append(lines, line)
			orderIDs = append(orderIDs, o.ID)
		}
	}

	_, err = r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "menu_item_id", "quantity", "price_at_order"},
		pgx.CopyFromSlice(len(lines), func(i int) ([]interface{}, error) {
			return []interface{}{
				orderIDs[i],
				lines[i].MenuItemID,
				lines[i].Quantity,
				lines[i].PriceAtOrder,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy order items: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	query := `
        SELECT id, order_timestamp, customer_id, total_amount,
               order_placed_at, order_served_at, guest_count, rating
        FROM orders
        ORDER BY order_timestamp
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	index := make(map[string]int)
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID,
			&o.Timestamp,
			&o.CustomerID,
			&o.TotalAmount,
			&o.OrderPlacedAt,
			&o.OrderServedAt,
			&o.GuestCount,
			&o.Rating,
		)
		if err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.pool.Query(ctx, `
        SELECT order_id, menu_item_id, quantity, price_at_order
        FROM order_items
        ORDER BY position
    `)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var line models.OrderItem
		if err := itemRows.Scan(&orderID, &line.MenuItemID, &line.Quantity, &line.PriceAtOrder); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, line)
		}
	}
	return orders, itemRows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM order_items"); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, "DELETE FROM orders")
	return err
}
