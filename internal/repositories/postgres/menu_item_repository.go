package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bitexhq/bitemetrics/internal/models"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{"id", "name", "category", "selling_price", "cost_price"},
		pgx.CopyFromSlice(len(menuItems), func(i int) ([]interface{}, error) {
			return []interface{}{
				menuItems[i].ID,
				menuItems[i].Name,
				menuItems[i].Category,
				menuItems[i].SellingPrice,
				menuItems[i].CostPrice,
			}, nil
		}),
	)
	return err
}

// GetAll returns the catalog in insertion order. The engine's tie-breaking
// and matrix output depend on a stable catalog order, so rows are sorted by
// the serial position column rather than the textual id.
func (r *MenuItemRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	query := `
        SELECT id, name, category, selling_price, cost_price
        FROM menu_items
        ORDER BY position
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menuItems []models.MenuItem
	for rows.Next() {
		var mi models.MenuItem
		if err := rows.Scan(&mi.ID, &mi.Name, &mi.Category, &mi.SellingPrice, &mi.CostPrice); err != nil {
			return nil, err
		}
		menuItems = append(menuItems, mi)
	}
	return menuItems, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM menu_items")
	return err
}
