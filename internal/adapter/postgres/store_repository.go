package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"adpilot/internal/core/domain"
)

// StoreRepository implements port.StoreRepository over the products table.
type StoreRepository struct {
	db DB
}

// NewStoreRepository returns a new repository instance.
func NewStoreRepository(db DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// ListProducts returns the most recently updated products.
func (r *StoreRepository) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `
        SELECT handle, title, description, price_minor, currency, image_url, tags, updated_at
        FROM products
        ORDER BY updated_at DESC, handle
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var p domain.Product
		err := row.Scan(&p.Handle, &p.Title, &p.Description, &p.PriceMinor, &p.Currency, &p.ImageURL, &p.Tags, &p.UpdatedAt)
		return p, err
	})
}
