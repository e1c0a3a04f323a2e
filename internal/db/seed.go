package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer runs a statement. *pgxpool.Pool satisfies it.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type seedProduct struct {
	handle      string
	title       string
	description string
	priceMinor  int64
	currency    string
	imageURL    string
	tags        []string
}

var demoCatalogue = []seedProduct{
	{"aviator-classic", "Aviator Classic", "Gold metal frame with polarized green lenses.", 12900, "USD", "https://cdn.example.com/products/aviator-classic.jpg", []string{"sunglasses", "polarized", "bestseller"}},
	{"wayfarer-matte", "Wayfarer Matte", "Matte black acetate frame, UV400 protection.", 9900, "USD", "https://cdn.example.com/products/wayfarer-matte.jpg", []string{"sunglasses", "unisex"}},
	{"round-tortoise", "Round Tortoise", "Vintage round frame in tortoise shell acetate.", 10900, "USD", "https://cdn.example.com/products/round-tortoise.jpg", []string{"sunglasses", "vintage"}},
	{"sport-wrap", "Sport Wrap", "Lightweight wraparound frame for running and cycling.", 8900, "USD", "https://cdn.example.com/products/sport-wrap.jpg", []string{"sunglasses", "sport"}},
	{"kids-flex", "Kids Flex", "Bendable frame for ages 4 to 10.", 3900, "USD", "https://cdn.example.com/products/kids-flex.jpg", []string{"sunglasses", "kids"}},
	{"leather-case", "Leather Case", "Hard shell case wrapped in full grain leather.", 2900, "USD", "https://cdn.example.com/products/leather-case.jpg", []string{"accessories"}},
	{"lens-cleaning-kit", "Lens Cleaning Kit", "Spray and two microfiber cloths.", 1200, "USD", "https://cdn.example.com/products/lens-cleaning-kit.jpg", []string{"accessories", "care"}},
	{"gift-card-50", "Gift Card $50", "Digital gift card delivered by email.", 5000, "USD", "", []string{"gift"}},
}

// Seed inserts the demo product catalogue. Existing handles are left as they
// are so the call can run on every start.
func Seed(ctx context.Context, db Execer) error {
	for _, p := range demoCatalogue {
		_, err := db.Exec(ctx, `INSERT INTO products
    (handle, title, description, price_minor, currency, image_url, tags, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now()) ON CONFLICT (handle) DO NOTHING`,
			p.handle, p.title, p.description, p.priceMinor, p.currency, p.imageURL, p.tags)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.handle, err)
		}
	}
	return nil
}
