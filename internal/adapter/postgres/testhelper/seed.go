package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCustomer inserts a customer with required fields filled.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()

	c := domain.Customer{
		ID:      uuid.New(),
		Name:    "Customer " + uniqueSuffix(),
		Street:  "Hauptstr. 1",
		Zip:     "10115",
		City:    "Berlin",
		Country: domain.DefaultCountry,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (id, name, street, zip, city, country) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Street, c.Zip, c.City, c.Country,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}
	return c
}

// SeedProduct inserts a product whose stock is backed by one STOCK_TAKE
// movement, keeping stock_current equal to the movement sum.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, stock int) domain.Product {
	t.Helper()
	ctx := context.Background()

	p := domain.Product{
		ID:           uuid.New(),
		Name:         "Product " + uniqueSuffix(),
		Category:     "test",
		SellingPrice: decimal.NewFromInt(10),
		StockCurrent: stock,
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO products (id, name, category, selling_price, stock_current) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Category, p.SellingPrice, p.StockCurrent,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}
	if stock > 0 {
		_, err = pool.Exec(ctx,
			`INSERT INTO stock_movements (product_id, quantity, reason, reference) VALUES ($1, $2, 'STOCK_TAKE', 'initial stock')`,
			p.ID, stock,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedProduct movement: %v", err)
		}
	}
	return p
}

// StockOf returns the current stock and the movement sum of a product.
func StockOf(t *testing.T, pool *pgxpool.Pool, productID uuid.UUID) (current, movementSum int) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT p.stock_current, COALESCE((SELECT SUM(quantity) FROM stock_movements m WHERE m.product_id = p.id), 0)
		 FROM products p WHERE p.id = $1`,
		productID,
	).Scan(&current, &movementSum)
	if err != nil {
		t.Fatalf("testhelper: StockOf: %v", err)
	}
	return current, movementSum
}
