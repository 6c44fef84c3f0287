// Package stats implements read-only aggregate queries for the dashboard.
package stats

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// Repo runs aggregate queries. It never joins a transaction's locks: every
// method reads committed data through the pool.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) count(ctx context.Context, what string, b sq.SelectBuilder) (int, error) {
	var n int
	if err := postgres.Scalar(ctx, r.db, &n, b); err != nil {
		return 0, fmt.Errorf("count %s: %w", what, err)
	}
	return n, nil
}

// CountProducts returns the number of products.
func (r *Repo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, "products", postgres.Builder().Select("COUNT(*)").From("products"))
}

// CountLowStock returns the number of products at or below their minimum.
func (r *Repo) CountLowStock(ctx context.Context) (int, error) {
	return r.count(ctx, "low stock", postgres.Builder().
		Select("COUNT(*)").
		From("products").
		Where("stock_current <= stock_minimum"))
}

// CountCustomers returns the number of customers.
func (r *Repo) CountCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, "customers", postgres.Builder().Select("COUNT(*)").From("customers"))
}

// CountOpenInvoices returns the number of Draft and Sent invoices.
func (r *Repo) CountOpenInvoices(ctx context.Context) (int, error) {
	return r.count(ctx, "open invoices", postgres.Builder().
		Select("COUNT(*)").
		From("invoices").
		Where(sq.Eq{"status": []string{string(domain.InvoiceStatusDraft), string(domain.InvoiceStatusSent)}}))
}

// Revenue sums the totals of paid invoices.
func (r *Repo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	b := postgres.Builder().
		Select("COALESCE(SUM(total), 0)").
		From("invoices").
		Where(sq.Eq{"status": string(domain.InvoiceStatusPaid)})
	if err := postgres.Scalar(ctx, r.db, &sum, b); err != nil {
		return decimal.Zero, fmt.Errorf("revenue: %w", err)
	}
	return sum, nil
}
