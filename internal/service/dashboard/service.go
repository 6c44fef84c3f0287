// Package dashboard aggregates the business overview shown on the landing page.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type statsRepo interface {
	CountProducts(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	CountOpenInvoices(ctx context.Context) (int, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type productRepo interface {
	LowestStock(ctx context.Context, limit int) ([]domain.Product, error)
}

type invoiceRepo interface {
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
}

// TopN is the length of the low-stock and recent-invoice lists.
const TopN = 5

// Service builds dashboard statistics.
type Service struct {
	stats    statsRepo
	products productRepo
	invoices invoiceRepo
	log      *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(
	log *slog.Logger,
	stats statsRepo,
	products productRepo,
	invoices invoiceRepo,
) *Service {
	return &Service{
		stats:    stats,
		products: products,
		invoices: invoices,
		log:      log.With("service", "dashboard"),
	}
}

// Stats runs all queries concurrently and fails if any of them fails.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	count := func(name string, fn func(context.Context) (int, error), dst *int) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("count products", s.stats.CountProducts, &out.TotalProducts)
	count("count low stock", s.stats.CountLowStock, &out.LowStockCount)
	count("count customers", s.stats.CountCustomers, &out.TotalCustomers)
	count("count open invoices", s.stats.CountOpenInvoices, &out.OpenInvoices)

	g.Go(func() error {
		rev, err := s.stats.Revenue(gctx)
		if err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		out.TotalRevenue = rev
		return nil
	})
	g.Go(func() error {
		low, err := s.products.LowestStock(gctx, TopN)
		if err != nil {
			return fmt.Errorf("lowest stock: %w", err)
		}
		out.LowStock = low
		return nil
	})
	g.Go(func() error {
		recent, err := s.invoices.List(gctx, domain.InvoiceFilter{Limit: TopN})
		if err != nil {
			return fmt.Errorf("recent invoices: %w", err)
		}
		out.RecentInvoices = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "dashboard stats failed", slog.String("error", err.Error()))
		return nil, err
	}
	return &out, nil
}
