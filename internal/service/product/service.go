// Package product manages the product catalogue. Stock is never edited here
// directly: new products start with a stock-take movement and everything
// afterwards goes through the stock ledger.
package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type productRepo interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
	Categories(ctx context.Context) ([]string, error)
}

type movementRepo interface {
	Append(ctx context.Context, adj domain.StockAdjustment) (*domain.StockMovement, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	// InitialStockReference marks the movement that opens a product's ledger.
	InitialStockReference = "initial stock"

	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Service provides product catalogue operations.
type Service struct {
	products  productRepo
	movements movementRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new product service.
func NewService(
	log *slog.Logger,
	products productRepo,
	movements movementRepo,
	tx txManager,
) *Service {
	return &Service{
		products:  products,
		movements: movements,
		tx:        tx,
		log:       log.With("service", "product"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
