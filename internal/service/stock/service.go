// Package stock is the stock ledger: every change of a product's stock goes
// through Apply, which moves the counter and appends the matching movement
// in one transaction.
package stock

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type productRepo interface {
	AddStock(ctx context.Context, id uuid.UUID, delta int) (*domain.Product, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

type movementRepo interface {
	Append(ctx context.Context, adj domain.StockAdjustment) (*domain.StockMovement, error)
	ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]domain.StockMovement, error)
	SumByProduct(ctx context.Context, productID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultMovementLimit = 50
	MaxMovementLimit     = 500
)

// Service implements the stock ledger.
type Service struct {
	products  productRepo
	movements movementRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new stock ledger service.
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
		log:       log.With("service", "stock"),
	}
}

// LedgerCheck is the result of comparing a product's counter with its movements.
type LedgerCheck struct {
	ProductID    uuid.UUID
	ProductName  string
	StockCurrent int
	MovementSum  int
}

// Consistent reports whether the counter equals the movement sum.
func (c LedgerCheck) Consistent() bool {
	return c.StockCurrent == c.MovementSum
}
