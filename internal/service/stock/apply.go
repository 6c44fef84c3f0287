package stock

import (
	"context"
	"fmt"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// Apply changes a product's stock by adj.Quantity and records the movement.
// When ctx already carries a transaction the change joins it, so callers
// such as invoice finalization get all-or-nothing semantics across products.
func (s *Service) Apply(ctx context.Context, adj domain.StockAdjustment) (*domain.Product, *domain.StockMovement, error) {
	if adj.Quantity == 0 {
		return nil, nil, domain.NewValidationError("quantity", "must not be zero")
	}
	if !adj.Reason.IsValid() {
		return nil, nil, domain.NewValidationError("reason", "invalid value")
	}

	var (
		product  *domain.Product
		movement *domain.StockMovement
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, applied, err := s.products.AddStock(txCtx, adj.ProductID, adj.Quantity)
		if err != nil {
			return fmt.Errorf("add stock: %w", err)
		}
		if !applied {
			return s.rejection(txCtx, adj)
		}

		m, err := s.movements.Append(txCtx, adj)
		if err != nil {
			return fmt.Errorf("append movement: %w", err)
		}

		product, movement = p, m
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}

// rejection explains why the guarded update matched no row.
func (s *Service) rejection(ctx context.Context, adj domain.StockAdjustment) error {
	p, err := s.products.GetByID(ctx, adj.ProductID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	return &domain.InsufficientStockError{
		ProductID:   p.ID,
		ProductName: p.Name,
		Available:   p.StockCurrent,
		Needed:      -adj.Quantity,
	}
}
