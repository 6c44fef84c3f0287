package stock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// ListMovements returns a product's movements, newest first.
func (s *Service) ListMovements(ctx context.Context, input ListMovementsInput) ([]domain.StockMovement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.products.GetByID(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultMovementLimit
	}
	movements, err := s.movements.ListByProduct(ctx, input.ProductID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// VerifyLedger compares the stored stock of a product with the sum of its movements.
func (s *Service) VerifyLedger(ctx context.Context, productID uuid.UUID) (LedgerCheck, error) {
	var check LedgerCheck
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.products.GetByID(txCtx, productID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}
		sum, err := s.movements.SumByProduct(txCtx, productID)
		if err != nil {
			return fmt.Errorf("sum movements: %w", err)
		}
		check = LedgerCheck{
			ProductID:    p.ID,
			ProductName:  p.Name,
			StockCurrent: p.StockCurrent,
			MovementSum:  sum,
		}
		return nil
	})
	if err != nil {
		return LedgerCheck{}, err
	}

	if !check.Consistent() {
		s.log.WarnContext(ctx, "stock ledger mismatch",
			slog.String("product_id", productID.String()),
			slog.Int("stock_current", check.StockCurrent),
			slog.Int("movement_sum", check.MovementSum),
		)
	}
	return check, nil
}
