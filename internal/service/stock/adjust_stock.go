package stock

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// AdjustStock applies a manual stock change (purchase, correction or stock take).
func (s *Service) AdjustStock(ctx context.Context, input AdjustStockInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var reference *string
	if input.Reference != nil {
		if ref := strings.TrimSpace(*input.Reference); ref != "" {
			reference = &ref
		}
	}

	var product *domain.Product
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, _, err := s.Apply(txCtx, domain.StockAdjustment{
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			Reference: reference,
		})
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "stock adjusted",
		slog.String("product_id", product.ID.String()),
		slog.Int("quantity", input.Quantity),
		slog.String("reason", input.Reason.String()),
		slog.Int("stock_current", product.StockCurrent),
	)

	return product, nil
}
