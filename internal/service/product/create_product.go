package product

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// CreateProduct creates a product. A positive initial stock is recorded as a
// STOCK_TAKE movement so the ledger sum matches the counter from the start.
func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var product *domain.Product
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.products.Create(txCtx, &domain.Product{
			Name:          strings.TrimSpace(input.Name),
			SKU:           trimOrNil(input.SKU),
			Category:      strings.TrimSpace(input.Category),
			PurchasePrice: input.PurchasePrice,
			SellingPrice:  input.SellingPrice,
			StockCurrent:  input.InitialStock,
			StockMinimum:  input.StockMinimum,
			Location:      trimOrNil(input.Location),
			Supplier:      trimOrNil(input.Supplier),
			Notes:         trimOrNil(input.Notes),
		})
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		if input.InitialStock > 0 {
			ref := InitialStockReference
			if _, err := s.movements.Append(txCtx, domain.StockAdjustment{
				ProductID: created.ID,
				Quantity:  input.InitialStock,
				Reason:    domain.StockReasonStockTake,
				Reference: &ref,
			}); err != nil {
				return fmt.Errorf("initial movement: %w", err)
			}
		}

		product = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name),
		slog.Int("stock", product.StockCurrent),
	)

	return product, nil
}
