package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// DeleteProduct removes a product that no invoice refers to.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("product_id", "required")
	}

	var name string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.products.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}

		referenced, err := s.products.IsReferenced(txCtx, id)
		if err != nil {
			return fmt.Errorf("check references: %w", err)
		}
		if referenced {
			return &domain.ConflictError{Entity: "product", Reason: "product is used on invoices and cannot be deleted"}
		}

		if err := s.products.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		name = p.Name
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "product deleted",
		slog.String("product_id", id.String()),
		slog.String("name", name),
	)

	return nil
}
