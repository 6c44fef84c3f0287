package product

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// UpdateProduct changes catalogue fields. Stock stays as it is.
func (s *Service) UpdateProduct(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ProductUpdateParams{
		SKU:           trimmed(input.SKU),
		Category:      trimmed(input.Category),
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		StockMinimum:  input.StockMinimum,
		Location:      trimmed(input.Location),
		Supplier:      trimmed(input.Supplier),
		Notes:         trimmed(input.Notes),
		Name:          trimmed(input.Name),
	}

	product, err := s.products.Update(ctx, input.ProductID, params)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID.String()),
	)

	return product, nil
}

// trimmed trims whitespace but keeps an empty string, which clears the field.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
