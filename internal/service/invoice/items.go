package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// resolveItems turns item input into invoice items, checking that every
// referenced product exists. A blank title falls back to the product name.
func (s *Service) resolveItems(ctx context.Context, inputs []ItemInput) ([]domain.InvoiceItem, error) {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, in := range inputs {
		if in.ProductID != nil && !seen[*in.ProductID] {
			seen[*in.ProductID] = true
			ids = append(ids, *in.ProductID)
		}
	}

	byID := make(map[uuid.UUID]domain.Product, len(ids))
	if len(ids) > 0 {
		products, err := s.products.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get products: %w", err)
		}
		for _, p := range products {
			byID[p.ID] = p
		}
	}

	var errs []domain.FieldError
	items := make([]domain.InvoiceItem, len(inputs))
	for i, in := range inputs {
		title := strings.TrimSpace(in.Title)
		if in.ProductID != nil {
			p, ok := byID[*in.ProductID]
			if !ok {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].product_id", i), Message: "product not found"})
				continue
			}
			if title == "" {
				title = p.Name
			}
		}
		items[i] = domain.InvoiceItem{
			Position:    i + 1,
			ProductID:   in.ProductID,
			Title:       title,
			Description: trimOrNil(in.Description),
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			LineTotal:   domain.LineAmount{Quantity: in.Quantity, UnitPrice: in.UnitPrice}.Total(),
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return items, nil
}

// requireCustomer reports a missing customer as a validation error on field.
func (s *Service) requireCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("customer_id", "customer not found")
		}
		return fmt.Errorf("get customer: %w", err)
	}
	return nil
}

// itemsSnapshot is the audit representation of an item list.
func itemsSnapshot(items []domain.InvoiceItem, total string) map[string]any {
	lines := make([]map[string]any, len(items))
	for i, it := range items {
		line := map[string]any{
			"title":     it.Title,
			"quantity":  it.Quantity,
			"unitPrice": it.UnitPrice.StringFixed(2),
		}
		if it.ProductID != nil {
			line["productId"] = it.ProductID.String()
		}
		lines[i] = line
	}
	return map[string]any{"items": lines, "total": total}
}
