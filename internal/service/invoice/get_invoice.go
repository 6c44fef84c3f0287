package invoice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// GetInvoice returns an invoice with its items and audit trail.
func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("invoice_id", "required")
	}

	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	entries, err := s.audit.ListByInvoice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}
	inv.AuditLog = entries

	return inv, nil
}

// ListInvoices returns invoices without items, newest first.
func (s *Service) ListInvoices(ctx context.Context, input ListInvoicesInput) ([]domain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	invoices, err := s.invoices.List(ctx, domain.InvoiceFilter{
		Status:     input.Status,
		CustomerID: input.CustomerID,
		Search:     strings.TrimSpace(input.Search),
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}
