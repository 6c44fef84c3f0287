package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Document is a rendered invoice.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// InvoiceDocument renders an invoice as PDF. Money figures come from the
// stored invoice, so the document matches what was billed even after the
// VAT settings have changed.
func (s *Service) InvoiceDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	content, err := s.renderer.Render(inv, customer, settings)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.InvoiceNumber, err)
	}

	return &Document{
		Filename:    inv.InvoiceNumber + ".pdf",
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
