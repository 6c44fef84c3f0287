package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// CreateInvoice creates a draft invoice with a freshly allocated number.
// Totals are computed with the VAT policy currently configured in settings.
func (s *Service) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var invoice *domain.Invoice
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireCustomer(txCtx, input.CustomerID); err != nil {
			return err
		}

		items, err := s.resolveItems(txCtx, input.Items)
		if err != nil {
			return err
		}

		number, settings, err := s.numbers.Allocate(txCtx)
		if err != nil {
			return fmt.Errorf("allocate number: %w", err)
		}

		invoiceDate := s.today()
		if input.InvoiceDate != nil {
			invoiceDate = dateOnly(*input.InvoiceDate)
		}
		dueDate := invoiceDate.AddDate(0, 0, settings.DefaultDueDays)
		if input.DueDate != nil {
			dueDate = dateOnly(*input.DueDate)
		}
		var deliveryDate *time.Time
		if input.DeliveryDate != nil {
			d := dateOnly(*input.DeliveryDate)
			deliveryDate = &d
		}

		draft := &domain.Invoice{
			InvoiceNumber: number,
			InvoiceDate:   invoiceDate,
			DeliveryDate:  deliveryDate,
			DueDate:       dueDate,
			Status:        domain.InvoiceStatusDraft,
			CustomerID:    input.CustomerID,
			Discount:      orZero(input.Discount),
			ShippingCost:  orZero(input.ShippingCost),
			Notes:         trimOrNil(input.Notes),
			Items:         items,
		}
		draft.ApplyTotals(domain.CalculateTotals(draft.Lines(), draft.Discount, draft.ShippingCost, settings.VATPolicy()))

		created, err := s.invoices.Create(txCtx, draft)
		if err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		if err := s.audit.Append(txCtx, domain.NewCreatedEvent(created)); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		invoice = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice created",
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", invoice.Total.StringFixed(2)),
	)

	return invoice, nil
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
