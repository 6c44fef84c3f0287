package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// UpdateInvoiceDetails patches the header of a draft. Totals are recomputed
// because discount and shipping feed into them.
func (s *Service) UpdateInvoiceDetails(ctx context.Context, input UpdateDetailsInput) (*domain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var invoice *domain.Invoice
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inv, err := s.invoices.GetForUpdate(txCtx, input.InvoiceID)
		if err != nil {
			return fmt.Errorf("get invoice: %w", err)
		}
		if err := domain.EnsureDraft(inv.Status, "only drafts can be edited"); err != nil {
			return err
		}

		params := mergeDetails(inv, input)
		if params.DueDate.Before(params.InvoiceDate) {
			return domain.NewValidationError("due_date", "must not be before invoice date")
		}
		if params.CustomerID != inv.CustomerID {
			if err := s.requireCustomer(txCtx, params.CustomerID); err != nil {
				return err
			}
		}

		settings, err := s.settings.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		params.Totals = domain.CalculateTotals(inv.Lines(), params.Discount, params.ShippingCost, settings.VATPolicy())

		updated, err := s.invoices.UpdateDetails(txCtx, inv.ID, params)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}

		event := domain.NewUpdatedEvent(inv.ID, "details", detailsSnapshot(inv), detailsSnapshot(updated))
		if err := s.audit.Append(txCtx, event); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated.Items = inv.Items
		invoice = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice details updated",
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("total", invoice.Total.StringFixed(2)),
	)

	return invoice, nil
}

func mergeDetails(inv *domain.Invoice, input UpdateDetailsInput) domain.InvoiceDetailsParams {
	p := domain.InvoiceDetailsParams{
		CustomerID:   inv.CustomerID,
		InvoiceDate:  inv.InvoiceDate,
		DeliveryDate: inv.DeliveryDate,
		DueDate:      inv.DueDate,
		Discount:     inv.Discount,
		ShippingCost: inv.ShippingCost,
		Notes:        inv.Notes,
	}
	if input.CustomerID != nil {
		p.CustomerID = *input.CustomerID
	}
	if input.InvoiceDate != nil {
		p.InvoiceDate = dateOnly(*input.InvoiceDate)
	}
	if input.DeliveryDate != nil {
		d := dateOnly(*input.DeliveryDate)
		p.DeliveryDate = &d
	}
	if input.ClearDeliveryDate {
		p.DeliveryDate = nil
	}
	if input.DueDate != nil {
		p.DueDate = dateOnly(*input.DueDate)
	}
	if input.Discount != nil {
		p.Discount = *input.Discount
	}
	if input.ShippingCost != nil {
		p.ShippingCost = *input.ShippingCost
	}
	if input.Notes != nil {
		p.Notes = trimOrNil(input.Notes)
	}
	return p
}

func detailsSnapshot(inv *domain.Invoice) map[string]any {
	snap := map[string]any{
		"customerId":   inv.CustomerID.String(),
		"invoiceDate":  inv.InvoiceDate.Format(time.DateOnly),
		"dueDate":      inv.DueDate.Format(time.DateOnly),
		"discount":     inv.Discount.StringFixed(2),
		"shippingCost": inv.ShippingCost.StringFixed(2),
		"total":        inv.Total.StringFixed(2),
	}
	if inv.DeliveryDate != nil {
		snap["deliveryDate"] = inv.DeliveryDate.Format(time.DateOnly)
	}
	if inv.Notes != nil {
		snap["notes"] = strings.TrimSpace(*inv.Notes)
	}
	return snap
}
