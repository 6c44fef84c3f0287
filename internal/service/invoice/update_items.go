package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// UpdateInvoiceItems replaces the items of a draft and recomputes its totals
// with the VAT policy currently configured in settings.
func (s *Service) UpdateInvoiceItems(ctx context.Context, input UpdateItemsInput) (*domain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var invoice *domain.Invoice
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inv, err := s.invoices.GetForUpdate(txCtx, input.InvoiceID)
		if err != nil {
			return fmt.Errorf("get invoice: %w", err)
		}
		if err := domain.EnsureDraft(inv.Status, "items can only be edited on a draft"); err != nil {
			return err
		}

		items, err := s.resolveItems(txCtx, input.Items)
		if err != nil {
			return err
		}

		settings, err := s.settings.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		totals := domain.CalculateTotals(domain.ItemLines(items), inv.Discount, inv.ShippingCost, settings.VATPolicy())

		stored, err := s.invoices.ReplaceItems(txCtx, inv.ID, items)
		if err != nil {
			return fmt.Errorf("replace items: %w", err)
		}
		updated, err := s.invoices.UpdateTotals(txCtx, inv.ID, totals)
		if err != nil {
			return fmt.Errorf("update totals: %w", err)
		}

		event := domain.NewUpdatedEvent(inv.ID, "items",
			itemsSnapshot(inv.Items, inv.Total.StringFixed(2)),
			itemsSnapshot(stored, updated.Total.StringFixed(2)),
		)
		if err := s.audit.Append(txCtx, event); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated.Items = stored
		invoice = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice items updated",
		slog.String("invoice_id", invoice.ID.String()),
		slog.Int("items", len(invoice.Items)),
		slog.String("total", invoice.Total.StringFixed(2)),
	)

	return invoice, nil
}
