package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// DeleteInvoice removes a draft with its items and audit trail. When the
// draft holds the most recently issued number, the number is reclaimed.
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("invoice_id", "required")
	}

	var (
		number    string
		reclaimed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inv, err := s.invoices.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get invoice: %w", err)
		}
		if err := domain.EnsureDraft(inv.Status, "only drafts can be deleted"); err != nil {
			return err
		}

		if err := s.invoices.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}

		reclaimed, err = s.numbers.Reclaim(txCtx, inv.InvoiceNumber)
		if err != nil {
			return fmt.Errorf("reclaim number: %w", err)
		}
		number = inv.InvoiceNumber
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "invoice deleted",
		slog.String("invoice_id", id.String()),
		slog.String("invoice_number", number),
		slog.Bool("number_reclaimed", reclaimed),
	)

	return nil
}
