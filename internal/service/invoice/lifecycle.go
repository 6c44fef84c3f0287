package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// transitionEffect runs inside the transition's transaction after the move
// has been validated and before the new status is stored.
type transitionEffect func(ctx context.Context, inv *domain.Invoice) error

// transition applies event to the invoice under a row lock, runs effect,
// stores the new status and appends a STATUS_CHANGED audit entry.
func (s *Service) transition(ctx context.Context, id uuid.UUID, event domain.InvoiceEvent, effect transitionEffect) (*domain.Invoice, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("invoice_id", "required")
	}

	var (
		invoice *domain.Invoice
		from    domain.InvoiceStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inv, err := s.invoices.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get invoice: %w", err)
		}

		to, err := domain.Transition(inv.Status, event)
		if err != nil {
			return err
		}

		if effect != nil {
			if err := effect(txCtx, inv); err != nil {
				return err
			}
		}

		updated, err := s.invoices.SetStatus(txCtx, id, inv.Status, to)
		if err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		if err := s.audit.Append(txCtx, domain.NewStatusChangedEvent(id, inv.Status, to)); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated.Items = inv.Items
		invoice, from = updated, inv.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice status changed",
		slog.String("invoice_id", id.String()),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("from", from.String()),
		slog.String("to", invoice.Status.String()),
	)

	return invoice, nil
}

// FinalizeInvoice sends a draft: stock for every product line is debited.
// Either every line is covered and debited, or nothing changes.
func (s *Service) FinalizeInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoiceEventFinalize, s.debitStock)
}

// MarkInvoicePaid records payment of a sent invoice.
func (s *Service) MarkInvoicePaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoiceEventMarkPaid, nil)
}

// CancelInvoice cancels a sent or paid invoice and returns its goods to stock.
func (s *Service) CancelInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoiceEventCancel, s.creditStock)
}

func (s *Service) debitStock(ctx context.Context, inv *domain.Invoice) error {
	order, demand := inv.StockDemand()
	if len(order) == 0 {
		return nil
	}

	byID, err := s.lockProducts(ctx, order)
	if err != nil {
		return err
	}
	for _, pid := range order {
		p, ok := byID[pid]
		if !ok {
			return fmt.Errorf("product %s: %w", pid, domain.ErrNotFound)
		}
		if p.StockCurrent < demand[pid] {
			return &domain.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   p.StockCurrent,
				Needed:      demand[pid],
			}
		}
	}

	return s.applyLines(ctx, inv, -1, domain.StockReasonSale)
}

func (s *Service) creditStock(ctx context.Context, inv *domain.Invoice) error {
	order, _ := inv.StockDemand()
	if len(order) == 0 {
		return nil
	}
	if _, err := s.lockProducts(ctx, order); err != nil {
		return err
	}
	return s.applyLines(ctx, inv, 1, domain.StockReasonReversal)
}

// lockProducts takes row locks in id order, so finalizations and
// cancellations touching the same products queue instead of deadlocking.
func (s *Service) lockProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Product, error) {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })

	locked, err := s.products.LockByIDs(ctx, sorted)
	if err != nil {
		return nil, fmt.Errorf("lock products: %w", err)
	}
	byID := make(map[uuid.UUID]domain.Product, len(locked))
	for _, p := range locked {
		byID[p.ID] = p
	}
	return byID, nil
}

// applyLines records one movement per product-bearing item, referencing the invoice number.
func (s *Service) applyLines(ctx context.Context, inv *domain.Invoice, sign int, reason domain.StockReason) error {
	reference := inv.InvoiceNumber
	for _, it := range inv.Items {
		if it.ProductID == nil {
			continue
		}
		_, _, err := s.stock.Apply(ctx, domain.StockAdjustment{
			ProductID: *it.ProductID,
			Quantity:  sign * it.Quantity,
			Reason:    reason,
			Reference: &reference,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
