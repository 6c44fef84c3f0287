package numbering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// Allocate issues the next invoice number. Called inside the invoice creation
// transaction: the settings row stays locked until that transaction ends, so
// concurrent creators are serialized and a rollback releases the number.
func (s *Service) Allocate(ctx context.Context) (string, *domain.Settings, error) {
	var (
		number   string
		settings *domain.Settings
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.settings.EnsureExists(txCtx); err != nil {
			return fmt.Errorf("ensure settings: %w", err)
		}
		st, err := s.settings.IncrementCounter(txCtx)
		if err != nil {
			return fmt.Errorf("increment counter: %w", err)
		}
		settings = st
		number = st.CurrentInvoiceNumber()
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	s.log.DebugContext(ctx, "invoice number allocated", slog.String("number", number))
	return number, settings, nil
}

// Reclaim gives a number back when it is the most recently issued one, so a
// deleted draft does not leave a gap. Older numbers stay consumed.
func (s *Service) Reclaim(ctx context.Context, number string) (bool, error) {
	var reclaimed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		st, err := s.settings.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("lock settings: %w", err)
		}
		if st.InvoiceCurrentNumber == 0 || number != st.CurrentInvoiceNumber() {
			return nil
		}
		reclaimed, err = s.settings.DecrementCounterIf(txCtx, st.InvoiceCurrentNumber)
		if err != nil {
			return fmt.Errorf("decrement counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if reclaimed {
		s.log.InfoContext(ctx, "invoice number reclaimed", slog.String("number", number))
	}
	return reclaimed, nil
}
