package numbering

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// SyncSeries positions the counter for a (prefix, year) series: numbering
// restarts at start unless the series already has higher numbers, in which
// case it continues after the highest one. Returns the new counter value.
func (s *Service) SyncSeries(ctx context.Context, prefix string, year, start int) (int, error) {
	if start < 1 {
		start = 1
	}

	var counter int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.settings.GetForUpdate(txCtx); err != nil {
			return fmt.Errorf("lock settings: %w", err)
		}

		numbers, err := s.invoices.NumbersWithPrefix(txCtx, prefix+"-"+strconv.Itoa(year)+"-")
		if err != nil {
			return fmt.Errorf("existing numbers: %w", err)
		}

		counter = start - 1
		for _, n := range numbers {
			if seq, ok := domain.ParseInvoiceSequence(n, prefix, year); ok && seq > counter {
				counter = seq
			}
		}

		if err := s.settings.SetCounter(txCtx, counter); err != nil {
			return fmt.Errorf("set counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "invoice series synced",
		slog.String("prefix", prefix),
		slog.Int("year", year),
		slog.Int("counter", counter),
	)
	return counter, nil
}
