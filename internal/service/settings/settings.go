package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// GetSettings returns the settings singleton, creating it with defaults on first use.
func (s *Service) GetSettings(ctx context.Context) (*domain.Settings, error) {
	if err := s.settings.EnsureExists(ctx); err != nil {
		return nil, fmt.Errorf("ensure settings: %w", err)
	}
	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

// UpdateSettings replaces the editable fields. Changing the invoice series
// repositions the numbering counter for the new series.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	params := input.params()

	var (
		out           *domain.Settings
		seriesChanged bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.settings.EnsureExists(txCtx); err != nil {
			return fmt.Errorf("ensure settings: %w", err)
		}
		before, err := s.settings.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("lock settings: %w", err)
		}

		out, err = s.settings.Update(txCtx, params)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}

		seriesChanged = before.InvoicePrefix != params.InvoicePrefix ||
			before.InvoiceYear != params.InvoiceYear ||
			before.InvoiceStartNumber != params.InvoiceStartNumber
		if !seriesChanged {
			return nil
		}

		counter, err := s.series.SyncSeries(txCtx, params.InvoicePrefix, params.InvoiceYear, params.InvoiceStartNumber)
		if err != nil {
			return fmt.Errorf("sync series: %w", err)
		}
		out.InvoiceCurrentNumber = counter
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.Bool("series_changed", seriesChanged),
		slog.String("next_number", out.NextInvoiceNumber()),
	)
	return out, nil
}

// NumberPreview returns the invoice number the next finalized draft would receive.
func (s *Service) NumberPreview(ctx context.Context) (string, error) {
	st, err := s.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return st.NextInvoiceNumber(), nil
}
