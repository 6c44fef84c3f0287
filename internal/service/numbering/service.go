// Package numbering allocates and reclaims invoice numbers of the form
// PREFIX-YEAR-NNNN from the counter stored on the settings singleton.
package numbering

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type settingsRepo interface {
	EnsureExists(ctx context.Context) error
	GetForUpdate(ctx context.Context) (*domain.Settings, error)
	IncrementCounter(ctx context.Context) (*domain.Settings, error)
	DecrementCounterIf(ctx context.Context, expected int) (bool, error)
	SetCounter(ctx context.Context, value int) error
}

type invoiceRepo interface {
	NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the numbering authority.
type Service struct {
	settings settingsRepo
	invoices invoiceRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new numbering service.
func NewService(
	log *slog.Logger,
	settings settingsRepo,
	invoices invoiceRepo,
	tx txManager,
) *Service {
	return &Service{
		settings: settings,
		invoices: invoices,
		tx:       tx,
		log:      log.With("service", "numbering"),
	}
}

// Preview returns the number the next allocation would produce.
func Preview(s *domain.Settings) string {
	return s.NextInvoiceNumber()
}
