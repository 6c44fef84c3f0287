// Package settings manages the company profile and invoice series configuration.
package settings

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type settingsRepo interface {
	EnsureExists(ctx context.Context) error
	Get(ctx context.Context) (*domain.Settings, error)
	GetForUpdate(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, p domain.SettingsUpdateParams) (*domain.Settings, error)
}

type numberSeries interface {
	SyncSeries(ctx context.Context, prefix string, year, start int) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides settings operations.
type Service struct {
	settings settingsRepo
	series   numberSeries
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new settings service.
func NewService(
	log *slog.Logger,
	settings settingsRepo,
	series numberSeries,
	tx txManager,
) *Service {
	return &Service{
		settings: settings,
		series:   series,
		tx:       tx,
		log:      log.With("service", "settings"),
	}
}
