package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/config"
	"github.com/heartmarshall/franken-backoffice/internal/transport/dataloader"
	"github.com/heartmarshall/franken-backoffice/internal/transport/middleware"
	"github.com/heartmarshall/franken-backoffice/internal/transport/rest"
	"github.com/heartmarshall/franken-backoffice/migrations"
)

const readHeaderTimeout = 5 * time.Second

// Run is the server entry point. It loads configuration, connects to the
// database, optionally applies migrations and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", CurrentBuild().String()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	svcs, err := NewServices(cfg, pool, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           NewHandler(cfg, svcs, pool, limiter, logger),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// NewHandler builds the full HTTP stack: global middleware around the REST
// router.
func NewHandler(
	cfg *config.Config,
	svcs *Services,
	pool *pgxpool.Pool,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, Version),
		Auth:      rest.NewAuthHandler(svcs.Auth, logger),
		Product:   rest.NewProductHandler(svcs.Product, svcs.Stock, logger),
		Customer:  rest.NewCustomerHandler(svcs.Customer, logger),
		Invoice:   rest.NewInvoiceHandler(svcs.Invoice, logger),
		Settings:  rest.NewSettingsHandler(svcs.Settings, logger),
		Dashboard: rest.NewDashboardHandler(svcs.Dashboard, logger),
		Export:    rest.NewExportHandler(svcs.Export, logger),
	}, limiter.Limit(cfg.RateLimit.LoginPerMinute))

	loaders := &dataloader.Repos{Customer: svcs.Repos.Customer}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svcs.Auth),
		dataloader.Middleware(loaders),
	)(router)
}
