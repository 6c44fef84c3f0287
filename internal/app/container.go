package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/audit"
	customerrepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/customer"
	invoicerepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/invoice"
	movementrepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/movement"
	productrepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/product"
	settingsrepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/settings"
	statsrepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/stats"
	userrepo "github.com/heartmarshall/franken-backoffice/internal/adapter/postgres/user"
	"github.com/heartmarshall/franken-backoffice/internal/auth"
	"github.com/heartmarshall/franken-backoffice/internal/config"
	"github.com/heartmarshall/franken-backoffice/internal/export"
	"github.com/heartmarshall/franken-backoffice/internal/render/pdf"
	authsvc "github.com/heartmarshall/franken-backoffice/internal/service/auth"
	"github.com/heartmarshall/franken-backoffice/internal/service/customer"
	"github.com/heartmarshall/franken-backoffice/internal/service/dashboard"
	"github.com/heartmarshall/franken-backoffice/internal/service/invoice"
	"github.com/heartmarshall/franken-backoffice/internal/service/numbering"
	"github.com/heartmarshall/franken-backoffice/internal/service/product"
	"github.com/heartmarshall/franken-backoffice/internal/service/settings"
	"github.com/heartmarshall/franken-backoffice/internal/service/stock"
)

// Repos holds every repository over one pool.
type Repos struct {
	Audit     *auditrepo.Repo
	Customer  *customerrepo.Repo
	Invoice   *invoicerepo.Repo
	Movement  *movementrepo.Repo
	Product   *productrepo.Repo
	Settings  *settingsrepo.Repo
	Stats     *statsrepo.Repo
	User      *userrepo.Repo
	TxManager *postgres.TxManager
}

// NewRepos creates all repositories on pool.
func NewRepos(pool *pgxpool.Pool) *Repos {
	return &Repos{
		Audit:     auditrepo.New(pool),
		Customer:  customerrepo.New(pool),
		Invoice:   invoicerepo.New(pool),
		Movement:  movementrepo.New(pool),
		Product:   productrepo.New(pool),
		Settings:  settingsrepo.New(pool),
		Stats:     statsrepo.New(pool),
		User:      userrepo.New(pool),
		TxManager: postgres.NewTxManager(pool),
	}
}

// Services holds the wired service layer. The server, the seeder and the
// operator CLI all build it the same way.
type Services struct {
	Repos *Repos

	Auth      *authsvc.Service
	Customer  *customer.Service
	Dashboard *dashboard.Service
	Export    *export.Service
	Invoice   *invoice.Service
	Numbering *numbering.Service
	Product   *product.Service
	Settings  *settings.Service
	Stock     *stock.Service
}

// NewServices wires repositories and services.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Services, error) {
	tokens, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("jwt manager: %w", err)
	}

	repos := NewRepos(pool)
	tx := repos.TxManager

	numberingSvc := numbering.NewService(logger, repos.Settings, repos.Invoice, tx)
	stockSvc := stock.NewService(logger, repos.Product, repos.Movement, tx)

	return &Services{
		Repos:     repos,
		Auth:      authsvc.NewService(logger, repos.User, tokens),
		Customer:  customer.NewService(logger, repos.Customer, repos.Invoice, tx),
		Dashboard: dashboard.NewService(logger, repos.Stats, repos.Product, repos.Invoice),
		Export:    export.NewService(logger, repos.Invoice, repos.Customer),
		Invoice: invoice.NewService(
			logger,
			repos.Invoice,
			repos.Product,
			repos.Customer,
			repos.Audit,
			repos.Settings,
			stockSvc,
			numberingSvc,
			pdf.NewRenderer(logger),
			tx,
		),
		Numbering: numberingSvc,
		Product:   product.NewService(logger, repos.Product, repos.Movement, tx),
		Settings:  settings.NewService(logger, repos.Settings, numberingSvc, tx),
		Stock:     stockSvc,
	}, nil
}
