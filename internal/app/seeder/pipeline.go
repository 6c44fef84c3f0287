// Package seeder prepares a fresh database: the settings row, the admin
// account and, on request, a small demo catalog. Every phase can be re-run.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/franken-backoffice/internal/config"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/auth"
	"github.com/heartmarshall/franken-backoffice/internal/service/customer"
	"github.com/heartmarshall/franken-backoffice/internal/service/product"
	"github.com/heartmarshall/franken-backoffice/internal/service/settings"
)

type settingsProfile interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, input settings.UpdateSettingsInput) (*domain.Settings, error)
}

type userEnsurer interface {
	EnsureUser(ctx context.Context, input auth.EnsureUserInput) (*domain.User, error)
}

type customerCatalog interface {
	ListCustomers(ctx context.Context, input customer.ListCustomersInput) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
}

type productCatalog interface {
	ListProducts(ctx context.Context, input product.ListProductsInput) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input product.CreateProductInput) (*domain.Product, error)
}

// Phase names in execution order.
const (
	PhaseSettings = "settings"
	PhaseAdmin    = "admin"
	PhaseDemo     = "demo"
)

var allPhases = []string{PhaseSettings, PhaseAdmin, PhaseDemo}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Deps are the stores the pipeline writes through.
type Deps struct {
	Settings  settingsProfile
	Users     userEnsurer
	Customers customerCatalog
	Products  productCatalog
}

// Pipeline runs the seed phases.
type Pipeline struct {
	log     *slog.Logger
	deps    Deps
	cfg     config.SeedConfig
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, deps Deps, cfg config.SeedConfig) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		deps:    deps,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the phases. If phases is non-empty only the listed ones run,
// still in canonical order. The demo phase runs only when DemoData is set.
// A failing phase is recorded and the remaining phases still run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		toRun = nil
		for _, ph := range allPhases {
			if filter[ph] {
				toRun = append(toRun, ph)
			}
		}
	}

	for _, phase := range toRun {
		if phase == PhaseDemo && !p.cfg.DemoData {
			p.log.Info("demo data disabled, skipping")
			continue
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseSettings:
			result = p.runSettings(ctx)
		case PhaseAdmin:
			result = p.runAdmin(ctx)
		case PhaseDemo:
			result = p.runDemo(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

func (p *Pipeline) runSettings(ctx context.Context) PhaseResult {
	st, err := p.deps.Settings.GetSettings(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("ensure settings: %w", err)}
	}
	if p.cfg.CompanyName == "" || st.CompanyName != "" {
		return PhaseResult{Skipped: 1}
	}

	in := profileInput(st)
	in.CompanyName = p.cfg.CompanyName
	if p.cfg.OwnerName != "" {
		in.OwnerName = p.cfg.OwnerName
	}
	if p.cfg.InvoicePrefix != "" {
		in.InvoicePrefix = p.cfg.InvoicePrefix
	}
	if _, err := p.deps.Settings.UpdateSettings(ctx, in); err != nil {
		return PhaseResult{Err: fmt.Errorf("apply company profile: %w", err)}
	}
	p.log.Info("company profile applied",
		slog.String("company", in.CompanyName),
		slog.String("invoice_prefix", in.InvoicePrefix))
	return PhaseResult{Inserted: 1}
}

func profileInput(st *domain.Settings) settings.UpdateSettingsInput {
	return settings.UpdateSettingsInput{
		CompanyName:        st.CompanyName,
		OwnerName:          st.OwnerName,
		Street:             st.Street,
		Zip:                st.Zip,
		City:               st.City,
		Country:            st.Country,
		Phone:              st.Phone,
		Email:              st.Email,
		Website:            st.Website,
		TaxNumber:          st.TaxNumber,
		VATID:              st.VATID,
		BankName:           st.BankName,
		IBAN:               st.IBAN,
		BIC:                st.BIC,
		InvoicePrefix:      st.InvoicePrefix,
		InvoiceYear:        st.InvoiceYear,
		InvoiceStartNumber: st.InvoiceStartNumber,
		DefaultDueDays:     st.DefaultDueDays,
		VATEnabled:         st.VATEnabled,
		DefaultVATRate:     st.DefaultVATRate,
		PaymentTerms:       st.PaymentTerms,
		FooterText:         st.FooterText,
	}
}

func (p *Pipeline) runAdmin(ctx context.Context) PhaseResult {
	if p.cfg.AdminPassword == "" {
		p.log.Warn("SEED_ADMIN_PASSWORD not set, admin account left unchanged",
			slog.String("email", p.cfg.AdminEmail))
		return PhaseResult{Skipped: 1}
	}
	u, err := p.deps.Users.EnsureUser(ctx, auth.EnsureUserInput{
		Email:    p.cfg.AdminEmail,
		Name:     p.cfg.AdminName,
		Password: p.cfg.AdminPassword,
		Role:     domain.UserRoleAdmin,
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("ensure admin: %w", err)}
	}
	p.log.Info("admin account ready", slog.String("user_id", u.ID.String()), slog.String("email", u.Email))
	return PhaseResult{Inserted: 1}
}
