// Package settings implements the settings singleton and the invoice number
// counter primitives using PostgreSQL.
package settings

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const table = "settings"

var columns = []string{
	"id", "company_name", "owner_name", "street", "zip", "city", "country", "phone", "email",
	"website", "tax_number", "vat_id", "bank_name", "iban", "bic", "invoice_prefix", "invoice_year",
	"invoice_start_number", "invoice_current_number", "default_due_days", "vat_enabled",
	"default_vat_rate", "payment_terms", "footer_text", "updated_at",
}

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                   string          `db:"id"`
	CompanyName          string          `db:"company_name"`
	OwnerName            string          `db:"owner_name"`
	Street               string          `db:"street"`
	Zip                  string          `db:"zip"`
	City                 string          `db:"city"`
	Country              string          `db:"country"`
	Phone                string          `db:"phone"`
	Email                string          `db:"email"`
	Website              string          `db:"website"`
	TaxNumber            string          `db:"tax_number"`
	VATID                string          `db:"vat_id"`
	BankName             string          `db:"bank_name"`
	IBAN                 string          `db:"iban"`
	BIC                  string          `db:"bic"`
	InvoicePrefix        string          `db:"invoice_prefix"`
	InvoiceYear          int             `db:"invoice_year"`
	InvoiceStartNumber   int             `db:"invoice_start_number"`
	InvoiceCurrentNumber int             `db:"invoice_current_number"`
	DefaultDueDays       int             `db:"default_due_days"`
	VATEnabled           bool            `db:"vat_enabled"`
	DefaultVATRate       decimal.Decimal `db:"default_vat_rate"`
	PaymentTerms         *string         `db:"payment_terms"`
	FooterText           *string         `db:"footer_text"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

func (r row) toDomain() *domain.Settings {
	return &domain.Settings{
		ID:                   r.ID,
		CompanyName:          r.CompanyName,
		OwnerName:            r.OwnerName,
		Street:               r.Street,
		Zip:                  r.Zip,
		City:                 r.City,
		Country:              r.Country,
		Phone:                r.Phone,
		Email:                r.Email,
		Website:              r.Website,
		TaxNumber:            r.TaxNumber,
		VATID:                r.VATID,
		BankName:             r.BankName,
		IBAN:                 r.IBAN,
		BIC:                  r.BIC,
		InvoicePrefix:        r.InvoicePrefix,
		InvoiceYear:          r.InvoiceYear,
		InvoiceStartNumber:   r.InvoiceStartNumber,
		InvoiceCurrentNumber: r.InvoiceCurrentNumber,
		DefaultDueDays:       r.DefaultDueDays,
		VATEnabled:           r.VATEnabled,
		DefaultVATRate:       r.DefaultVATRate,
		PaymentTerms:         r.PaymentTerms,
		FooterText:           r.FooterText,
		UpdatedAt:            r.UpdatedAt,
	}
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (r *Repo) scanOne(ctx context.Context, b sq.Sqlizer) (*domain.Settings, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "settings", domain.SettingsID)
	}
	return out.toDomain(), nil
}

// EnsureExists inserts the singleton with defaults unless it already exists.
func (r *Repo) EnsureExists(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d := domain.DefaultSettings()
	b := postgres.Builder().
		Insert(table).
		Columns("id", "country", "invoice_prefix", "invoice_year", "invoice_start_number",
			"invoice_current_number", "default_due_days", "vat_enabled", "default_vat_rate").
		Values(d.ID, d.Country, d.InvoicePrefix, d.InvoiceYear, d.InvoiceStartNumber,
			d.InvoiceCurrentNumber, d.DefaultDueDays, d.VATEnabled, d.DefaultVATRate).
		Suffix("ON CONFLICT (id) DO NOTHING")

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "settings", domain.SettingsID)
	}
	return nil
}

// Get returns the singleton or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	return r.scanOne(ctx, postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": domain.SettingsID}))
}

// GetForUpdate returns the singleton and row-locks it for the transaction.
func (r *Repo) GetForUpdate(ctx context.Context) (*domain.Settings, error) {
	return r.scanOne(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": domain.SettingsID}).
		Suffix("FOR UPDATE"))
}

// IncrementCounter atomically bumps the invoice counter and returns the new state.
// The row stays locked until the surrounding transaction ends.
func (r *Repo) IncrementCounter(ctx context.Context) (*domain.Settings, error) {
	return r.scanOne(ctx, postgres.Builder().
		Update(table).
		Set("invoice_current_number", sq.Expr("invoice_current_number + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": domain.SettingsID}).
		Suffix(returning()))
}

// DecrementCounterIf lowers the counter by one (floored at zero) only while it
// still equals expected. It reports whether the counter changed.
func (r *Repo) DecrementCounterIf(ctx context.Context, expected int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(table).
		Set("invoice_current_number", sq.Expr("GREATEST(invoice_current_number - 1, 0)")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": domain.SettingsID, "invoice_current_number": expected}).
		Where("invoice_current_number > 0")

	tag, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return false, postgres.MapError(err, "settings", domain.SettingsID)
	}
	return tag.RowsAffected() == 1, nil
}

// SetCounter positions the counter; only the numbering service uses it when a series changes.
func (r *Repo) SetCounter(ctx context.Context, value int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(table).
		Set("invoice_current_number", value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": domain.SettingsID})

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "settings", domain.SettingsID)
	}
	return nil
}

// Update replaces every editable field. The counter is left untouched.
func (r *Repo) Update(ctx context.Context, p domain.SettingsUpdateParams) (*domain.Settings, error) {
	return r.scanOne(ctx, postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"company_name":         p.CompanyName,
			"owner_name":           p.OwnerName,
			"street":               p.Street,
			"zip":                  p.Zip,
			"city":                 p.City,
			"country":              p.Country,
			"phone":                p.Phone,
			"email":                p.Email,
			"website":              p.Website,
			"tax_number":           p.TaxNumber,
			"vat_id":               p.VATID,
			"bank_name":            p.BankName,
			"iban":                 p.IBAN,
			"bic":                  p.BIC,
			"invoice_prefix":       p.InvoicePrefix,
			"invoice_year":         p.InvoiceYear,
			"invoice_start_number": p.InvoiceStartNumber,
			"default_due_days":     p.DefaultDueDays,
			"vat_enabled":          p.VATEnabled,
			"default_vat_rate":     p.DefaultVATRate,
			"payment_terms":        p.PaymentTerms,
			"footer_text":          p.FooterText,
			"updated_at":           sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": domain.SettingsID}).
		Suffix(returning()))
}
