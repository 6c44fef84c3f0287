// Package invoice implements the invoice lifecycle: drafts are created and
// edited freely, finalization debits stock, cancellation credits it back, and
// every change is recorded in the invoice's audit trail.
package invoice

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type invoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []domain.InvoiceItem) ([]domain.InvoiceItem, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, p domain.InvoiceDetailsParams) (*domain.Invoice, error)
	UpdateTotals(ctx context.Context, id uuid.UUID, t domain.Totals) (*domain.Invoice, error)
	SetStatus(ctx context.Context, id uuid.UUID, from, to domain.InvoiceStatus) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
}

type productRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

type auditRepo interface {
	Append(ctx context.Context, e domain.AuditEntry) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.AuditEntry, error)
}

type settingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type stockLedger interface {
	Apply(ctx context.Context, adj domain.StockAdjustment) (*domain.Product, *domain.StockMovement, error)
}

type numberAuthority interface {
	Allocate(ctx context.Context) (string, *domain.Settings, error)
	Reclaim(ctx context.Context, number string) (bool, error)
}

type documentRenderer interface {
	Render(inv *domain.Invoice, customer *domain.Customer, settings *domain.Settings) ([]byte, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxItemsPerInvoice = 200
	DefaultListLimit   = 50
	MaxListLimit       = 100
)

// Service provides invoice lifecycle operations.
type Service struct {
	invoices  invoiceRepo
	products  productRepo
	customers customerRepo
	audit     auditRepo
	settings  settingsRepo
	stock     stockLedger
	numbers   numberAuthority
	renderer  documentRenderer
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new invoice service.
func NewService(
	log *slog.Logger,
	invoices invoiceRepo,
	products productRepo,
	customers customerRepo,
	audit auditRepo,
	settings settingsRepo,
	stock stockLedger,
	numbers numberAuthority,
	renderer documentRenderer,
	tx txManager,
) *Service {
	return &Service{
		invoices:  invoices,
		products:  products,
		customers: customers,
		audit:     audit,
		settings:  settings,
		stock:     stock,
		numbers:   numbers,
		renderer:  renderer,
		tx:        tx,
		log:       log.With("service", "invoice"),
		now:       time.Now,
	}
}

// today returns the current date at midnight UTC.
func (s *Service) today() time.Time {
	return dateOnly(s.now())
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
