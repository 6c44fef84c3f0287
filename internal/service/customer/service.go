package customer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error)
}

type invoiceRepo interface {
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Service provides customer management operations.
type Service struct {
	customers customerRepo
	invoices  invoiceRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new customer service.
func NewService(
	log *slog.Logger,
	customers customerRepo,
	invoices invoiceRepo,
	tx txManager,
) *Service {
	return &Service{
		customers: customers,
		invoices:  invoices,
		tx:        tx,
		log:       log.With("service", "customer"),
	}
}

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

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
