// Package customer manages invoice recipients.
package customer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// CreateCustomer creates a customer; the country defaults to Deutschland.
func (s *Service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = domain.DefaultCountry
	}

	c, err := s.customers.Create(ctx, &domain.Customer{
		Name:    strings.TrimSpace(input.Name),
		Company: trimOrNil(input.Company),
		Street:  strings.TrimSpace(input.Street),
		Zip:     strings.TrimSpace(input.Zip),
		City:    strings.TrimSpace(input.City),
		Country: country,
		Email:   trimOrNil(input.Email),
		Phone:   trimOrNil(input.Phone),
		TaxID:   trimOrNil(input.TaxID),
		Notes:   trimOrNil(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer created",
		slog.String("customer_id", c.ID.String()),
		slog.String("name", c.Name),
	)

	return c, nil
}

// UpdateCustomer changes the given fields.
func (s *Service) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.customers.Update(ctx, input.CustomerID, domain.CustomerUpdateParams{
		Name:    trimmed(input.Name),
		Company: trimmed(input.Company),
		Street:  trimmed(input.Street),
		Zip:     trimmed(input.Zip),
		City:    trimmed(input.City),
		Country: trimmed(input.Country),
		Email:   trimmed(input.Email),
		Phone:   trimmed(input.Phone),
		TaxID:   trimmed(input.TaxID),
		Notes:   trimmed(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer updated", slog.String("customer_id", c.ID.String()))
	return c, nil
}

// DeleteCustomer removes a customer without invoices.
func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("customer_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.invoices.CountByCustomer(txCtx, id)
		if err != nil {
			return fmt.Errorf("count invoices: %w", err)
		}
		if n > 0 {
			return &domain.ConflictError{
				Entity: "customer",
				Reason: fmt.Sprintf("customer has %d invoices and cannot be deleted", n),
			}
		}
		if err := s.customers.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "customer deleted", slog.String("customer_id", id.String()))
	return nil
}

// GetCustomer returns a single customer.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListCustomers returns customers ordered by name with their invoice counts.
func (s *Service) ListCustomers(ctx context.Context, input ListCustomersInput) ([]domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	out, err := s.customers.List(ctx, strings.TrimSpace(input.Search), limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}
