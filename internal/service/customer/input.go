package customer

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// CreateCustomerInput holds the parameters for creating a customer.
type CreateCustomerInput struct {
	Name    string
	Company *string
	Street  string
	Zip     string
	City    string
	Country string // empty = Deutschland
	Email   *string
	Phone   *string
	TaxID   *string
	Notes   *string
}

// Validate checks all fields and collects all errors.
func (i CreateCustomerInput) Validate() error {
	var errs []domain.FieldError

	required := []struct{ field, value string }{
		{"name", i.Name},
		{"street", i.Street},
		{"zip", i.Zip},
		{"city", i.City},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	errs = append(errs, validateEmail(i.Email)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCustomerInput holds optional field changes.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	Name       *string
	Company    *string // ptr("") = clear
	Street     *string
	Zip        *string
	City       *string
	Country    *string
	Email      *string // ptr("") = clear
	Phone      *string
	TaxID      *string
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if i.Name == nil && i.Company == nil && i.Street == nil && i.Zip == nil && i.City == nil &&
		i.Country == nil && i.Email == nil && i.Phone == nil && i.TaxID == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	required := []struct {
		field string
		value *string
	}{
		{"name", i.Name},
		{"street", i.Street},
		{"zip", i.Zip},
		{"city", i.City},
		{"country", i.Country},
	}
	for _, r := range required {
		if r.value != nil && strings.TrimSpace(*r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "must not be empty"})
		}
	}
	errs = append(errs, validateEmail(i.Email)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email *string) []domain.FieldError {
	if email == nil || strings.TrimSpace(*email) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(*email)); err != nil {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}

// ListCustomersInput narrows a customer listing.
type ListCustomersInput struct {
	Search string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListCustomersInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
