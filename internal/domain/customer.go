package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCountry is used when a customer is created without a country.
const DefaultCountry = "Deutschland"

// Customer is an invoice recipient.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Company   *string
	Street    string
	Zip       string
	City      string
	Country   string
	Email     *string
	Phone     *string
	TaxID     *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// InvoiceCount is filled by list queries only.
	InvoiceCount int
}

// DisplayName returns the company if set, otherwise the person's name.
func (c Customer) DisplayName() string {
	if c.Company != nil && *c.Company != "" {
		return *c.Company
	}
	return c.Name
}

// CustomerUpdateParams carries optional field changes.
type CustomerUpdateParams struct {
	Name    *string
	Company *string
	Street  *string
	Zip     *string
	City    *string
	Country *string
	Email   *string
	Phone   *string
	TaxID   *string
	Notes   *string
}
