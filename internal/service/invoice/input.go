package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// ItemInput is one line of an invoice as submitted by the caller.
type ItemInput struct {
	ProductID   *uuid.UUID
	Title       string
	Description *string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func validateItems(items []ItemInput) []domain.FieldError {
	var errs []domain.FieldError

	if len(items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item required"})
	}
	if len(items) > MaxItemsPerInvoice {
		errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("max %d items", MaxItemsPerInvoice)})
	}
	for i, it := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		if strings.TrimSpace(it.Title) == "" && it.ProductID == nil {
			errs = append(errs, domain.FieldError{Field: prefix + "title", Message: "required"})
		}
		if len(it.Title) > 200 {
			errs = append(errs, domain.FieldError{Field: prefix + "title", Message: "max 200 characters"})
		}
		if it.Quantity < 1 {
			errs = append(errs, domain.FieldError{Field: prefix + "quantity", Message: "must be at least 1"})
		}
		if it.UnitPrice.IsNegative() {
			errs = append(errs, domain.FieldError{Field: prefix + "unit_price", Message: "must not be negative"})
		}
		if !domain.FitsCents(it.UnitPrice) {
			errs = append(errs, domain.FieldError{Field: prefix + "unit_price", Message: "at most 2 decimal places"})
		}
		if it.ProductID != nil && *it.ProductID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: prefix + "product_id", Message: "invalid"})
		}
	}
	return errs
}

func validateMoney(field string, v *decimal.Decimal) []domain.FieldError {
	switch {
	case v == nil:
		return nil
	case v.IsNegative():
		return []domain.FieldError{{Field: field, Message: "must not be negative"}}
	case !domain.FitsCents(*v):
		return []domain.FieldError{{Field: field, Message: "at most 2 decimal places"}}
	}
	return nil
}

// CreateInvoiceInput holds the parameters for creating a draft invoice.
type CreateInvoiceInput struct {
	CustomerID   uuid.UUID
	InvoiceDate  *time.Time // nil = today
	DeliveryDate *time.Time
	DueDate      *time.Time // nil = invoice date + default due days
	Discount     *decimal.Decimal
	ShippingCost *decimal.Decimal
	Notes        *string
	Items        []ItemInput
}

// Validate checks all fields and collects all errors.
func (i CreateInvoiceInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	errs = append(errs, validateItems(i.Items)...)
	errs = append(errs, validateMoney("discount", i.Discount)...)
	errs = append(errs, validateMoney("shipping_cost", i.ShippingCost)...)
	if i.InvoiceDate != nil && i.DueDate != nil && dateOnly(*i.DueDate).Before(dateOnly(*i.InvoiceDate)) {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "must not be before invoice date"})
	}
	if i.Notes != nil && len(*i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemsInput replaces all items of a draft.
type UpdateItemsInput struct {
	InvoiceID uuid.UUID
	Items     []ItemInput
}

// Validate checks all fields and collects all errors.
func (i UpdateItemsInput) Validate() error {
	var errs []domain.FieldError
	if i.InvoiceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "invoice_id", Message: "required"})
	}
	errs = append(errs, validateItems(i.Items)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDetailsInput patches the header of a draft. Nil fields are left unchanged.
type UpdateDetailsInput struct {
	InvoiceID         uuid.UUID
	CustomerID        *uuid.UUID
	InvoiceDate       *time.Time
	DeliveryDate      *time.Time
	ClearDeliveryDate bool
	DueDate           *time.Time
	Discount          *decimal.Decimal
	ShippingCost      *decimal.Decimal
	Notes             *string // ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateDetailsInput) Validate() error {
	var errs []domain.FieldError

	if i.InvoiceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "invoice_id", Message: "required"})
	}
	if i.CustomerID == nil && i.InvoiceDate == nil && i.DeliveryDate == nil && !i.ClearDeliveryDate &&
		i.DueDate == nil && i.Discount == nil && i.ShippingCost == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.CustomerID != nil && *i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "invalid"})
	}
	if i.DeliveryDate != nil && i.ClearDeliveryDate {
		errs = append(errs, domain.FieldError{Field: "delivery_date", Message: "cannot set and clear at once"})
	}
	errs = append(errs, validateMoney("discount", i.Discount)...)
	errs = append(errs, validateMoney("shipping_cost", i.ShippingCost)...)
	if i.Notes != nil && len(*i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInvoicesInput narrows an invoice listing.
type ListInvoicesInput struct {
	Status     *domain.InvoiceStatus
	CustomerID *uuid.UUID
	Search     string
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInvoicesInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(i.Search) > 100 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 100 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
