package product

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name          string
	SKU           *string
	Category      string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	InitialStock  int
	StockMinimum  int
	Location      *string
	Supplier      *string
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i CreateProductInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.SKU != nil && len(strings.TrimSpace(*i.SKU)) > 64 {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "max 64 characters"})
	}
	if i.PurchasePrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "purchase_price", Message: "must not be negative"})
	}
	if i.SellingPrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "selling_price", Message: "must not be negative"})
	}
	if !domain.FitsCents(i.PurchasePrice) {
		errs = append(errs, domain.FieldError{Field: "purchase_price", Message: "at most 2 decimal places"})
	}
	if !domain.FitsCents(i.SellingPrice) {
		errs = append(errs, domain.FieldError{Field: "selling_price", Message: "at most 2 decimal places"})
	}
	if i.InitialStock < 0 {
		errs = append(errs, domain.FieldError{Field: "initial_stock", Message: "must not be negative"})
	}
	if i.StockMinimum < 0 {
		errs = append(errs, domain.FieldError{Field: "stock_minimum", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProductInput holds optional field changes. Stock is not part of it.
type UpdateProductInput struct {
	ProductID     uuid.UUID
	Name          *string
	SKU           *string // ptr("") = clear
	Category      *string
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
	StockMinimum  *int
	Location      *string
	Supplier      *string
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateProductInput) Validate() error {
	var errs []domain.FieldError

	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.Name == nil && i.SKU == nil && i.Category == nil && i.PurchasePrice == nil && i.SellingPrice == nil &&
		i.StockMinimum == nil && i.Location == nil && i.Supplier == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.PurchasePrice != nil && i.PurchasePrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "purchase_price", Message: "must not be negative"})
	}
	if i.SellingPrice != nil && i.SellingPrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "selling_price", Message: "must not be negative"})
	}
	if i.PurchasePrice != nil && !domain.FitsCents(*i.PurchasePrice) {
		errs = append(errs, domain.FieldError{Field: "purchase_price", Message: "at most 2 decimal places"})
	}
	if i.SellingPrice != nil && !domain.FitsCents(*i.SellingPrice) {
		errs = append(errs, domain.FieldError{Field: "selling_price", Message: "at most 2 decimal places"})
	}
	if i.StockMinimum != nil && *i.StockMinimum < 0 {
		errs = append(errs, domain.FieldError{Field: "stock_minimum", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListProductsInput narrows a product listing.
type ListProductsInput struct {
	Search   string
	Category string
	LowStock bool
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListProductsInput) Validate() error {
	var errs []domain.FieldError
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
