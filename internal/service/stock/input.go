package stock

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// AdjustStockInput holds a manual stock change.
type AdjustStockInput struct {
	ProductID uuid.UUID
	Quantity  int
	Reason    domain.StockReason
	Reference *string
}

// Validate checks all fields and collects all errors.
func (i AdjustStockInput) Validate() error {
	var errs []domain.FieldError

	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.Quantity == 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be zero"})
	}
	if !i.Reason.IsManual() {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "must be one of PURCHASE, CORRECTION, STOCK_TAKE"})
	}
	if i.Reference != nil && len(strings.TrimSpace(*i.Reference)) > 200 {
		errs = append(errs, domain.FieldError{Field: "reference", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListMovementsInput narrows a product's movement history.
type ListMovementsInput struct {
	ProductID uuid.UUID
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i ListMovementsInput) Validate() error {
	var errs []domain.FieldError
	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > MaxMovementLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
