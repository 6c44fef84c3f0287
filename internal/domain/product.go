package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a stock-keeping item. StockCurrent is maintained exclusively by the
// stock ledger and always equals the sum of the product's movements.
type Product struct {
	ID            uuid.UUID
	Name          string
	SKU           *string
	Category      string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	StockCurrent  int
	StockMinimum  int
	Location      *string
	Supplier      *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock reports whether stock has reached the minimum threshold.
func (p Product) IsLowStock() bool {
	return p.StockCurrent <= p.StockMinimum
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Search   string
	Category string
	LowStock bool
	Limit    int
	Offset   int
}

// ProductUpdateParams carries optional field changes. Stock is not editable here.
type ProductUpdateParams struct {
	Name          *string
	SKU           *string
	Category      *string
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
	StockMinimum  *int
	Location      *string
	Supplier      *string
	Notes         *string
}

// StockMovement is an immutable record of one stock change.
type StockMovement struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Reason    StockReason
	Reference *string
	CreatedAt time.Time
}

// StockAdjustment is a request to the stock ledger.
type StockAdjustment struct {
	ProductID uuid.UUID
	Quantity  int
	Reason    StockReason
	Reference *string
}
