package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a bill to a customer, governed by the lifecycle in Transition.
type Invoice struct {
	ID            uuid.UUID
	InvoiceNumber string
	InvoiceDate   time.Time
	DeliveryDate  *time.Time
	DueDate       time.Time
	Status        InvoiceStatus
	CustomerID    uuid.UUID
	Discount      decimal.Decimal
	ShippingCost  decimal.Decimal
	Subtotal      decimal.Decimal
	VATRate       decimal.Decimal
	VATAmount     decimal.Decimal
	Total         decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items    []InvoiceItem
	AuditLog []AuditEntry
}

// Lines returns the money-relevant part of the items.
func (inv *Invoice) Lines() []LineAmount {
	return ItemLines(inv.Items)
}

// ApplyTotals copies derived totals onto the invoice.
func (inv *Invoice) ApplyTotals(t Totals) {
	inv.Subtotal = t.Subtotal
	inv.VATRate = t.VATRate
	inv.VATAmount = t.VATAmount
	inv.Total = t.Total
}

// StoredTotals returns the totals persisted on the invoice.
func (inv *Invoice) StoredTotals() Totals {
	return Totals{
		Subtotal:  inv.Subtotal,
		VATRate:   inv.VATRate,
		VATAmount: inv.VATAmount,
		Total:     inv.Total,
	}
}

// RecalculateTotals re-derives totals from the stored items and VAT rate.
func (inv *Invoice) RecalculateTotals() Totals {
	return CalculateTotals(inv.Lines(), inv.Discount, inv.ShippingCost, VATPolicyFromRate(inv.VATRate))
}

// StockDemand sums item quantities per referenced product, in item order.
func (inv *Invoice) StockDemand() ([]uuid.UUID, map[uuid.UUID]int) {
	var order []uuid.UUID
	demand := make(map[uuid.UUID]int)
	for _, it := range inv.Items {
		if it.ProductID == nil {
			continue
		}
		if _, seen := demand[*it.ProductID]; !seen {
			order = append(order, *it.ProductID)
		}
		demand[*it.ProductID] += it.Quantity
	}
	return order, demand
}

// InvoiceItem is one line of an invoice. ProductID nil means a free-text line.
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Position    int
	ProductID   *uuid.UUID
	Title       string
	Description *string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// ItemLines maps items to line amounts.
func ItemLines(items []InvoiceItem) []LineAmount {
	lines := make([]LineAmount, len(items))
	for i, it := range items {
		lines[i] = LineAmount{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return lines
}

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	Status     *InvoiceStatus
	CustomerID *uuid.UUID
	Search     string
	Limit      int
	Offset     int
}

// InvoiceDetailsParams carries header changes for a draft invoice.
type InvoiceDetailsParams struct {
	CustomerID   uuid.UUID
	InvoiceDate  time.Time
	DeliveryDate *time.Time
	DueDate      time.Time
	Discount     decimal.Decimal
	ShippingCost decimal.Decimal
	Notes        *string
	Totals       Totals
}
