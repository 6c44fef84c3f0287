package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// VATPolicy decides whether and at what percentage VAT is charged.
type VATPolicy struct {
	Enabled bool
	Rate    decimal.Decimal // percent, e.g. 19
}

// EffectiveRate is the rate stored on an invoice: zero when VAT is disabled.
func (p VATPolicy) EffectiveRate() decimal.Decimal {
	if !p.Enabled {
		return decimal.Zero
	}
	return p.Rate
}

// VATPolicyFromRate rebuilds the policy from an invoice's stored VAT rate.
func VATPolicyFromRate(rate decimal.Decimal) VATPolicy {
	return VATPolicy{Enabled: rate.IsPositive(), Rate: rate}
}

// LineAmount is the part of an invoice line that affects money.
type LineAmount struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total returns quantity × unit price.
func (l LineAmount) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals holds the derived money fields of an invoice.
type Totals struct {
	ItemsTotal decimal.Decimal
	Subtotal   decimal.Decimal
	VATRate    decimal.Decimal
	VATAmount  decimal.Decimal
	Total      decimal.Decimal
}

// Equal compares the persisted figures (subtotal, VAT, total).
func (t Totals) Equal(o Totals) bool {
	return t.Subtotal.Equal(o.Subtotal) &&
		t.VATRate.Equal(o.VATRate) &&
		t.VATAmount.Equal(o.VATAmount) &&
		t.Total.Equal(o.Total)
}

// FitsCents reports whether v has no digits below the cent. Money and VAT
// rates are stored as NUMERIC(_,2); anything finer would be rounded column by
// column on write and the stored totals would no longer re-derive.
func FitsCents(v decimal.Decimal) bool {
	return v.Equal(v.Round(2))
}

// CalculateTotals derives invoice totals. A discount larger than the items total
// yields a negative subtotal; callers decide whether to accept it.
// The VAT amount is rounded half away from zero to cents; everything else is exact.
func CalculateTotals(lines []LineAmount, discount, shipping decimal.Decimal, policy VATPolicy) Totals {
	itemsTotal := decimal.Zero
	for _, l := range lines {
		itemsTotal = itemsTotal.Add(l.Total())
	}

	subtotal := itemsTotal.Sub(discount).Add(shipping)

	vatAmount := decimal.Zero
	rate := policy.EffectiveRate()
	if policy.Enabled {
		vatAmount = subtotal.Mul(rate).Div(hundred).Round(2)
	}

	return Totals{
		ItemsTotal: itemsTotal,
		Subtotal:   subtotal,
		VATRate:    rate,
		VATAmount:  vatAmount,
		Total:      subtotal.Add(vatAmount),
	}
}
