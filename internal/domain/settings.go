package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the fixed identity of the settings singleton.
const SettingsID = "main"

// Settings is the company profile plus invoice numbering state.
type Settings struct {
	ID string

	CompanyName string
	OwnerName   string
	Street      string
	Zip         string
	City        string
	Country     string
	Phone       string
	Email       string
	Website     string
	TaxNumber   string
	VATID       string

	BankName string
	IBAN     string
	BIC      string

	InvoicePrefix        string
	InvoiceYear          int
	InvoiceStartNumber   int
	InvoiceCurrentNumber int
	DefaultDueDays       int
	VATEnabled           bool
	DefaultVATRate       decimal.Decimal
	PaymentTerms         *string
	FooterText           *string

	UpdatedAt time.Time
}

// VATPolicy returns the policy applied to invoices created or edited now.
func (s *Settings) VATPolicy() VATPolicy {
	return VATPolicy{Enabled: s.VATEnabled, Rate: s.DefaultVATRate}
}

// NextInvoiceNumber formats the number the next allocation would produce.
func (s *Settings) NextInvoiceNumber() string {
	return FormatInvoiceNumber(s.InvoicePrefix, s.InvoiceYear, s.InvoiceCurrentNumber+1)
}

// CurrentInvoiceNumber formats the most recently allocated number.
func (s *Settings) CurrentInvoiceNumber() string {
	return FormatInvoiceNumber(s.InvoicePrefix, s.InvoiceYear, s.InvoiceCurrentNumber)
}

// FormatInvoiceNumber renders PREFIX-YEAR-NNNN.
func FormatInvoiceNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// ParseInvoiceSequence extracts the sequence from a number of the given series.
func ParseInvoiceSequence(number, prefix string, year int) (int, bool) {
	head := fmt.Sprintf("%s-%d-", prefix, year)
	if !strings.HasPrefix(number, head) {
		return 0, false
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(number, head))
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// DefaultSettings returns the values used when the singleton is created lazily.
func DefaultSettings() Settings {
	return Settings{
		ID:                 SettingsID,
		Country:            DefaultCountry,
		InvoicePrefix:      "FF",
		InvoiceYear:        2025,
		InvoiceStartNumber: 1,
		DefaultDueDays:     14,
		VATEnabled:         false,
		DefaultVATRate:     decimal.NewFromInt(19),
	}
}

// SettingsUpdateParams is a full replacement of the editable settings fields.
// The numbering counter is not editable.
type SettingsUpdateParams struct {
	CompanyName        string
	OwnerName          string
	Street             string
	Zip                string
	City               string
	Country            string
	Phone              string
	Email              string
	Website            string
	TaxNumber          string
	VATID              string
	BankName           string
	IBAN               string
	BIC                string
	InvoicePrefix      string
	InvoiceYear        int
	InvoiceStartNumber int
	DefaultDueDays     int
	VATEnabled         bool
	DefaultVATRate     decimal.Decimal
	PaymentTerms       *string
	FooterText         *string
}

// UpdateParams returns the editable fields of s as a full replacement.
func (s *Settings) UpdateParams() SettingsUpdateParams {
	return SettingsUpdateParams{
		CompanyName:        s.CompanyName,
		OwnerName:          s.OwnerName,
		Street:             s.Street,
		Zip:                s.Zip,
		City:               s.City,
		Country:            s.Country,
		Phone:              s.Phone,
		Email:              s.Email,
		Website:            s.Website,
		TaxNumber:          s.TaxNumber,
		VATID:              s.VATID,
		BankName:           s.BankName,
		IBAN:               s.IBAN,
		BIC:                s.BIC,
		InvoicePrefix:      s.InvoicePrefix,
		InvoiceYear:        s.InvoiceYear,
		InvoiceStartNumber: s.InvoiceStartNumber,
		DefaultDueDays:     s.DefaultDueDays,
		VATEnabled:         s.VATEnabled,
		DefaultVATRate:     s.DefaultVATRate,
		PaymentTerms:       s.PaymentTerms,
		FooterText:         s.FooterText,
	}
}
