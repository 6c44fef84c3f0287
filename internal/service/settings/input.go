package settings

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var prefixPattern = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

var (
	minVATRate = decimal.Zero
	maxVATRate = decimal.NewFromInt(100)
)

// UpdateSettingsInput replaces all editable settings fields.
type UpdateSettingsInput struct {
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

// Validate checks all fields and collects all errors.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if !prefixPattern.MatchString(strings.TrimSpace(i.InvoicePrefix)) {
		errs = append(errs, domain.FieldError{Field: "invoice_prefix", Message: "1-10 characters A-Z or 0-9"})
	}
	if i.InvoiceYear < 2000 || i.InvoiceYear > 2100 {
		errs = append(errs, domain.FieldError{Field: "invoice_year", Message: "must be between 2000 and 2100"})
	}
	if i.InvoiceStartNumber < 1 {
		errs = append(errs, domain.FieldError{Field: "invoice_start_number", Message: "must be at least 1"})
	}
	if i.DefaultDueDays < 0 || i.DefaultDueDays > 365 {
		errs = append(errs, domain.FieldError{Field: "default_due_days", Message: "must be between 0 and 365"})
	}
	if i.DefaultVATRate.LessThan(minVATRate) || i.DefaultVATRate.GreaterThan(maxVATRate) {
		errs = append(errs, domain.FieldError{Field: "default_vat_rate", Message: "must be between 0 and 100"})
	}
	if !domain.FitsCents(i.DefaultVATRate) {
		errs = append(errs, domain.FieldError{Field: "default_vat_rate", Message: "at most 2 decimal places"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateSettingsInput) params() domain.SettingsUpdateParams {
	country := strings.TrimSpace(i.Country)
	if country == "" {
		country = domain.DefaultCountry
	}
	return domain.SettingsUpdateParams{
		CompanyName:        strings.TrimSpace(i.CompanyName),
		OwnerName:          strings.TrimSpace(i.OwnerName),
		Street:             strings.TrimSpace(i.Street),
		Zip:                strings.TrimSpace(i.Zip),
		City:               strings.TrimSpace(i.City),
		Country:            country,
		Phone:              strings.TrimSpace(i.Phone),
		Email:              strings.TrimSpace(i.Email),
		Website:            strings.TrimSpace(i.Website),
		TaxNumber:          strings.TrimSpace(i.TaxNumber),
		VATID:              strings.TrimSpace(i.VATID),
		BankName:           strings.TrimSpace(i.BankName),
		IBAN:               strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(i.IBAN)), " ", ""),
		BIC:                strings.ToUpper(strings.TrimSpace(i.BIC)),
		InvoicePrefix:      strings.TrimSpace(i.InvoicePrefix),
		InvoiceYear:        i.InvoiceYear,
		InvoiceStartNumber: i.InvoiceStartNumber,
		DefaultDueDays:     i.DefaultDueDays,
		VATEnabled:         i.VATEnabled,
		DefaultVATRate:     i.DefaultVATRate,
		PaymentTerms:       i.PaymentTerms,
		FooterText:         i.FooterText,
	}
}
