package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/settings"
)

type settingsService interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, input settings.UpdateSettingsInput) (*domain.Settings, error)
	NumberPreview(ctx context.Context) (string, error)
}

// SettingsHandler serves the company settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	CompanyName        string          `json:"companyName"`
	OwnerName          string          `json:"ownerName"`
	Street             string          `json:"street"`
	Zip                string          `json:"zip"`
	City               string          `json:"city"`
	Country            string          `json:"country"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	Website            string          `json:"website"`
	TaxNumber          string          `json:"taxNumber"`
	VATID              string          `json:"vatId"`
	BankName           string          `json:"bankName"`
	IBAN               string          `json:"iban"`
	BIC                string          `json:"bic"`
	InvoicePrefix      string          `json:"invoicePrefix"`
	InvoiceYear        int             `json:"invoiceYear"`
	InvoiceStartNumber int             `json:"invoiceStartNumber"`
	DefaultDueDays     int             `json:"defaultDueDays"`
	VATEnabled         bool            `json:"vatEnabled"`
	DefaultVATRate     decimal.Decimal `json:"defaultVatRate"`
	PaymentTerms       *string         `json:"paymentTerms"`
	FooterText         *string         `json:"footerText"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettings(st))
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	st, err := h.svc.UpdateSettings(r.Context(), settings.UpdateSettingsInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettings(st))
}

// NumberPreview handles GET /api/settings/number-preview.
func (h *SettingsHandler) NumberPreview(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.NumberPreview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"nextInvoiceNumber": n})
}
