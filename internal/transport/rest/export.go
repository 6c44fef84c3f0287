package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type exportService interface {
	WriteInvoices(ctx context.Context, filter domain.InvoiceFilter, w io.Writer) (int, error)
}

// ExportHandler serves spreadsheet downloads.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

// Invoices handles GET /api/export/invoices.xlsx. The workbook is buffered so
// a failure can still produce a JSON error.
func (h *ExportHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	customerID, err := queryUUID(r, "customerId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter := domain.InvoiceFilter{CustomerID: customerID, Search: r.URL.Query().Get("search")}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.InvoiceStatus(s)
		if !status.IsValid() {
			handleError(h.log, w, r, domain.NewValidationError("status", "invalid value"))
			return
		}
		filter.Status = &status
	}

	var buf bytes.Buffer
	if _, err := h.svc.WriteInvoices(r.Context(), filter, &buf); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="rechnungen.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
