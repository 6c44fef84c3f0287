package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/invoice"
	"github.com/heartmarshall/franken-backoffice/internal/transport/dataloader"
)

type invoiceService interface {
	CreateInvoice(ctx context.Context, input invoice.CreateInvoiceInput) (*domain.Invoice, error)
	UpdateInvoiceItems(ctx context.Context, input invoice.UpdateItemsInput) (*domain.Invoice, error)
	UpdateInvoiceDetails(ctx context.Context, input invoice.UpdateDetailsInput) (*domain.Invoice, error)
	FinalizeInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	CancelInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, input invoice.ListInvoicesInput) ([]domain.Invoice, error)
	InvoiceDocument(ctx context.Context, id uuid.UUID) (*invoice.Document, error)
}

// InvoiceHandler serves invoices and their lifecycle transitions.
type InvoiceHandler struct {
	svc invoiceService
	log *slog.Logger
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(svc invoiceService, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, log: logger.With("handler", "invoice")}
}

type itemRequest struct {
	ProductID   *uuid.UUID      `json:"productId"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func toItemInputs(items []itemRequest) []invoice.ItemInput {
	out := make([]invoice.ItemInput, len(items))
	for i, it := range items {
		out[i] = invoice.ItemInput{
			ProductID:   it.ProductID,
			Title:       it.Title,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}

type createInvoiceRequest struct {
	CustomerID   uuid.UUID        `json:"customerId"`
	InvoiceDate  *Date            `json:"invoiceDate"`
	DeliveryDate *Date            `json:"deliveryDate"`
	DueDate      *Date            `json:"dueDate"`
	Discount     *decimal.Decimal `json:"discount"`
	ShippingCost *decimal.Decimal `json:"shippingCost"`
	Notes        *string          `json:"notes"`
	Items        []itemRequest    `json:"items"`
}

type updateItemsRequest struct {
	Items []itemRequest `json:"items"`
}

type updateDetailsRequest struct {
	CustomerID        *uuid.UUID       `json:"customerId"`
	InvoiceDate       *Date            `json:"invoiceDate"`
	DeliveryDate      *Date            `json:"deliveryDate"`
	ClearDeliveryDate bool             `json:"clearDeliveryDate"`
	DueDate           *Date            `json:"dueDate"`
	Discount          *decimal.Decimal `json:"discount"`
	ShippingCost      *decimal.Decimal `json:"shippingCost"`
	Notes             *string          `json:"notes"`
}

// List handles GET /api/invoices. Customer names are resolved in one batch.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	customerID, err := queryUUID(r, "customerId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input := invoice.ListInvoicesInput{
		CustomerID: customerID,
		Search:     r.URL.Query().Get("search"),
		Limit:      p.limit,
		Offset:     p.offset,
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.InvoiceStatus(s)
		input.Status = &status
	}

	list, err := h.svc.ListInvoices(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]invoiceResponse, len(list))
	for i := range list {
		out[i] = toInvoice(&list[i])
	}
	attachCustomerNames(r.Context(), h.log, list, out)
	writeJSON(w, http.StatusOK, out)
}

// attachCustomerNames fills CustomerName through the request's loaders. It is
// a no-op without them; a failed lookup only leaves the name empty.
func attachCustomerNames(ctx context.Context, log *slog.Logger, list []domain.Invoice, out []invoiceResponse) {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil {
		return
	}
	ids := make([]uuid.UUID, len(list))
	for i, inv := range list {
		ids[i] = inv.CustomerID
	}
	customers, errs := loaders.CustomerByID.LoadMany(ctx, ids)()
	for i := range out {
		if i < len(errs) && errs[i] != nil {
			log.WarnContext(ctx, "customer lookup failed",
				slog.String("invoice_id", list[i].ID.String()),
				slog.String("error", errs[i].Error()))
			continue
		}
		if i < len(customers) && customers[i] != nil {
			out[i].CustomerName = customers[i].DisplayName()
		}
	}
}

// Create handles POST /api/invoices.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	inv, err := h.svc.CreateInvoice(r.Context(), invoice.CreateInvoiceInput{
		CustomerID:   req.CustomerID,
		InvoiceDate:  req.InvoiceDate.timePtr(),
		DeliveryDate: req.DeliveryDate.timePtr(),
		DueDate:      req.DueDate.timePtr(),
		Discount:     req.Discount,
		ShippingCost: req.ShippingCost,
		Notes:        req.Notes,
		Items:        toItemInputs(req.Items),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInvoice(inv))
}

// Get handles GET /api/invoices/{id}.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	inv, err := h.svc.GetInvoice(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvoice(inv))
}

// UpdateDetails handles PATCH /api/invoices/{id}.
func (h *InvoiceHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateDetailsRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	inv, err := h.svc.UpdateInvoiceDetails(r.Context(), invoice.UpdateDetailsInput{
		InvoiceID:         id,
		CustomerID:        req.CustomerID,
		InvoiceDate:       req.InvoiceDate.timePtr(),
		DeliveryDate:      req.DeliveryDate.timePtr(),
		ClearDeliveryDate: req.ClearDeliveryDate,
		DueDate:           req.DueDate.timePtr(),
		Discount:          req.Discount,
		ShippingCost:      req.ShippingCost,
		Notes:             req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvoice(inv))
}

// UpdateItems handles PUT /api/invoices/{id}/items.
func (h *InvoiceHandler) UpdateItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateItemsRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	inv, err := h.svc.UpdateInvoiceItems(r.Context(), invoice.UpdateItemsInput{
		InvoiceID: id,
		Items:     toItemInputs(req.Items),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvoice(inv))
}

// Finalize handles POST /api/invoices/{id}/finalize.
func (h *InvoiceHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.FinalizeInvoice)
}

// MarkPaid handles POST /api/invoices/{id}/paid.
func (h *InvoiceHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.MarkInvoicePaid)
}

// Cancel handles POST /api/invoices/{id}/cancel.
func (h *InvoiceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.CancelInvoice)
}

func (h *InvoiceHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Invoice, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	inv, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvoice(inv))
}

// Delete handles DELETE /api/invoices/{id}.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteInvoice(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PDF handles GET /api/invoices/{id}/pdf.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	doc, err := h.svc.InvoiceDocument(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}
