package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/customer"
)

type customerService interface {
	CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context, input customer.ListCustomersInput) ([]domain.Customer, error)
}

// CustomerHandler serves customers.
type CustomerHandler struct {
	svc customerService
	log *slog.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: logger.With("handler", "customer")}
}

type customerRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Street  *string `json:"street"`
	Zip     *string `json:"zip"`
	City    *string `json:"city"`
	Country *string `json:"country"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	TaxID   *string `json:"taxId"`
	Notes   *string `json:"notes"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	list, err := h.svc.ListCustomers(r.Context(), customer.ListCustomersInput{
		Search: r.URL.Query().Get("search"),
		Limit:  p.limit,
		Offset: p.offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]customerResponse, len(list))
	for i, c := range list {
		out[i] = toCustomer(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.CreateCustomer(r.Context(), customer.CreateCustomerInput{
		Name:    deref(req.Name),
		Company: req.Company,
		Street:  deref(req.Street),
		Zip:     deref(req.Zip),
		City:    deref(req.City),
		Country: deref(req.Country),
		Email:   req.Email,
		Phone:   req.Phone,
		TaxID:   req.TaxID,
		Notes:   req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomer(*c))
}

// Get handles GET /api/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomer(*c))
}

// Update handles PATCH /api/customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req customerRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.UpdateCustomer(r.Context(), customer.UpdateCustomerInput{
		CustomerID: id,
		Name:       req.Name,
		Company:    req.Company,
		Street:     req.Street,
		Zip:        req.Zip,
		City:       req.City,
		Country:    req.Country,
		Email:      req.Email,
		Phone:      req.Phone,
		TaxID:      req.TaxID,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomer(*c))
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
