package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type dashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// DashboardHandler serves the landing page figures.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dashboardResponse struct {
	TotalProducts  int               `json:"totalProducts"`
	LowStockCount  int               `json:"lowStockCount"`
	TotalCustomers int               `json:"totalCustomers"`
	OpenInvoices   int               `json:"openInvoices"`
	TotalRevenue   decimal.Decimal   `json:"totalRevenue"`
	LowStock       []productResponse `json:"lowStock"`
	RecentInvoices []invoiceResponse `json:"recentInvoices"`
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	recent := make([]invoiceResponse, len(st.RecentInvoices))
	for i := range st.RecentInvoices {
		recent[i] = toInvoice(&st.RecentInvoices[i])
	}
	attachCustomerNames(r.Context(), h.log, st.RecentInvoices, recent)
	writeJSON(w, http.StatusOK, dashboardResponse{
		TotalProducts:  st.TotalProducts,
		LowStockCount:  st.LowStockCount,
		TotalCustomers: st.TotalCustomers,
		OpenInvoices:   st.OpenInvoices,
		TotalRevenue:   st.TotalRevenue,
		LowStock:       toProducts(st.LowStock),
		RecentInvoices: recent,
	})
}
