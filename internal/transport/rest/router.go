package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/franken-backoffice/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Product   *ProductHandler
	Customer  *CustomerHandler
	Invoice   *InvoiceHandler
	Settings  *SettingsHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
}

// NewRouter mounts the probes and the login endpoint publicly and everything
// under /api behind authentication. loginLimit guards POST /auth/login.
func NewRouter(h Handlers, loginLimit middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.Handle("/auth/login", loginLimit(http.HandlerFunc(h.Auth.Login))).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth)

	api.HandleFunc("/dashboard", h.Dashboard.Get).Methods(http.MethodGet)

	api.HandleFunc("/products", h.Product.List).Methods(http.MethodGet)
	api.HandleFunc("/products", h.Product.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/categories", h.Product.Categories).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Product.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Product.Update).Methods(http.MethodPatch)
	api.HandleFunc("/products/{id}", h.Product.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/products/{id}/stock", h.Product.AdjustStock).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}/movements", h.Product.Movements).Methods(http.MethodGet)

	api.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	api.HandleFunc("/customers", h.Customer.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", h.Customer.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customer.Update).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{id}", h.Customer.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/invoices", h.Invoice.List).Methods(http.MethodGet)
	api.HandleFunc("/invoices", h.Invoice.Create).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}", h.Invoice.Get).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}", h.Invoice.UpdateDetails).Methods(http.MethodPatch)
	api.HandleFunc("/invoices/{id}", h.Invoice.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/invoices/{id}/items", h.Invoice.UpdateItems).Methods(http.MethodPut)
	api.HandleFunc("/invoices/{id}/finalize", h.Invoice.Finalize).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}/paid", h.Invoice.MarkPaid).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}/cancel", h.Invoice.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}/pdf", h.Invoice.PDF).Methods(http.MethodGet)

	api.HandleFunc("/settings", h.Settings.Get).Methods(http.MethodGet)
	api.Handle("/settings", middleware.RequireAdmin(http.HandlerFunc(h.Settings.Update))).Methods(http.MethodPut)
	api.HandleFunc("/settings/number-preview", h.Settings.NumberPreview).Methods(http.MethodGet)

	api.HandleFunc("/export/invoices.xlsx", h.Export.Invoices).Methods(http.MethodGet)

	return r
}
