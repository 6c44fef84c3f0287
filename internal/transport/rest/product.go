package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/product"
	"github.com/heartmarshall/franken-backoffice/internal/service/stock"
)

type productService interface {
	CreateProduct(ctx context.Context, input product.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input product.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, input product.ListProductsInput) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type stockService interface {
	AdjustStock(ctx context.Context, input stock.AdjustStockInput) (*domain.Product, error)
	ListMovements(ctx context.Context, input stock.ListMovementsInput) ([]domain.StockMovement, error)
}

// ProductHandler serves products and their stock.
type ProductHandler struct {
	products productService
	stock    stockService
	log      *slog.Logger
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(products productService, stock stockService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{products: products, stock: stock, log: logger.With("handler", "product")}
}

type createProductRequest struct {
	Name          string          `json:"name"`
	SKU           *string         `json:"sku"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	InitialStock  int             `json:"initialStock"`
	StockMinimum  int             `json:"stockMinimum"`
	Location      *string         `json:"location"`
	Supplier      *string         `json:"supplier"`
	Notes         *string         `json:"notes"`
}

type updateProductRequest struct {
	Name          *string          `json:"name"`
	SKU           *string          `json:"sku"`
	Category      *string          `json:"category"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
	StockMinimum  *int             `json:"stockMinimum"`
	Location      *string          `json:"location"`
	Supplier      *string          `json:"supplier"`
	Notes         *string          `json:"notes"`
}

type adjustStockRequest struct {
	Quantity  int     `json:"quantity"`
	Reason    string  `json:"reason"`
	Reference *string `json:"reference"`
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	q := r.URL.Query()
	list, err := h.products.ListProducts(r.Context(), product.ListProductsInput{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		LowStock: q.Get("lowStock") == "true",
		Limit:    p.limit,
		Offset:   p.offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(list))
}

// Categories handles GET /api/products/categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.products.Categories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.products.CreateProduct(r.Context(), product.CreateProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		InitialStock:  req.InitialStock,
		StockMinimum:  req.StockMinimum,
		Location:      req.Location,
		Supplier:      req.Supplier,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProduct(*p))
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(*p))
}

// Update handles PATCH /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateProductRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.products.UpdateProduct(r.Context(), product.UpdateProductInput{
		ProductID:     id,
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockMinimum:  req.StockMinimum,
		Location:      req.Location,
		Supplier:      req.Supplier,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(*p))
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdjustStock handles POST /api/products/{id}/stock.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req adjustStockRequest
	if err := decode(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.stock.AdjustStock(r.Context(), stock.AdjustStockInput{
		ProductID: id,
		Quantity:  req.Quantity,
		Reason:    domain.StockReason(req.Reason),
		Reference: req.Reference,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(*p))
}

// Movements handles GET /api/products/{id}/movements.
func (h *ProductHandler) Movements(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	list, err := h.stock.ListMovements(r.Context(), stock.ListMovementsInput{ProductID: id, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMovements(list))
}
