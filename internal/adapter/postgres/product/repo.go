// Package product implements the product repository using PostgreSQL,
// including the atomic stock counter used by the stock ledger.
package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const (
	table        = "products"
	defaultLimit = 100
)

var columns = []string{
	"id", "name", "sku", "category", "purchase_price", "selling_price",
	"stock_current", "stock_minimum", "location", "supplier", "notes",
	"created_at", "updated_at",
}

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	SKU           *string         `db:"sku"`
	Category      string          `db:"category"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	SellingPrice  decimal.Decimal `db:"selling_price"`
	StockCurrent  int             `db:"stock_current"`
	StockMinimum  int             `db:"stock_minimum"`
	Location      *string         `db:"location"`
	Supplier      *string         `db:"supplier"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (r row) toDomain() domain.Product {
	return domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		SKU:           r.SKU,
		Category:      r.Category,
		PurchasePrice: r.PurchasePrice,
		SellingPrice:  r.SellingPrice,
		StockCurrent:  r.StockCurrent,
		StockMinimum:  r.StockMinimum,
		Location:      r.Location,
		Supplier:      r.Supplier,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toDomainList(rows []row) []domain.Product {
	out := make([]domain.Product, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

func selectProducts() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a product. StockCurrent is written as given; the caller is
// responsible for recording the matching initial movement in the same transaction.
func (r *Repo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	b := postgres.Builder().
		Insert(table).
		Columns("id", "name", "sku", "category", "purchase_price", "selling_price",
			"stock_current", "stock_minimum", "location", "supplier", "notes").
		Values(id, p.Name, p.SKU, p.Category, p.PurchasePrice, p.SellingPrice,
			p.StockCurrent, p.StockMinimum, p.Location, p.Supplier, p.Notes).
		Suffix("RETURNING " + joinColumns())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "product", id)
	}
	res := out.toDomain()
	return &res, nil
}

// Update applies the non-nil fields of params. Stock is never touched here.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.SKU != nil {
		set["sku"] = nullIfEmpty(*params.SKU)
	}
	if params.Category != nil {
		set["category"] = *params.Category
	}
	if params.PurchasePrice != nil {
		set["purchase_price"] = *params.PurchasePrice
	}
	if params.SellingPrice != nil {
		set["selling_price"] = *params.SellingPrice
	}
	if params.StockMinimum != nil {
		set["stock_minimum"] = *params.StockMinimum
	}
	if params.Location != nil {
		set["location"] = nullIfEmpty(*params.Location)
	}
	if params.Supplier != nil {
		set["supplier"] = nullIfEmpty(*params.Supplier)
	}
	if params.Notes != nil {
		set["notes"] = nullIfEmpty(*params.Notes)
	}

	b := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "product", id)
	}
	res := out.toDomain()
	return &res, nil
}

// Delete removes a product and, by cascade, its movements.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapDeleteError(err, "product", id, "product is used on invoices and cannot be deleted")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddStock atomically adds delta to stock_current unless the result would be
// negative. applied is false when the guard rejected the change (or the
// product does not exist); the caller then inspects the product.
func (r *Repo) AddStock(ctx context.Context, id uuid.UUID, delta int) (p *domain.Product, applied bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(table).
		Set("stock_current", sq.Expr("stock_current + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("stock_current + ? >= 0", delta)).
		Suffix("RETURNING " + joinColumns())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		if postgres.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, postgres.MapError(err, "product", id)
	}
	res := out.toDomain()
	return &res, true, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a product or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := postgres.Get(ctx, q, &out, selectProducts().Where(sq.Eq{"id": id})); err != nil {
		return nil, postgres.MapError(err, "product", id)
	}
	res := out.toDomain()
	return &res, nil
}

// GetByIDs returns the products that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := postgres.Select(ctx, q, &rows, selectProducts().Where(sq.Eq{"id": ids})); err != nil {
		return nil, fmt.Errorf("products by ids: %w", err)
	}
	return toDomainList(rows), nil
}

// LockByIDs row-locks the given products for the rest of the transaction.
// Rows are locked in id order so concurrent finalizations cannot deadlock.
func (r *Repo) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectProducts().
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		Suffix("FOR UPDATE")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("lock products: %w", err)
	}
	return toDomainList(rows), nil
}

// List returns products matching filter ordered by name.
func (r *Repo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectProducts().OrderBy("name ASC", "id ASC")
	if filter.Search != "" {
		like := postgres.Like(filter.Search)
		b = b.Where(sq.Or{
			sq.ILike{"name": like},
			sq.ILike{"sku": like},
			sq.ILike{"supplier": like},
		})
	}
	if filter.Category != "" {
		b = b.Where(sq.Eq{"category": filter.Category})
	}
	if filter.LowStock {
		b = b.Where("stock_current <= stock_minimum")
	}
	b = paginate(b, filter.Limit, filter.Offset)

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return toDomainList(rows), nil
}

// LowestStock returns low-stock products with the smallest stock first.
func (r *Repo) LowestStock(ctx context.Context, limit int) ([]domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectProducts().
		Where("stock_current <= stock_minimum").
		OrderBy("stock_current ASC", "name ASC").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("lowest stock: %w", err)
	}
	return toDomainList(rows), nil
}

// IsReferenced reports whether any invoice item points at the product.
func (r *Repo) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoice_items WHERE product_id = $1)`, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "product", id)
	}
	return exists, nil
}

// Categories returns the distinct non-empty categories in use.
func (r *Repo) Categories(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select("DISTINCT category").
		From(table).
		Where(sq.NotEq{"category": ""}).
		OrderBy("category")

	var out []string
	if err := postgres.Select(ctx, q, &out, b); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func paginate(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	b = b.Limit(uint64(limit))
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
