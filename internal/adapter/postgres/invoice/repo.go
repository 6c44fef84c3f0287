// Package invoice implements invoice and invoice item persistence using PostgreSQL.
package invoice

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const (
	table        = "invoices"
	itemsTable   = "invoice_items"
	auditTable   = "invoice_audit_logs"
	defaultLimit = 100
)

var columns = []string{
	"id", "invoice_number", "invoice_date", "delivery_date", "due_date", "status",
	"customer_id", "discount", "shipping_cost", "subtotal", "vat_rate", "vat_amount",
	"total", "notes", "created_at", "updated_at",
}

var itemColumns = []string{
	"id", "invoice_id", "position", "product_id", "title", "description",
	"quantity", "unit_price", "line_total",
}

// Repo provides invoice persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new invoice repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID       `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DeliveryDate  *time.Time      `db:"delivery_date"`
	DueDate       time.Time       `db:"due_date"`
	Status        string          `db:"status"`
	CustomerID    uuid.UUID       `db:"customer_id"`
	Discount      decimal.Decimal `db:"discount"`
	ShippingCost  decimal.Decimal `db:"shipping_cost"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	VATRate       decimal.Decimal `db:"vat_rate"`
	VATAmount     decimal.Decimal `db:"vat_amount"`
	Total         decimal.Decimal `db:"total"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (r row) toDomain() domain.Invoice {
	return domain.Invoice{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   r.InvoiceDate,
		DeliveryDate:  r.DeliveryDate,
		DueDate:       r.DueDate,
		Status:        domain.InvoiceStatus(r.Status),
		CustomerID:    r.CustomerID,
		Discount:      r.Discount,
		ShippingCost:  r.ShippingCost,
		Subtotal:      r.Subtotal,
		VATRate:       r.VATRate,
		VATAmount:     r.VATAmount,
		Total:         r.Total,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type itemRow struct {
	ID          uuid.UUID       `db:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id"`
	Position    int             `db:"position"`
	ProductID   *uuid.UUID      `db:"product_id"`
	Title       string          `db:"title"`
	Description *string         `db:"description"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	LineTotal   decimal.Decimal `db:"line_total"`
}

func (r itemRow) toDomain() domain.InvoiceItem {
	return domain.InvoiceItem{
		ID:          r.ID,
		InvoiceID:   r.InvoiceID,
		Position:    r.Position,
		ProductID:   r.ProductID,
		Title:       r.Title,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		LineTotal:   r.LineTotal,
	}
}

func selectInvoices() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the invoice and its items. A duplicate invoice number
// surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := inv.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := inv.Status
	if status == "" {
		status = domain.InvoiceStatusDraft
	}

	b := postgres.Builder().
		Insert(table).
		Columns("id", "invoice_number", "invoice_date", "delivery_date", "due_date", "status",
			"customer_id", "discount", "shipping_cost", "subtotal", "vat_rate", "vat_amount", "total", "notes").
		Values(id, inv.InvoiceNumber, inv.InvoiceDate, inv.DeliveryDate, inv.DueDate, string(status),
			inv.CustomerID, inv.Discount, inv.ShippingCost, inv.Subtotal, inv.VATRate, inv.VATAmount, inv.Total, inv.Notes).
		Suffix(returning())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "invoice", inv.InvoiceNumber)
	}

	items, err := r.insertItems(ctx, q, id, inv.Items)
	if err != nil {
		return nil, err
	}

	res := out.toDomain()
	res.Items = items
	return &res, nil
}

// ReplaceItems deletes all items of the invoice and inserts items in order.
func (r *Repo) ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []domain.InvoiceItem) ([]domain.InvoiceItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := postgres.Exec(ctx, q, postgres.Builder().Delete(itemsTable).Where(sq.Eq{"invoice_id": invoiceID})); err != nil {
		return nil, postgres.MapError(err, "invoice_items", invoiceID)
	}
	return r.insertItems(ctx, q, invoiceID, items)
}

func (r *Repo) insertItems(ctx context.Context, q postgres.Querier, invoiceID uuid.UUID, items []domain.InvoiceItem) ([]domain.InvoiceItem, error) {
	if len(items) == 0 {
		return []domain.InvoiceItem{}, nil
	}

	b := postgres.Builder().
		Insert(itemsTable).
		Columns("id", "invoice_id", "position", "product_id", "title", "description", "quantity", "unit_price", "line_total")
	for i, it := range items {
		b = b.Values(uuid.New(), invoiceID, i+1, it.ProductID, it.Title, it.Description,
			it.Quantity, it.UnitPrice, it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	b = b.Suffix("RETURNING " + strings.Join(itemColumns, ", "))

	var rows []itemRow
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "invoice_items", invoiceID)
	}
	out := make([]domain.InvoiceItem, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	slices.SortFunc(out, func(a, b domain.InvoiceItem) int { return cmp.Compare(a.Position, b.Position) })
	return out, nil
}

// UpdateDetails rewrites the header fields and totals of an invoice.
func (r *Repo) UpdateDetails(ctx context.Context, id uuid.UUID, p domain.InvoiceDetailsParams) (*domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(table).
		Set("customer_id", p.CustomerID).
		Set("invoice_date", p.InvoiceDate).
		Set("delivery_date", p.DeliveryDate).
		Set("due_date", p.DueDate).
		Set("discount", p.Discount).
		Set("shipping_cost", p.ShippingCost).
		Set("notes", p.Notes).
		Set("subtotal", p.Totals.Subtotal).
		Set("vat_rate", p.Totals.VATRate).
		Set("vat_amount", p.Totals.VATAmount).
		Set("total", p.Totals.Total).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}
	res := out.toDomain()
	return &res, nil
}

// UpdateTotals stores recomputed totals.
func (r *Repo) UpdateTotals(ctx context.Context, id uuid.UUID, t domain.Totals) (*domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(table).
		Set("subtotal", t.Subtotal).
		Set("vat_rate", t.VATRate).
		Set("vat_amount", t.VATAmount).
		Set("total", t.Total).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}
	res := out.toDomain()
	return &res, nil
}

// SetStatus moves the invoice to status, guarded by the expected current status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, from, to domain.InvoiceStatus) (*domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(from)}).
		Suffix(returning())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}
	res := out.toDomain()
	return &res, nil
}

// Delete removes the items, the audit trail and the invoice itself.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := postgres.Exec(ctx, q, postgres.Builder().Delete(itemsTable).Where(sq.Eq{"invoice_id": id})); err != nil {
		return postgres.MapError(err, "invoice_items", id)
	}
	if _, err := postgres.Exec(ctx, q, postgres.Builder().Delete(auditTable).Where(sq.Eq{"invoice_id": id})); err != nil {
		return postgres.MapError(err, "invoice_audit_logs", id)
	}
	tag, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "invoice", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the invoice with its items.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return r.get(ctx, selectInvoices().Where(sq.Eq{"id": id}), id)
}

// GetForUpdate returns the invoice with its items and row-locks the invoice
// until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return r.get(ctx, selectInvoices().Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

// GetByNumber returns the invoice with the given number.
func (r *Repo) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	return r.get(ctx, selectInvoices().Where(sq.Eq{"invoice_number": number}), number)
}

func (r *Repo) get(ctx context.Context, b sq.SelectBuilder, key any) (*domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "invoice", key)
	}
	inv := out.toDomain()

	items, err := r.ItemsByInvoiceIDs(ctx, []uuid.UUID{inv.ID})
	if err != nil {
		return nil, err
	}
	inv.Items = items[inv.ID]
	if inv.Items == nil {
		inv.Items = []domain.InvoiceItem{}
	}
	return &inv, nil
}

// ItemsByInvoiceIDs returns items grouped by invoice, each group ordered by position.
func (r *Repo) ItemsByInvoiceIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.InvoiceItem, error) {
	out := make(map[uuid.UUID][]domain.InvoiceItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"invoice_id": ids}).
		OrderBy("invoice_id", "position")

	var rows []itemRow
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("invoice items: %w", err)
	}
	for _, r := range rows {
		out[r.InvoiceID] = append(out[r.InvoiceID], r.toDomain())
	}
	return out, nil
}

// List returns invoices (without items) newest first.
func (r *Repo) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectInvoices().OrderBy("invoice_date DESC", "created_at DESC")
	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.CustomerID != nil {
		b = b.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Search != "" {
		like := postgres.Like(filter.Search)
		b = b.Where(sq.Or{
			sq.ILike{"invoice_number": like},
			sq.ILike{"notes": like},
			sq.Expr("customer_id IN (SELECT id FROM customers WHERE name ILIKE ? OR company ILIKE ?)", like, like),
		})
	}
	limit := filter.Limit
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	b = b.Limit(uint64(limit))
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	out := make([]domain.Invoice, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// CountByCustomer returns how many invoices a customer owns.
func (r *Repo) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	b := postgres.Builder().Select("COUNT(*)").From(table).Where(sq.Eq{"customer_id": customerID})
	if err := postgres.Scalar(ctx, q, &n, b); err != nil {
		return 0, postgres.MapError(err, "customer", customerID)
	}
	return n, nil
}

// NumbersWithPrefix returns every invoice number starting with prefix.
func (r *Repo) NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select("invoice_number").
		From(table).
		Where(sq.Like{"invoice_number": prefix + "%"})

	var out []string
	if err := postgres.Select(ctx, q, &out, b); err != nil {
		return nil, fmt.Errorf("invoice numbers: %w", err)
	}
	return out, nil
}
