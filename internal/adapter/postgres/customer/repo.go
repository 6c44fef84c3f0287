// Package customer implements the customer repository using PostgreSQL.
package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const (
	table        = "customers"
	defaultLimit = 100
)

var columns = []string{
	"id", "name", "company", "street", "zip", "city", "country",
	"email", "phone", "tax_id", "notes", "created_at", "updated_at",
}

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Company      *string   `db:"company"`
	Street       string    `db:"street"`
	Zip          string    `db:"zip"`
	City         string    `db:"city"`
	Country      string    `db:"country"`
	Email        *string   `db:"email"`
	Phone        *string   `db:"phone"`
	TaxID        *string   `db:"tax_id"`
	Notes        *string   `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	InvoiceCount int       `db:"invoice_count"`
}

func (r row) toDomain() domain.Customer {
	return domain.Customer{
		ID:           r.ID,
		Name:         r.Name,
		Company:      r.Company,
		Street:       r.Street,
		Zip:          r.Zip,
		City:         r.City,
		Country:      r.Country,
		Email:        r.Email,
		Phone:        r.Phone,
		TaxID:        r.TaxID,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		InvoiceCount: r.InvoiceCount,
	}
}

func selectCustomers() sq.SelectBuilder {
	cols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		cols = append(cols, "c."+c)
	}
	cols = append(cols, "(SELECT COUNT(*) FROM invoices i WHERE i.customer_id = c.id) AS invoice_count")
	return postgres.Builder().Select(cols...).From(table + " c")
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ") + ", 0 AS invoice_count"
}

// Create inserts a customer.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	b := postgres.Builder().
		Insert(table).
		Columns("id", "name", "company", "street", "zip", "city", "country", "email", "phone", "tax_id", "notes").
		Values(id, c.Name, c.Company, c.Street, c.Zip, c.City, c.Country, c.Email, c.Phone, c.TaxID, c.Notes).
		Suffix(returning())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	res := out.toDomain()
	return &res, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	set := map[string]any{"updated_at": sq.Expr("now()")}
	setStr := func(col string, v *string, nullable bool) {
		if v == nil {
			return
		}
		if nullable && *v == "" {
			set[col] = nil
			return
		}
		set[col] = *v
	}
	setStr("name", params.Name, false)
	setStr("company", params.Company, true)
	setStr("street", params.Street, false)
	setStr("zip", params.Zip, false)
	setStr("city", params.City, false)
	setStr("country", params.Country, false)
	setStr("email", params.Email, true)
	setStr("phone", params.Phone, true)
	setStr("tax_id", params.TaxID, true)
	setStr("notes", params.Notes, true)

	b := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	res := out.toDomain()
	return &res, nil
}

// Delete removes a customer. The invoices FK is RESTRICT, so a customer with
// invoices fails with a foreign key violation; services check first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapDeleteError(err, "customer", id, "customer has invoices and cannot be deleted")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns a customer with its invoice count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := postgres.Get(ctx, q, &out, selectCustomers().Where(sq.Eq{"c.id": id})); err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	res := out.toDomain()
	return &res, nil
}

// GetByIDs returns the customers that exist among ids.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Customer, error) {
	if len(ids) == 0 {
		return []domain.Customer{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := postgres.Select(ctx, q, &rows, selectCustomers().Where(sq.Eq{"c.id": ids})); err != nil {
		return nil, fmt.Errorf("customers by ids: %w", err)
	}
	out := make([]domain.Customer, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// Exists reports whether a customer with id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "customer", id)
	}
	return exists, nil
}

// List returns customers ordered by name. search matches name, company, email and city.
func (r *Repo) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := selectCustomers().OrderBy("c.name ASC", "c.id ASC")
	if search != "" {
		like := postgres.Like(search)
		b = b.Where(sq.Or{
			sq.ILike{"c.name": like},
			sq.ILike{"c.company": like},
			sq.ILike{"c.email": like},
			sq.ILike{"c.city": like},
		})
	}
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	b = b.Limit(uint64(limit))
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]domain.Customer, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}
