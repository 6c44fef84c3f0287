// Package movement implements the append-only stock movement log.
package movement

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const table = "stock_movements"

var columns = []string{"id", "product_id", "quantity", "reason", "reference", "created_at"}

// Repo provides stock movement persistence. There is no update or delete:
// movements disappear only together with their product.
type Repo struct {
	db postgres.Querier
}

// New creates a new movement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
	Reason    string    `db:"reason"`
	Reference *string   `db:"reference"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.StockMovement {
	return domain.StockMovement{
		ID:        r.ID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Reason:    domain.StockReason(r.Reason),
		Reference: r.Reference,
		CreatedAt: r.CreatedAt,
	}
}

// Append inserts one movement.
func (r *Repo) Append(ctx context.Context, adj domain.StockAdjustment) (*domain.StockMovement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	b := postgres.Builder().
		Insert(table).
		Columns("id", "product_id", "quantity", "reason", "reference").
		Values(id, adj.ProductID, adj.Quantity, string(adj.Reason), adj.Reference).
		Suffix("RETURNING id, product_id, quantity, reason, reference, created_at")

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "stock_movement", id)
	}
	m := out.toDomain()
	return &m, nil
}

// ListByProduct returns the newest movements of a product first.
func (r *Repo) ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]domain.StockMovement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"product_id": productID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]domain.StockMovement, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// ListByReference returns movements tagged with reference, oldest first.
func (r *Repo) ListByReference(ctx context.Context, reference string) ([]domain.StockMovement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"reference": reference}).
		OrderBy("created_at ASC", "id ASC")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("list movements by reference: %w", err)
	}
	out := make([]domain.StockMovement, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// SumByProduct returns the sum of all movement quantities of a product.
func (r *Repo) SumByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var sum int
	b := postgres.Builder().
		Select("COALESCE(SUM(quantity), 0)").
		From(table).
		Where(sq.Eq{"product_id": productID})
	if err := postgres.Scalar(ctx, q, &sum, b); err != nil {
		return 0, postgres.MapError(err, "stock_movement", productID)
	}
	return sum, nil
}
