// Package audit implements the append-only invoice audit trail using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const table = "invoice_audit_logs"

var columns = []string{"id", "invoice_id", "action", "field", "old_value", "new_value", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID       `db:"id"`
	InvoiceID uuid.UUID       `db:"invoice_id"`
	Action    string          `db:"action"`
	Field     *string         `db:"field"`
	OldValue  json.RawMessage `db:"old_value"`
	NewValue  json.RawMessage `db:"new_value"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r row) toDomain() domain.AuditEntry {
	return domain.AuditEntry{
		ID:        r.ID,
		InvoiceID: r.InvoiceID,
		Action:    domain.AuditAction(r.Action),
		Field:     r.Field,
		OldValue:  r.OldValue,
		NewValue:  r.NewValue,
		CreatedAt: r.CreatedAt,
	}
}

// Append inserts one audit entry. Call it inside the transaction that made the change.
func (r *Repo) Append(ctx context.Context, e domain.AuditEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if !e.Action.IsValid() {
		return fmt.Errorf("audit entry: unknown action %q: %w", e.Action, domain.ErrValidation)
	}
	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	b := postgres.Builder().
		Insert(table).
		Columns("id", "invoice_id", "action", "field", "old_value", "new_value").
		Values(id, e.InvoiceID, string(e.Action), e.Field, nullJSON(e.OldValue), nullJSON(e.NewValue))

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "invoice_audit_log", id)
	}
	return nil
}

// ListByInvoice returns the audit trail of an invoice, oldest first.
func (r *Repo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("created_at ASC", "id ASC")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	out := make([]domain.AuditEntry, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// nullJSON keeps absent snapshots as SQL NULL rather than JSON null.
func nullJSON(v json.RawMessage) any {
	if len(v) == 0 {
		return nil
	}
	return string(v)
}
