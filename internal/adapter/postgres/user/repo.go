// Package user implements back-office user persistence using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByEmail looks a user up case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"lower(email)": strings.ToLower(email)})

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return out.toDomain(), nil
}

// GetByID returns a user or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := postgres.Get(ctx, q, &out, postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}

// Upsert creates the user or, if the email is taken, replaces name, hash and role.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	b := postgres.Builder().
		Insert(table).
		Columns("id", "email", "name", "password_hash", "role").
		Values(id, u.Email, u.Name, u.PasswordHash, string(u.Role)).
		Suffix("ON CONFLICT (lower(email)) DO UPDATE SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, " +
			"role = EXCLUDED.role, updated_at = now() RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return out.toDomain(), nil
}
