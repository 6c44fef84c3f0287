// Package dataloader batches per-request lookups made while rendering list
// responses, so an invoice list costs one customer query instead of one per row.
package dataloader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type customerRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Customer, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	Customer customerRepo
}

// Loaders is one request's set of loaders. Results are cached for the
// lifetime of the request only.
type Loaders struct {
	CustomerByID *dataloader.Loader[uuid.UUID, *domain.Customer]
}

// NewLoaders creates a fresh set of loaders.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		CustomerByID: newLoader(customersBatch(repos.Customer)),
	}
}

func newLoader[V any](fn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		fn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func customersBatch(repo customerRepo) dataloader.BatchFunc[uuid.UUID, *domain.Customer] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Customer] {
		list, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Customer](len(keys), err)
		}
		byID := make(map[uuid.UUID]*domain.Customer, len(list))
		for i := range list {
			byID[list[i].ID] = &list[i]
		}
		return singleResults(keys, byID, "customer")
	}
}

func singleResults[V any](keys []uuid.UUID, byID map[uuid.UUID]*V, entity string) []*dataloader.Result[*V] {
	results := make([]*dataloader.Result[*V], len(keys))
	for i, k := range keys {
		if v, ok := byID[k]; ok {
			results[i] = &dataloader.Result[*V]{Data: v}
		} else {
			results[i] = &dataloader.Result[*V]{Error: fmt.Errorf("%s %s: %w", entity, k, domain.ErrNotFound)}
		}
	}
	return results
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	err = fmt.Errorf("batch load: %w", err)
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

type contextKey struct{}

// WithLoaders stores loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request's loaders, or nil outside Middleware.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}

// Middleware installs a fresh set of loaders on every request.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(repos))))
		})
	}
}
