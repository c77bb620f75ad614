// Package dataloader provides per-request DataLoaders that batch the
// Link.users lookups of one GraphQL request into a single SQL call.
// Loaders call the link repository directly, bypassing the service layer.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type linkUserRepo interface {
	GetUsersByLinkIDs(ctx context.Context, linkIDs []string) ([]domain.LinkUser, error)
}

// Repos holds the repositories required by DataLoaders.
type Repos struct {
	LinkUsers linkUserRepo
}

// Loaders holds the per-request DataLoader instances. Created per request via NewLoaders.
type Loaders struct {
	UsersByLinkID *dataloader.Loader[string, []domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Loaders cache results, so a set must not outlive its request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UsersByLinkID: newLoader(newUsersBatchFn(repos.LinkUsers)),
	}
}

// Middleware gives every request its own Loaders, so batching and caching
// never cross request boundaries.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(repos))))
		})
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

func newUsersBatchFn(repo linkUserRepo) dataloader.BatchFunc[string, []domain.User] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]domain.User] {
		rows, err := repo.GetUsersByLinkIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.User](len(keys), err)
		}

		grouped := make(map[string][]domain.User, len(keys))
		for _, row := range rows {
			grouped[row.LinkID] = append(grouped[row.LinkID], row.User)
		}

		return mapResults(keys, grouped, emptySlice[domain.User])
	}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[K comparable, V any](keys []K, grouped map[K]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
