// Package loader batches and caches reference resolution.
//
// Feed and comment listings expand owner, category and comment references
// for many entities at once; the loaders coalesce those lookups into
// single batch reads per request. A Loaders value is request-scoped:
// create one per request (or per unit of work), never share across
// requests, or cached entities leak between actors.
package loader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/socialblog/backend/internal/domain"
)

// batchReader is the repository surface the loaders need.
type batchReader[T any] interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error)
}

// UserReader loads users in batch.
type UserReader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

// CategoryReader loads categories in batch.
type CategoryReader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error)
}

// CommentReader loads comments in batch.
type CommentReader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Comment, error)
}

// Loaders bundles the per-request dataloaders.
type Loaders struct {
	Users      *dataloader.Loader[uuid.UUID, *domain.User]
	Categories *dataloader.Loader[uuid.UUID, *domain.Category]
	Comments   *dataloader.Loader[uuid.UUID, *domain.Comment]
}

// New creates request-scoped loaders over the given repositories.
func New(users UserReader, categories CategoryReader, comments CommentReader) *Loaders {
	return &Loaders{
		Users:      dataloader.NewBatchedLoader(batchFn(users, func(u *domain.User) uuid.UUID { return u.ID })),
		Categories: dataloader.NewBatchedLoader(batchFn(categories, func(c *domain.Category) uuid.UUID { return c.ID })),
		Comments:   dataloader.NewBatchedLoader(batchFn(comments, func(c *domain.Comment) uuid.UUID { return c.ID })),
	}
}

// batchFn adapts a batch reader into a dataloader batch function.
// Unresolvable ids yield nil results, not errors: dangling references
// are an expected state of the content graph.
func batchFn[T any](reader batchReader[T], keyOf func(T) uuid.UUID) dataloader.BatchFunc[uuid.UUID, T] {
	return func(ctx context.Context, ids []uuid.UUID) []*dataloader.Result[T] {
		results := make([]*dataloader.Result[T], len(ids))

		entities, err := reader.GetByIDs(ctx, ids)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[T]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]T, len(entities))
		for _, e := range entities {
			byID[keyOf(e)] = e
		}
		for i, id := range ids {
			results[i] = &dataloader.Result[T]{Data: byID[id]}
		}
		return results
	}
}

// ResolveMany loads the entities for ids, dropping unresolvable ones.
// Order of surviving entities follows the id order.
func ResolveMany[T any](ctx context.Context, l *dataloader.Loader[uuid.UUID, T], ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}

	thunks := make([]func() (T, error), len(ids))
	for i, id := range ids {
		thunks[i] = l.Load(ctx, id)
	}

	out := make([]T, 0, len(ids))
	var zero T
	for _, thunk := range thunks {
		v, err := thunk()
		if err != nil {
			return nil, err
		}
		if any(v) == any(zero) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
