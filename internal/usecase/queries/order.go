package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
}

// Order history is not cached: it is per-user, cheap to read and must reflect
// a just-placed order immediately.
type OrderQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]*OrderView, error) {
	return q.store.ListAll(ctx)
}
