package readstore

import (
	"context"

	"artshop/internal/infra"
	"artshop/internal/infra/db"
	"artshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const listOrdersByUserSQL = `
SELECT o.id, o.status, o.created_at, u.username, oi.artwork_id, a.title, oi.quantity, oi.unit_price
FROM orders o
JOIN users u ON u.id = o.user_id
JOIN order_items oi ON oi.order_id = o.id
JOIN artworks a ON a.id = oi.artwork_id
WHERE o.user_id = $1
ORDER BY o.created_at DESC, o.id, oi.id`

const listAllOrdersSQL = `
SELECT o.id, o.status, o.created_at, u.username, oi.artwork_id, a.title, oi.quantity, oi.unit_price
FROM orders o
JOIN users u ON u.id = o.user_id
JOIN order_items oi ON oi.order_id = o.id
JOIN artworks a ON a.id = oi.artwork_id
ORDER BY o.created_at DESC, o.id, oi.id`

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, listOrdersByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *OrderReadStore) ListAll(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, listAllOrdersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list all orders", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// collectOrders groups the joined line rows back into one view per order.
// Rows arrive sorted by order, so grouping is a single pass.
func collectOrders(rows pgx.Rows) ([]*queries.OrderView, error) {
	var (
		orders  []*queries.OrderView
		current *queries.OrderView
	)

	for rows.Next() {
		var (
			view queries.OrderView
			line queries.OrderLineView
		)
		if err := rows.Scan(&view.ID, &view.Status, &view.CreatedAt, &view.Username,
			&line.ArtworkID, &line.Title, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}

		if current == nil || current.ID != view.ID {
			view.Items = []queries.OrderLineView{line}
			orders = append(orders, &view)
			current = orders[len(orders)-1]
			continue
		}
		current.Items = append(current.Items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return orders, nil
}
