package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"artshop/internal/domain/order"
	"artshop/internal/infra"
	"artshop/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository is the transactional core of order placement. A single
// transaction covers the whole request: every stock row is locked exclusively
// in ascending artwork-id order, re-read under the lock, and either all lines
// commit or none do.
type OrderRepository struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

func NewOrderRepository(pool *pgxpool.Pool, cfg config.Config) *OrderRepository {
	return &OrderRepository{
		pool:        pool,
		lockTimeout: cfg.DB.LockTimeout,
	}
}

func (r *OrderRepository) PlaceOrder(ctx context.Context, req *order.Request) (uuid.UUID, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin order transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback order transaction", "error", rollbackErr.Error())
			}
		}
	}()

	// Bound lock waits so a slow holder of a contended stock row cannot
	// starve this request indefinitely; 55P03 surfaces as KindLockTimeout.
	lockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, lockTimeout); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to set lock timeout", err)
	}

	// Lines arrive sorted by artwork id, so concurrent multi-item orders
	// always acquire row locks in the same sequence and cannot deadlock.
	for _, line := range req.Lines() {
		var available int
		err := tx.QueryRow(ctx,
			`SELECT quantity FROM inventory WHERE artwork_id = $1 FOR UPDATE`,
			line.ArtworkID()).Scan(&available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return uuid.Nil, infra.WrapRepoErr("artwork has no stock record", err, infra.KindNotFound)
			}
			return uuid.Nil, infra.WrapRepoErr("failed to lock stock record", err)
		}

		if available < line.Quantity() {
			return uuid.Nil, &order.InsufficientStockError{
				ArtworkID: line.ArtworkID(),
				Available: available,
				Requested: line.Quantity(),
			}
		}
	}

	var orderID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (id, user_id, status, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		req.ID(), req.UserID(), order.StatusPending.String(), req.CreatedAt()).Scan(&orderID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for _, line := range req.Lines() {
		// The unit price is captured from the catalog inside the same
		// transaction, decoupling this order from future price changes.
		tag, err := tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, artwork_id, quantity, unit_price)
			 SELECT $1, $2, $3, $4, price FROM artworks WHERE id = $3`,
			uuid.New(), orderID, line.ArtworkID(), line.Quantity())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order line", err)
		}
		if tag.RowsAffected() == 0 {
			return uuid.Nil, infra.WrapRepoErr("artwork disappeared during order", pgx.ErrNoRows, infra.KindNotFound)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE inventory SET quantity = quantity - $1 WHERE artwork_id = $2`,
			line.Quantity(), line.ArtworkID()); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to decrement stock", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit order transaction", err)
	}

	return orderID, nil
}
