//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"artshop/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the raw password every seeded user logs in with.
const DefaultPassword = "password123"

// ResetDB truncates all mutable tables. Categories are reference data seeded
// by the schema and survive resets.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		`TRUNCATE order_items, orders, reviews, inventory, artworks, users CASCADE`)
	return err
}

// SeedUser inserts a user with the default password and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool, username, email, role string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPassword(DefaultPassword)
	require.NoError(t, err)

	id := uuid.New()
	_, err = pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`,
		id, username, email, hash, role)
	require.NoError(t, err)
	return id
}

// SeedArtwork inserts an artwork into the named category with the given stock.
func SeedArtwork(t *testing.T, pool *pgxpool.Pool, title, price, category string, stock int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var categoryID uuid.UUID
	err := pool.QueryRow(ctx, `SELECT id FROM categories WHERE name = $1`, category).Scan(&categoryID)
	require.NoError(t, err, "category must exist in seed data")

	amount, err := decimal.NewFromString(price)
	require.NoError(t, err)

	id := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO artworks (id, title, description, price, category_id) VALUES ($1, $2, '', $3, $4)`,
		id, title, amount, categoryID)
	require.NoError(t, err)

	_, err = pool.Exec(ctx,
		`INSERT INTO inventory (artwork_id, quantity) VALUES ($1, $2)`, id, stock)
	require.NoError(t, err)
	return id
}

// StockOf reads the current stock quantity of an artwork.
func StockOf(t *testing.T, pool *pgxpool.Pool, artworkID uuid.UUID) int {
	t.Helper()

	var quantity int
	err := pool.QueryRow(context.Background(),
		`SELECT quantity FROM inventory WHERE artwork_id = $1`, artworkID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

// CountOrders returns the number of orders a user has placed.
func CountOrders(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE user_id = $1`, userID).Scan(&count)
	require.NoError(t, err)
	return count
}
