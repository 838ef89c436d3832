//go:build unit

package order_test

import (
	"testing"
	"time"

	"artshop/internal/domain/order"
	"artshop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	artworkID := uuid.New()

	testCases := []struct {
		name     string
		quantity int
		errIs    error
	}{
		{name: "single unit", quantity: 1},
		{name: "many units", quantity: 100},
		{name: "zero quantity", quantity: 0, errIs: order.ErrInvalidQuantity},
		{name: "negative quantity", quantity: -3, errIs: order.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := order.NewLine(artworkID, tc.quantity)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, artworkID, line.ArtworkID())
			assert.Equal(t, tc.quantity, line.Quantity())
		})
	}
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		req, err := builder.NewOrderRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, req)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Len(t, req.Lines(), 1)
		assert.False(t, req.CreatedAt().IsZero())
	})

	t.Run("rejects empty line set", func(t *testing.T) {
		req, err := builder.NewOrderRequestBuilder().WithoutLines().BuildDomain()
		require.ErrorIs(t, err, order.ErrNoLines)
		assert.Nil(t, req)
	})

	t.Run("rejects duplicate artworks", func(t *testing.T) {
		artworkID := uuid.New()
		req, err := builder.NewOrderRequestBuilder().
			WithoutLines().
			WithLine(artworkID, 1).
			WithLine(artworkID, 2).
			BuildDomain()
		require.ErrorIs(t, err, order.ErrDuplicateArtwork)
		assert.Nil(t, req)
	})

	t.Run("sorts lines by artwork id", func(t *testing.T) {
		// Fixed IDs with a known ordering.
		low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		mid := uuid.MustParse("55555555-5555-5555-5555-555555555555")
		high := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

		req, err := builder.NewOrderRequestBuilder().
			WithoutLines().
			WithLine(high, 1).
			WithLine(low, 2).
			WithLine(mid, 3).
			BuildDomain()
		require.NoError(t, err)

		lines := req.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, low, lines[0].ArtworkID())
		assert.Equal(t, mid, lines[1].ArtworkID())
		assert.Equal(t, high, lines[2].ArtworkID())
	})

	t.Run("returned lines are a copy", func(t *testing.T) {
		req, err := builder.NewOrderRequestBuilder().BuildDomain()
		require.NoError(t, err)

		first := req.Lines()
		second := req.Lines()
		require.Len(t, first, 1)
		first[0] = order.Line{}
		assert.Equal(t, second[0], req.Lines()[0])
	})

	t.Run("request IDs are unique", func(t *testing.T) {
		now := time.Now()
		line, err := order.NewLine(uuid.New(), 1)
		require.NoError(t, err)

		req1, err1 := order.NewRequest(uuid.New(), []order.Line{line}, now)
		req2, err2 := order.NewRequest(uuid.New(), []order.Line{line}, now)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, req1.ID(), req2.ID())
	})
}

func TestInsufficientStockError(t *testing.T) {
	artworkID := uuid.New()
	err := &order.InsufficientStockError{
		ArtworkID: artworkID,
		Available: 1,
		Requested: 3,
	}

	assert.Contains(t, err.Error(), artworkID.String())
	assert.Contains(t, err.Error(), "available 1")
	assert.Contains(t, err.Error(), "requested 3")
}
