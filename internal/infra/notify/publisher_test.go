//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	channel string
	payload []byte
}

type fakeCommands struct {
	published []published
	failWith  error
}

func (f *fakeCommands) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	if f.failWith != nil {
		return redis.NewIntResult(0, f.failWith)
	}
	f.published = append(f.published, published{channel: channel, payload: message.([]byte)})
	return redis.NewIntResult(1, nil)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a new_order event", func(t *testing.T) {
		fake := &fakeCommands{}
		p := newPublisherWithCommands(fake)

		orderID := uuid.New()
		userID := uuid.New()
		artworkID := uuid.New()
		p.Publish(ctx, TopicOrders, NewOrder(orderID, userID, []OrderEventItem{
			{ArtworkID: artworkID, Quantity: 2},
		}))

		require.Len(t, fake.published, 1)
		assert.Equal(t, "orders", fake.published[0].channel)

		var event NewOrderEvent
		require.NoError(t, json.Unmarshal(fake.published[0].payload, &event))
		assert.Equal(t, "new_order", event.Type)
		assert.Equal(t, orderID, event.OrderID)
		assert.Equal(t, userID, event.UserID)
		require.Len(t, event.Items, 1)
		assert.Equal(t, artworkID, event.Items[0].ArtworkID)
		assert.Equal(t, 2, event.Items[0].Quantity)
	})

	t.Run("publishes a new_review event", func(t *testing.T) {
		fake := &fakeCommands{}
		p := newPublisherWithCommands(fake)

		artworkID := uuid.New()
		p.Publish(ctx, TopicReviews, NewReview(artworkID, 4))

		require.Len(t, fake.published, 1)
		assert.Equal(t, "artwork_reviews", fake.published[0].channel)

		var event NewReviewEvent
		require.NoError(t, json.Unmarshal(fake.published[0].payload, &event))
		assert.Equal(t, "new_review", event.Type)
		assert.Equal(t, artworkID, event.ArtworkID)
		assert.Equal(t, 4, event.Rating)
	})

	t.Run("publishes a new_artwork event", func(t *testing.T) {
		fake := &fakeCommands{}
		p := newPublisherWithCommands(fake)

		artworkID := uuid.New()
		p.Publish(ctx, TopicArtworks, NewArtwork(artworkID, "Nocturne", decimal.NewFromInt(250)))

		require.Len(t, fake.published, 1)
		assert.Equal(t, "artworks", fake.published[0].channel)

		var event NewArtworkEvent
		require.NoError(t, json.Unmarshal(fake.published[0].payload, &event))
		assert.Equal(t, "new_artwork", event.Type)
		assert.Equal(t, "Nocturne", event.Title)
	})

	t.Run("broker failure is swallowed", func(t *testing.T) {
		fake := &fakeCommands{failWith: errors.New("connection refused")}
		p := newPublisherWithCommands(fake)

		// Must not panic or propagate; delivery is best-effort.
		p.Publish(ctx, TopicOrders, NewOrder(uuid.New(), uuid.New(), nil))
		assert.Empty(t, fake.published)
	})

	t.Run("unencodable event is swallowed", func(t *testing.T) {
		fake := &fakeCommands{}
		p := newPublisherWithCommands(fake)

		p.Publish(ctx, TopicOrders, map[string]any{"bad": func() {}})
		assert.Empty(t, fake.published)
	})
}
