package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// commands is the slice of go-redis used by the publisher.
type commands interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// Publisher fans out lightweight events over Redis pub/sub. Delivery is
// best-effort: there is no acknowledgment channel, no retry, and a consumer
// that is not subscribed at publish time permanently misses the event.
type Publisher struct {
	client commands
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func newPublisherWithCommands(client commands) *Publisher {
	return &Publisher{client: client}
}

// Publish sends event to topic. Failures are logged and swallowed so publisher
// latency and errors never couple back into the triggering write path.
func (p *Publisher) Publish(ctx context.Context, topic string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("failed to encode notification event", "topic", topic, "error", err.Error())
		return
	}

	if err := p.client.Publish(ctx, topic, payload).Err(); err != nil {
		slog.Warn("failed to publish notification event", "topic", topic, "error", err.Error())
	}
}
