package commands

import (
	"context"
	"errors"
	"log/slog"

	"artshop/internal/domain/order"
	"artshop/internal/infra"
	"artshop/internal/infra/cache"
	"artshop/internal/infra/notify"
	"artshop/internal/pkg/clock"
	"artshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type PlaceOrderItem struct {
	ArtworkID uuid.UUID
	Quantity  int
}

type OrderCommands interface {
	Place(ctx context.Context, userID uuid.UUID, items []PlaceOrderItem) (uuid.UUID, error)
}

type orderCommandsImpl struct {
	engine    OrderEngine
	cache     CacheInvalidator
	publisher EventPublisher
	clock     clock.Clock
}

func NewOrderCommands(engine OrderEngine, cacheStore CacheInvalidator, publisher EventPublisher, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		engine:    engine,
		cache:     cacheStore,
		publisher: publisher,
		clock:     clk,
	}
}

// Place validates the requested lines, runs the placement transaction, and on
// success drops the catalog listing cache (stock changed) and emits a
// new_order event. Cache and notification failures never undo the order.
func (c *orderCommandsImpl) Place(ctx context.Context, userID uuid.UUID, items []PlaceOrderItem) (uuid.UUID, error) {
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		line, err := order.NewLine(item.ArtworkID, item.Quantity)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		lines = append(lines, line)
	}

	req, err := order.NewRequest(userID, lines, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	orderID, err := c.engine.PlaceOrder(ctx, req)
	if err != nil {
		var stockErr *order.InsufficientStockError
		if errors.As(err, &stockErr) {
			return uuid.Nil, err
		}
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return uuid.Nil, errs.Mark(err, errs.ErrArtworkNotFound)
		case infra.IsKind(err, infra.KindLockTimeout):
			return uuid.Nil, errs.Mark(err, errs.ErrBusy)
		default:
			return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	if err := c.cache.Invalidate(ctx, cache.KeyCatalogListing); err != nil {
		slog.Warn("failed to invalidate catalog listing after order",
			"order_id", orderID.String(), "error", err.Error())
	}

	eventItems := make([]notify.OrderEventItem, 0, len(lines))
	for _, line := range req.Lines() {
		eventItems = append(eventItems, notify.OrderEventItem{
			ArtworkID: line.ArtworkID(),
			Quantity:  line.Quantity(),
		})
	}
	c.publisher.Publish(ctx, notify.TopicOrders, notify.NewOrder(orderID, userID, eventItems))

	return orderID, nil
}
