//go:build unit || e2e

package builder

import (
	"time"

	"artshop/internal/domain/order"

	"github.com/google/uuid"
)

type orderLine struct {
	artworkID uuid.UUID
	quantity  int
}

type OrderRequestBuilder struct {
	UserID uuid.UUID
	Lines  []orderLine
	Now    time.Time
}

// NewOrderRequestBuilder starts with a single one-unit line.
func NewOrderRequestBuilder() *OrderRequestBuilder {
	return &OrderRequestBuilder{
		UserID: uuid.New(),
		Lines:  []orderLine{{artworkID: uuid.New(), quantity: 1}},
		Now:    time.Now(),
	}
}

func (b *OrderRequestBuilder) With(mutate func(*OrderRequestBuilder)) *OrderRequestBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *OrderRequestBuilder) WithoutLines() *OrderRequestBuilder {
	b.Lines = nil
	return b
}

func (b *OrderRequestBuilder) WithLine(artworkID uuid.UUID, quantity int) *OrderRequestBuilder {
	b.Lines = append(b.Lines, orderLine{artworkID: artworkID, quantity: quantity})
	return b
}

func (b *OrderRequestBuilder) BuildDomain() (*order.Request, error) {
	lines := make([]order.Line, 0, len(b.Lines))
	for _, l := range b.Lines {
		line, err := order.NewLine(l.artworkID, l.quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return order.NewRequest(b.UserID, lines, b.Now)
}
