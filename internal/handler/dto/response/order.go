package response

import (
	"artshop/internal/domain/order"

	"github.com/google/uuid"
)

type CreateOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

// InsufficientStockDetail is the payload of a 409 on order placement: the first
// line that could not be covered, with the quantity actually available.
type InsufficientStockDetail struct {
	ArtworkID uuid.UUID `json:"artwork_id"`
	Available int       `json:"available"`
	Requested int       `json:"requested"`
}

func FromInsufficientStock(err *order.InsufficientStockError) InsufficientStockDetail {
	return InsufficientStockDetail{
		ArtworkID: err.ArtworkID,
		Available: err.Available,
		Requested: err.Requested,
	}
}
