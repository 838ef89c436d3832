package request

import (
	"artshop/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ArtworkID uuid.UUID `json:"artwork_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

func (r CreateOrderRequest) ToCommand() []commands.PlaceOrderItem {
	items := make([]commands.PlaceOrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.PlaceOrderItem{
			ArtworkID: item.ArtworkID,
			Quantity:  item.Quantity,
		}
	}
	return items
}
