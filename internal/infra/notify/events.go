package notify

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Topics match the channels external listeners subscribe to.
const (
	TopicArtworks = "artworks"
	TopicReviews  = "artwork_reviews"
	TopicOrders   = "orders"
)

type NewOrderEvent struct {
	Type    string           `json:"type"`
	OrderID uuid.UUID        `json:"order_id"`
	UserID  uuid.UUID        `json:"user_id"`
	Items   []OrderEventItem `json:"items"`
}

type OrderEventItem struct {
	ArtworkID uuid.UUID `json:"artwork_id"`
	Quantity  int       `json:"quantity"`
}

type NewReviewEvent struct {
	Type      string    `json:"type"`
	ArtworkID uuid.UUID `json:"artwork_id"`
	Rating    int       `json:"rating"`
}

type NewArtworkEvent struct {
	Type      string          `json:"type"`
	ArtworkID uuid.UUID       `json:"artwork_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
}

func NewOrder(orderID, userID uuid.UUID, items []OrderEventItem) NewOrderEvent {
	return NewOrderEvent{Type: "new_order", OrderID: orderID, UserID: userID, Items: items}
}

func NewReview(artworkID uuid.UUID, rating int) NewReviewEvent {
	return NewReviewEvent{Type: "new_review", ArtworkID: artworkID, Rating: rating}
}

func NewArtwork(artworkID uuid.UUID, title string, price decimal.Decimal) NewArtworkEvent {
	return NewArtworkEvent{Type: "new_artwork", ArtworkID: artworkID, Title: title, Price: price}
}
