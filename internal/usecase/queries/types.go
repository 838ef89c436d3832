package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArtworkView is the catalog listing row, including live stock. It is the
// payload cached under the catalog-listing key.
type ArtworkView struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	ImageURL    *string         `json:"image_url,omitempty"`
}

// ReviewView is one review of an artwork, joined with the reviewer's username.
// Lists of these are cached per artwork.
type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	Status    string          `json:"status"`
	Username  string          `json:"username,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderLineView `json:"items"`
}

type OrderLineView struct {
	ArtworkID uuid.UUID       `json:"artwork_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// AuthorizedUserView is what auth endpoints and the session need to know about
// a user.
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
