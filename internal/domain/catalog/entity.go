package catalog

import (
	"time"

	"artshop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errs.New("title must not be empty")
	ErrTitleTooLong     = errs.New("title is too long")
	ErrNegativePrice    = errs.New("price must not be negative")
	ErrInvalidPrice     = errs.New("price is not a valid decimal")
	ErrNegativeStock    = errs.New("stock must not be negative")
	ErrUnknownCategory  = errs.New("unknown category")
	ErrArtworkNotOnSale = errs.New("artwork is not on sale")
)

// Artwork is a catalog item. Immutable except via explicit admin update; the
// stock quantity lives in its own inventory record, not here.
type Artwork struct {
	id          uuid.UUID
	title       Title
	description string
	price       Price
	categoryID  uuid.UUID
	imageURL    *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewArtwork(title Title, description string, price Price, categoryID uuid.UUID, imageURL *string, now time.Time) *Artwork {
	return &Artwork{
		id:          uuid.New(),
		title:       title,
		description: description,
		price:       price,
		categoryID:  categoryID,
		imageURL:    imageURL,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (a *Artwork) ID() uuid.UUID        { return a.id }
func (a *Artwork) Title() Title         { return a.title }
func (a *Artwork) Description() string  { return a.description }
func (a *Artwork) Price() Price         { return a.price }
func (a *Artwork) CategoryID() uuid.UUID { return a.categoryID }
func (a *Artwork) ImageURL() *string    { return a.imageURL }
func (a *Artwork) CreatedAt() time.Time { return a.createdAt }
func (a *Artwork) UpdatedAt() time.Time { return a.updatedAt }
