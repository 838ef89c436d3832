package order

import (
	"fmt"
	"sort"
	"time"

	"artshop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoLines          = errs.New("order must contain at least one line")
	ErrInvalidQuantity  = errs.New("quantity must be a positive integer")
	ErrDuplicateArtwork = errs.New("order contains the same artwork twice")
)

// Line is one requested position of an order. The unit price is captured by the
// inventory engine inside the placement transaction, not here.
type Line struct {
	artworkID uuid.UUID
	quantity  int
}

func NewLine(artworkID uuid.UUID, quantity int) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{artworkID: artworkID, quantity: quantity}, nil
}

func (l Line) ArtworkID() uuid.UUID { return l.artworkID }
func (l Line) Quantity() int        { return l.quantity }

// Request is a validated purchase of N units of M distinct artworks. Lines are
// held in ascending artwork-id order so stock rows are always locked in the
// same sequence regardless of the order the client submitted them in.
type Request struct {
	id        uuid.UUID
	userID    uuid.UUID
	lines     []Line
	createdAt time.Time
}

func NewRequest(userID uuid.UUID, lines []Line, now time.Time) (*Request, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].artworkID.String() < sorted[j].artworkID.String()
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].artworkID == sorted[i-1].artworkID {
			return nil, ErrDuplicateArtwork
		}
	}

	return &Request{
		id:        uuid.New(),
		userID:    userID,
		lines:     sorted,
		createdAt: now,
	}, nil
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) UserID() uuid.UUID    { return r.userID }
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// Lines returns the lines in lock order (ascending artwork id).
func (r *Request) Lines() []Line {
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// InsufficientStockError reports the first line whose stock record could not
// cover the requested quantity. The whole order is rolled back when it occurs.
type InsufficientStockError struct {
	ArtworkID uuid.UUID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for artwork %s: available %d, requested %d",
		e.ArtworkID, e.Available, e.Requested)
}
