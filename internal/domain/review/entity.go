package review

import (
	"time"

	"artshop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrEmptyComment   = errs.New("comment must not be empty")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	artworkID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewReview(userID, artworkID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		userID:    userID,
		artworkID: artworkID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) ArtworkID() uuid.UUID { return r.artworkID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
