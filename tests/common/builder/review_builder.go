//go:build unit || e2e

package builder

import (
	"time"

	"artshop/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	ArtworkID uuid.UUID
	Rating    int
	Comment   string
	Now       time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.New(),
		ArtworkID: uuid.New(),
		Rating:    5,
		Comment:   "Stunning piece, even better in person.",
		Now:       time.Now(),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}

func (b *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(b.UserID, b.ArtworkID, b.Rating, b.Comment, b.Now)
}
