package response

import "github.com/google/uuid"

type CreateReviewResponse struct {
	ID uuid.UUID `json:"id"`
}
