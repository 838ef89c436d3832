package response

import "github.com/google/uuid"

type CreateArtworkResponse struct {
	ID uuid.UUID `json:"id"`
}
