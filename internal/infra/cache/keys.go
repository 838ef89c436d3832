package cache

import "github.com/google/uuid"

// Cache keys are derived deterministically from query shape so writers know
// exactly what to invalidate.
const KeyCatalogListing = "catalog:listing"

func KeyArtworkReviews(artworkID uuid.UUID) string {
	return "reviews:item:" + artworkID.String()
}
