package types

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user review of a study spot. Reviews are append-only: sample
// reviews arrive with the catalog, new ones are added in memory via the
// reviews service, none are ever edited or deleted.
type Review struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spot_id"`
	Rating    int       `json:"rating"` // 1-5 stars
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	UserName  string    `json:"user_name"`
	// UserID is set only for authenticated submissions.
	UserID *string `json:"user_id,omitempty"`
}

// AddReviewRequest is the JSON body for submitting a review.
type AddReviewRequest struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	UserName string `json:"user_name,omitempty"`
}

// RatingSummary reports both the stored catalog average (never recomputed)
// and the live mean over the current review collection, so callers can see
// the drift between the two.
type RatingSummary struct {
	SpotID        uuid.UUID `json:"spot_id"`
	StoredAverage float64   `json:"stored_average"`
	LiveAverage   float64   `json:"live_average"`
	ReviewCount   int       `json:"review_count"`
}
