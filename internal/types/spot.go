package types

import "github.com/google/uuid"

// StudySpot is an addressable study location inside a building.
// Favorite status is intentionally NOT a field: it is derived state owned by
// the favorites store and attached at presentation time (see SpotView).
type StudySpot struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BuildingID  uuid.UUID `json:"building_id"`
	Floor       int       `json:"floor"`
	Description string    `json:"description"`
	// Features are free-text capability tags, e.g. "Quiet", "Group Study".
	Features []string `json:"features"`
	Capacity int      `json:"capacity"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// OpeningHours has the same shape as Building.OpeningHours.
	OpeningHours map[string]string `json:"opening_hours,omitempty"`
	// ReviewIDs is carried for historical reasons; reviews are looked up by
	// spot ID, not through this list.
	ReviewIDs []uuid.UUID `json:"review_ids,omitempty"`
	// AverageRating is static catalog data. It is NOT recomputed when new
	// reviews are submitted, so it can drift from the live review mean.
	AverageRating float64 `json:"average_rating"`
}

func (s StudySpot) Coordinates() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}

// HasFeature reports whether the spot carries the given feature tag.
// Duplicate tags within a spot are harmless.
func (s StudySpot) HasFeature(feature string) bool {
	for _, f := range s.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// SpotView is a StudySpot annotated for presentation: resolved building
// fields, distance from the user (when a location is known), open state and
// favorite badge. The underlying catalog entity stays untouched.
type SpotView struct {
	StudySpot
	BuildingName   string   `json:"building_name,omitempty"`
	BuildingCode   string   `json:"building_code,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DistanceFeet   *float64 `json:"distance_feet,omitempty"`
	IsOpen         bool     `json:"is_open"`
	IsFavorite     bool     `json:"is_favorite"`
}
