package types

import "github.com/google/uuid"

// Building is a campus building that contains study spots. Buildings are
// loaded once per session from the catalog and never mutated afterwards.
type Building struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Code    string    `json:"code"` // short label, e.g. "JSOM", "SLC"
	Address string    `json:"address"`
	// OpeningHours maps a full English weekday name ("Monday") to either a
	// free-text hours string ("7:00 AM - 12:00 AM") or the literal "Closed".
	// Not all seven days need be present.
	OpeningHours map[string]string `json:"opening_hours"`
	ImageNames   []string          `json:"image_names,omitempty"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
}

func (b Building) Coordinates() Coordinates {
	return Coordinates{Latitude: b.Latitude, Longitude: b.Longitude}
}
