package types

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AuthorizationStatus mirrors the platform location-permission states the
// client can report. The core only needs it to decide whether a "latest
// known location" can ever arrive.
type AuthorizationStatus string

const (
	AuthorizationUndetermined AuthorizationStatus = "undetermined"
	AuthorizationDenied       AuthorizationStatus = "denied"
	AuthorizationRestricted   AuthorizationStatus = "restricted"
	AuthorizationOnce         AuthorizationStatus = "authorizedOnce"
	AuthorizationAlways       AuthorizationStatus = "authorizedAlways"
)

// Valid reports whether s is one of the known authorization states.
func (s AuthorizationStatus) Valid() bool {
	switch s {
	case AuthorizationUndetermined, AuthorizationDenied, AuthorizationRestricted,
		AuthorizationOnce, AuthorizationAlways:
		return true
	}
	return false
}

// LocationUpdate is the JSON body for reporting a device location.
type LocationUpdate struct {
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
	Status    *AuthorizationStatus `json:"status,omitempty"`
}
