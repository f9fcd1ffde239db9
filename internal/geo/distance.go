// Package geo provides great-circle distance between coordinate pairs and
// the unit conversions used by presentation layers.
package geo

import (
	"math"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

const (
	earthRadiusMeters = 6371000.0
	feetPerMeter      = 3.28084
)

// Distance returns the haversine distance between a and b in meters.
// Symmetric, and zero for identical coordinates.
func Distance(a, b types.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// MetersToFeet converts meters to feet using the display constant the
// clients expect.
func MetersToFeet(m float64) float64 {
	return m * feetPerMeter
}

// MetersToKilometers converts meters to kilometers.
func MetersToKilometers(m float64) float64 {
	return m / 1000
}
