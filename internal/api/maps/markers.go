package maps

import (
	"fmt"
	"net/url"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

// BuildMarkers flattens buildings and spots into one marker list, buildings
// first, each side in input order.
func BuildMarkers(buildings []types.Building, spots []types.StudySpot) []types.MapMarker {
	markers := make([]types.MapMarker, 0, len(buildings)+len(spots))
	for _, b := range buildings {
		markers = append(markers, types.MapMarker{
			Kind:        types.MarkerKindBuilding,
			ID:          b.ID,
			Coordinates: types.Coordinates{Latitude: b.Latitude, Longitude: b.Longitude},
			Label:       b.Name,
		})
	}
	for _, sp := range spots {
		markers = append(markers, types.MapMarker{
			Kind:        types.MarkerKindSpot,
			ID:          sp.ID,
			Coordinates: sp.Coordinates(),
			Label:       sp.Name,
		})
	}
	return markers
}

// DirectionsURL builds an Apple Maps walking-directions link to the given
// destination.
func DirectionsURL(dest types.Coordinates, label string) string {
	q := url.Values{}
	q.Set("daddr", fmt.Sprintf("%f,%f", dest.Latitude, dest.Longitude))
	if label != "" {
		q.Set("q", label)
	}
	q.Set("dirflg", "w")
	return "http://maps.apple.com/?" + q.Encode()
}
