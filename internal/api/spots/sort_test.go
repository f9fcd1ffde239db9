package spots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

func TestSortByDistance(t *testing.T) {
	from := &types.Coordinates{Latitude: 32.9886, Longitude: -96.7503}
	spots := []types.StudySpot{
		{Name: "Far", Latitude: 33.10, Longitude: -96.80},
		{Name: "Near", Latitude: 32.9887, Longitude: -96.7504},
		{Name: "Middle", Latitude: 32.995, Longitude: -96.755},
	}

	SortByDistance(spots, from)
	assert.Equal(t, []string{"Near", "Middle", "Far"}, names(spots))
}

func TestSortByDistance_NoLocationFallsBackToName(t *testing.T) {
	spots := []types.StudySpot{
		{Name: "apple desk"},
		{Name: "Zebra room"},
		{Name: "Annex"},
	}

	SortByDistance(spots, nil)
	// Byte-wise order: uppercase sorts before lowercase.
	assert.Equal(t, []string{"Annex", "Zebra room", "apple desk"}, names(spots))
}

func TestSortByOpenNow_StablePartition(t *testing.T) {
	open := map[string]string{"Monday": "12:00 AM - 11:59 PM"}
	closed := map[string]string{"Monday": "Closed"}
	spots := []types.StudySpot{
		{Name: "ClosedA", OpeningHours: closed},
		{Name: "OpenA", OpeningHours: open},
		{Name: "ClosedB", OpeningHours: closed},
		{Name: "OpenB", OpeningHours: open},
	}

	// Monday noon UTC.
	now := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	SortByOpenNow(spots, now, time.UTC)
	assert.Equal(t, []string{"OpenA", "OpenB", "ClosedA", "ClosedB"}, names(spots))
}
