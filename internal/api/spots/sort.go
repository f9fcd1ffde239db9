package spots

import (
	"sort"
	"time"

	"github.com/FACorreiaa/go-campus-study-spots/internal/geo"
	"github.com/FACorreiaa/go-campus-study-spots/internal/hours"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

// SortByDistance orders spots nearest-first from the given location. With no
// location it falls back to byte-wise alphabetical order on the spot name,
// so "Zebra" sorts before "apple".
func SortByDistance(spots []types.StudySpot, from *types.Coordinates) {
	if from == nil {
		SortByName(spots)
		return
	}
	sort.SliceStable(spots, func(i, j int) bool {
		di := geo.Distance(*from, spots[i].Coordinates())
		dj := geo.Distance(*from, spots[j].Coordinates())
		return di < dj
	})
}

// SortByName orders spots byte-wise alphabetically by name.
func SortByName(spots []types.StudySpot) {
	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].Name < spots[j].Name
	})
}

// SortByOpenNow is a stable partition: open spots first, each side keeping
// its relative order.
func SortByOpenNow(spots []types.StudySpot, now time.Time, loc *time.Location) {
	sort.SliceStable(spots, func(i, j int) bool {
		oi := hours.IsOpenAt(spots[i].OpeningHours, now, loc)
		oj := hours.IsOpenAt(spots[j].OpeningHours, now, loc)
		return oi && !oj
	})
}
