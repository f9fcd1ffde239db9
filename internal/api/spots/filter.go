package spots

import (
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

// Filter applies the three query stages conjunctively and preserves the
// input order. It never mutates its inputs.
//
// The text stage matches case-insensitively against the spot name,
// description, feature tags, and the resolved building's name and code. A
// spot whose building is missing from the map is still matchable through its
// own fields.
func Filter(spots []types.StudySpot, buildings map[uuid.UUID]types.Building, q types.SearchFilterState) []types.StudySpot {
	if q.IsEmpty() {
		out := make([]types.StudySpot, len(spots))
		copy(out, spots)
		return out
	}

	needle := strings.ToLower(strings.TrimSpace(q.SearchText))
	out := make([]types.StudySpot, 0, len(spots))
	for _, sp := range spots {
		if q.SelectedBuildingID != nil && sp.BuildingID != *q.SelectedBuildingID {
			continue
		}
		if !hasAllFeatures(sp, q.SelectedFeatures) {
			continue
		}
		if needle != "" && !matchesText(sp, buildings, needle) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

func hasAllFeatures(sp types.StudySpot, features []string) bool {
	for _, f := range features {
		if !sp.HasFeature(f) {
			return false
		}
	}
	return true
}

func matchesText(sp types.StudySpot, buildings map[uuid.UUID]types.Building, needle string) bool {
	if strings.Contains(strings.ToLower(sp.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(sp.Description), needle) {
		return true
	}
	for _, f := range sp.Features {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	if b, ok := buildings[sp.BuildingID]; ok {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(b.Code), needle) {
			return true
		}
	}
	return false
}
