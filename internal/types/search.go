package types

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SearchFilterState is the user's current query/filter selection. All three
// fields are conjunctive; zero values mean "stage skipped".
type SearchFilterState struct {
	SearchText         string     `json:"search_text"`
	SelectedBuildingID *uuid.UUID `json:"selected_building_id,omitempty"`
	SelectedFeatures   []string   `json:"selected_features,omitempty"`
}

// IsEmpty reports whether no filter stage is active, in which case filtering
// must reproduce the input collection exactly.
func (q SearchFilterState) IsEmpty() bool {
	return q.SearchText == "" && q.SelectedBuildingID == nil && len(q.SelectedFeatures) == 0
}

// CacheKey returns a normalized representation of the query, stable across
// feature ordering and search-text casing.
func (q SearchFilterState) CacheKey() string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(strings.ToLower(q.SearchText))
	b.WriteString("|b=")
	if q.SelectedBuildingID != nil {
		b.WriteString(q.SelectedBuildingID.String())
	}
	b.WriteString("|f=")
	features := append([]string(nil), q.SelectedFeatures...)
	sort.Strings(features)
	b.WriteString(strings.Join(features, ","))
	return b.String()
}

// SortMode selects one of the three mutually exclusive presentation orders.
type SortMode string

const (
	SortModeNone     SortMode = ""
	SortModeDistance SortMode = "distance"
	SortModeName     SortMode = "name"
	SortModeOpenNow  SortMode = "open"
)

// MarkerKind tags a MapMarker as a building or a spot pin.
type MarkerKind string

const (
	MarkerKindBuilding MarkerKind = "building"
	MarkerKindSpot     MarkerKind = "spot"
)

// MapMarker is the plain tagged union handed to whatever map rendering layer
// the client uses.
type MapMarker struct {
	Kind        MarkerKind  `json:"kind"`
	ID          uuid.UUID   `json:"id"`
	Coordinates Coordinates `json:"coordinates"`
	Label       string      `json:"label"`
}
