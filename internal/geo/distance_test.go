package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

var (
	library = types.Coordinates{Latitude: 32.98783650172627, Longitude: -96.7478852394324}
	jsom    = types.Coordinates{Latitude: 32.98519557093538, Longitude: -96.74690097620241}
)

func TestDistance_IdenticalPointsAreZero(t *testing.T) {
	assert.Zero(t, Distance(library, library))
	assert.Zero(t, Distance(types.Coordinates{}, types.Coordinates{}))
}

func TestDistance_Symmetry(t *testing.T) {
	assert.InDelta(t, Distance(library, jsom), Distance(jsom, library), 1e-9)
}

func TestDistance_KnownCampusWalk(t *testing.T) {
	// Library to JSOM is roughly 300m as the crow flies.
	d := Distance(library, jsom)
	assert.Greater(t, d, 250.0)
	assert.Less(t, d, 350.0)
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	a := types.Coordinates{Latitude: 0, Longitude: 0}
	b := types.Coordinates{Latitude: 1, Longitude: 0}
	// One degree of latitude is ~111.19 km on the sphere used here.
	assert.InDelta(t, 111195, Distance(a, b), 50)
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 3.28084, MetersToFeet(1), 1e-9)
	assert.InDelta(t, 328.084, MetersToFeet(100), 1e-6)
	assert.InDelta(t, 1.5, MetersToKilometers(1500), 1e-9)
}
