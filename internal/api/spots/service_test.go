package spots

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-campus-study-spots/app/observability/metrics"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

func init() {
	metrics.InitAppMetrics()
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeCatalog struct {
	buildings []types.Building
	spots     []types.StudySpot
	spotCalls int
}

func (f *fakeCatalog) Buildings(ctx context.Context) ([]types.Building, error) {
	return f.buildings, nil
}

func (f *fakeCatalog) Spots(ctx context.Context) ([]types.StudySpot, error) {
	f.spotCalls++
	return f.spots, nil
}

func (f *fakeCatalog) SpotByID(ctx context.Context, id uuid.UUID) (*types.StudySpot, error) {
	for _, sp := range f.spots {
		if sp.ID == id {
			out := sp
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) BuildingByID(ctx context.Context, id uuid.UUID) (*types.Building, error) {
	for _, b := range f.buildings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

type fakeFavorites struct {
	ids []uuid.UUID
}

func (f *fakeFavorites) List(ctx context.Context) ([]uuid.UUID, error) {
	return f.ids, nil
}

type fakeLocation struct {
	coords *types.Coordinates
}

func (f *fakeLocation) Latest() (types.Coordinates, bool) {
	if f.coords == nil {
		return types.Coordinates{}, false
	}
	return *f.coords, true
}

func newTestService(cat *fakeCatalog, fav *fakeFavorites, loc *fakeLocation) *ServiceImpl {
	svc := NewService(cat, fav, loc, time.UTC, 5*time.Minute, testLogger())
	// Monday noon UTC, inside every "business hours" fixture.
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func serviceFixtures() (*fakeCatalog, []types.StudySpot) {
	spots := testSpots()
	spots[0].OpeningHours = map[string]string{"Monday": "9:00 AM - 5:00 PM"}
	spots[1].OpeningHours = map[string]string{"Monday": "Closed"}
	cat := &fakeCatalog{
		buildings: []types.Building{
			{ID: libraryID, Name: "McDermott Library", Code: "MC"},
			{ID: jsomID, Name: "Jindal School of Management", Code: "JSOM"},
		},
		spots: spots,
	}
	return cat, spots
}

func TestServiceImpl_SearchAnnotates(t *testing.T) {
	ctx := context.Background()
	cat, spots := serviceFixtures()
	fav := &fakeFavorites{ids: []uuid.UUID{spots[1].ID}}
	loc := &fakeLocation{coords: &types.Coordinates{Latitude: 32.9886, Longitude: -96.7503}}

	svc := newTestService(cat, fav, loc)
	views, err := svc.Search(ctx, types.SearchFilterState{}, types.SortModeNone)
	require.NoError(t, err)
	require.Len(t, views, 3)

	t.Run("building fields resolved", func(t *testing.T) {
		assert.Equal(t, "McDermott Library", views[0].BuildingName)
		assert.Equal(t, "MC", views[0].BuildingCode)
	})

	t.Run("dangling building leaves fields empty", func(t *testing.T) {
		assert.Equal(t, "Orphan Nook", views[2].Name)
		assert.Empty(t, views[2].BuildingName)
		assert.Empty(t, views[2].BuildingCode)
	})

	t.Run("open state follows opening hours", func(t *testing.T) {
		assert.True(t, views[0].IsOpen)
		assert.False(t, views[1].IsOpen)
		// No hours at all fails closed.
		assert.False(t, views[2].IsOpen)
	})

	t.Run("favorite badge attached", func(t *testing.T) {
		assert.False(t, views[0].IsFavorite)
		assert.True(t, views[1].IsFavorite)
	})

	t.Run("distance attached when location known", func(t *testing.T) {
		require.NotNil(t, views[0].DistanceMeters)
		require.NotNil(t, views[0].DistanceFeet)
		assert.InDelta(t, *views[0].DistanceMeters*3.28084, *views[0].DistanceFeet, 1e-6)
	})
}

func TestServiceImpl_SearchNoLocationOmitsDistance(t *testing.T) {
	ctx := context.Background()
	cat, _ := serviceFixtures()
	svc := newTestService(cat, &fakeFavorites{}, &fakeLocation{})

	views, err := svc.Search(ctx, types.SearchFilterState{}, types.SortModeNone)
	require.NoError(t, err)
	for _, v := range views {
		assert.Nil(t, v.DistanceMeters)
		assert.Nil(t, v.DistanceFeet)
	}
}

func TestServiceImpl_SearchCachesFilterResults(t *testing.T) {
	ctx := context.Background()
	cat, _ := serviceFixtures()
	svc := newTestService(cat, &fakeFavorites{}, &fakeLocation{})

	q := types.SearchFilterState{SearchText: "Quiet"}
	_, err := svc.Search(ctx, q, types.SortModeNone)
	require.NoError(t, err)
	calls := cat.spotCalls

	// Same query normalized differently still hits the cache.
	_, err = svc.Search(ctx, types.SearchFilterState{SearchText: "qUIET"}, types.SortModeNone)
	require.NoError(t, err)
	assert.Equal(t, calls, cat.spotCalls)
}

func TestServiceImpl_SearchSortModes(t *testing.T) {
	ctx := context.Background()
	cat, _ := serviceFixtures()
	loc := &fakeLocation{coords: &types.Coordinates{Latitude: 32.9886, Longitude: -96.7503}}
	svc := newTestService(cat, &fakeFavorites{}, loc)

	t.Run("open now floats open spots", func(t *testing.T) {
		views, err := svc.Search(ctx, types.SearchFilterState{}, types.SortModeOpenNow)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "Quiet Corner", views[0].Name)
	})

	t.Run("name sort", func(t *testing.T) {
		views, err := svc.Search(ctx, types.SearchFilterState{}, types.SortModeName)
		require.NoError(t, err)
		assert.Equal(t, "Loud Lounge", views[0].Name)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		_, err := svc.Search(ctx, types.SearchFilterState{}, types.SortMode("bogus"))
		require.Error(t, err)
	})
}

func TestServiceImpl_SpotDetail(t *testing.T) {
	ctx := context.Background()
	cat, spots := serviceFixtures()
	svc := newTestService(cat, &fakeFavorites{ids: []uuid.UUID{spots[0].ID}}, &fakeLocation{})

	view, err := svc.SpotDetail(ctx, spots[0].ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Quiet Corner", view.Name)
	assert.True(t, view.IsFavorite)
	assert.True(t, view.IsOpen)

	missing, err := svc.SpotDetail(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
