package catalog

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-campus-study-spots/app/observability/metrics"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

func init() {
	metrics.InitAppMetrics()
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FetchBuildings(ctx context.Context) ([]types.Building, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]types.Building)
	return bs, args.Error(1)
}

func (m *MockRepository) FetchSpots(ctx context.Context) ([]types.StudySpot, error) {
	args := m.Called(ctx)
	sp, _ := args.Get(0).([]types.StudySpot)
	return sp, args.Error(1)
}

func (m *MockRepository) FetchReviews(ctx context.Context) ([]types.Review, error) {
	args := m.Called(ctx)
	rv, _ := args.Get(0).([]types.Review)
	return rv, args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestServiceImpl_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes snapshot", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FetchBuildings", mock.Anything).Return(sampleBuildings, nil).Once()
		repo.On("FetchSpots", mock.Anything).Return(sampleSpots, nil).Once()
		repo.On("FetchReviews", mock.Anything).Return(sampleReviews, nil).Once()

		svc := NewService(repo, testLogger())
		assert.False(t, svc.Loaded())

		require.NoError(t, svc.Load(ctx))
		assert.True(t, svc.Loaded())

		buildings, err := svc.Buildings(ctx)
		require.NoError(t, err)
		assert.Len(t, buildings, len(sampleBuildings))

		spots, err := svc.Spots(ctx)
		require.NoError(t, err)
		assert.Len(t, spots, len(sampleSpots))

		reviews, err := svc.Reviews(ctx)
		require.NoError(t, err)
		assert.Len(t, reviews, len(sampleReviews))

		repo.AssertExpectations(t)
	})

	t.Run("second load is a no-op", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FetchBuildings", mock.Anything).Return(sampleBuildings, nil).Once()
		repo.On("FetchSpots", mock.Anything).Return(sampleSpots, nil).Once()
		repo.On("FetchReviews", mock.Anything).Return(sampleReviews, nil).Once()

		svc := NewService(repo, testLogger())
		require.NoError(t, svc.Load(ctx))
		require.NoError(t, svc.Load(ctx))

		repo.AssertExpectations(t)
	})

	t.Run("any fetch failure fails the whole load", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FetchBuildings", mock.Anything).Return(sampleBuildings, nil)
		repo.On("FetchSpots", mock.Anything).Return(nil, errors.New("network down"))
		repo.On("FetchReviews", mock.Anything).Return(sampleReviews, nil)

		svc := NewService(repo, testLogger())
		err := svc.Load(ctx)
		require.Error(t, err)
		assert.False(t, svc.Loaded())

		_, err = svc.Spots(ctx)
		assert.ErrorIs(t, err, ErrNotLoaded)
	})
}

func TestServiceImpl_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FetchBuildings", mock.Anything).Return(sampleBuildings, nil)
	repo.On("FetchSpots", mock.Anything).Return(sampleSpots, nil)
	repo.On("FetchReviews", mock.Anything).Return(sampleReviews, nil)

	svc := NewService(repo, testLogger())
	require.NoError(t, svc.Load(ctx))

	t.Run("building by ID", func(t *testing.T) {
		b, err := svc.BuildingByID(ctx, buildingLibraryID)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, "McDermott Library", b.Name)
	})

	t.Run("unknown building returns nil", func(t *testing.T) {
		b, err := svc.BuildingByID(ctx, sampleReviews[0].ID)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("spot by ID", func(t *testing.T) {
		sp, err := svc.SpotByID(ctx, spotJSOMLoungeID)
		require.NoError(t, err)
		require.NotNil(t, sp)
		assert.Equal(t, "JSOM - 2nd Floor Lounge", sp.Name)
	})

	t.Run("spots in building", func(t *testing.T) {
		spots, err := svc.SpotsInBuilding(ctx, buildingLibraryID)
		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, spotLibraryThirdID, spots[0].ID)
	})

	t.Run("spots in unknown building is empty", func(t *testing.T) {
		spots, err := svc.SpotsInBuilding(ctx, sampleReviews[0].ID)
		require.NoError(t, err)
		assert.Empty(t, spots)
	})
}

func TestSampleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSampleRepository(0, testLogger())

	buildings, err := repo.FetchBuildings(ctx)
	require.NoError(t, err)
	assert.Len(t, buildings, 6)

	spots, err := repo.FetchSpots(ctx)
	require.NoError(t, err)
	assert.Len(t, spots, 6)

	reviews, err := repo.FetchReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 4)

	t.Run("every spot references a known building", func(t *testing.T) {
		known := map[string]bool{}
		for _, b := range buildings {
			known[b.ID.String()] = true
		}
		for _, sp := range spots {
			assert.True(t, known[sp.BuildingID.String()], "spot %s has unknown building", sp.Name)
		}
	})

	t.Run("review links resolve", func(t *testing.T) {
		reviewByID := map[string]types.Review{}
		for _, rv := range reviews {
			reviewByID[rv.ID.String()] = rv
		}
		for _, sp := range spots {
			for _, id := range sp.ReviewIDs {
				rv, ok := reviewByID[id.String()]
				require.True(t, ok, "spot %s links missing review %s", sp.Name, id)
				assert.Equal(t, sp.ID, rv.SpotID)
			}
		}
	})
}
