package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

func TestPostgresRepository_FetchBuildings(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresRepository(mockPool, testLogger())

	id := uuid.New()
	rows := pgxmock.NewRows([]string{
		"id", "name", "code", "address", "opening_hours", "image_names", "latitude", "longitude",
	}).AddRow(
		id, "McDermott Library", "MC", "800 W Campbell Rd",
		map[string]string{"Monday": "7:00 AM - 12:00 AM"},
		[]string{"mcdermott_exterior"}, 32.98751, -96.74772,
	)
	mockPool.ExpectQuery("SELECT id, name, code, address").WillReturnRows(rows)

	buildings, err := repo.FetchBuildings(context.Background())
	require.NoError(t, err)
	require.Len(t, buildings, 1)
	assert.Equal(t, id, buildings[0].ID)
	assert.Equal(t, "MC", buildings[0].Code)
	assert.Equal(t, "7:00 AM - 12:00 AM", buildings[0].OpeningHours["Monday"])

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPostgresRepository_FetchSpots(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresRepository(mockPool, testLogger())

	spotID := uuid.New()
	buildingID := uuid.New()
	reviewID := uuid.New()
	rows := pgxmock.NewRows([]string{
		"id", "name", "building_id", "floor", "description", "features", "capacity",
		"latitude", "longitude", "opening_hours", "review_ids", "average_rating",
	}).AddRow(
		spotID, "SLC - Open Study Area", buildingID, 1, "Bright and spacious.",
		[]string{"Group Study", "WiFi"}, 75,
		32.9901393, -96.7503553,
		map[string]string{"Monday": "7:00 AM - 11:00 PM"},
		[]uuid.UUID{reviewID}, 3.8,
	)
	mockPool.ExpectQuery("SELECT id, name, building_id").WillReturnRows(rows)

	spots, err := repo.FetchSpots(context.Background())
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, spotID, spots[0].ID)
	assert.Equal(t, buildingID, spots[0].BuildingID)
	assert.Equal(t, []uuid.UUID{reviewID}, spots[0].ReviewIDs)
	assert.InDelta(t, 3.8, spots[0].AverageRating, 1e-9)
}

func TestPostgresRepository_InsertReview(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresRepository(mockPool, testLogger())

	review := types.Review{
		ID:        uuid.New(),
		SpotID:    uuid.New(),
		Rating:    4,
		Comment:   "Solid desks, weak coffee.",
		Timestamp: time.Now().UTC(),
		UserName:  "Current User",
	}

	mockPool.ExpectBegin()
	mockPool.ExpectExec("INSERT INTO reviews").
		WithArgs(review.ID, review.SpotID, review.Rating, review.Comment,
			review.Timestamp, review.UserName, review.UserID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectCommit()
	mockPool.ExpectRollback()

	require.NoError(t, repo.InsertReview(context.Background(), review))
	require.NoError(t, mockPool.ExpectationsWereMet())
}
