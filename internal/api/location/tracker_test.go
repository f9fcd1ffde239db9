package location

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTracker_StartsEmpty(t *testing.T) {
	tr := NewTracker(testLogger())

	_, ok := tr.Latest()
	assert.False(t, ok)
	assert.Equal(t, types.AuthorizationUndetermined, tr.Status())
}

func TestTracker_UpdateAndLatest(t *testing.T) {
	tr := NewTracker(testLogger())

	require.NoError(t, tr.Update(types.Coordinates{Latitude: 32.9886, Longitude: -96.7503}))
	c, ok := tr.Latest()
	require.True(t, ok)
	assert.InDelta(t, 32.9886, c.Latitude, 1e-9)

	// Newer fix replaces the old one.
	require.NoError(t, tr.Update(types.Coordinates{Latitude: 33.0, Longitude: -96.7}))
	c, _ = tr.Latest()
	assert.InDelta(t, 33.0, c.Latitude, 1e-9)
}

func TestTracker_RejectsOutOfRange(t *testing.T) {
	tr := NewTracker(testLogger())
	require.NoError(t, tr.Update(types.Coordinates{Latitude: 32.0, Longitude: -96.0}))

	assert.ErrorIs(t, tr.Update(types.Coordinates{Latitude: 91, Longitude: 0}), ErrInvalidCoordinates)
	assert.ErrorIs(t, tr.Update(types.Coordinates{Latitude: 0, Longitude: -181}), ErrInvalidCoordinates)

	// Previous fix survives a rejected update.
	c, ok := tr.Latest()
	require.True(t, ok)
	assert.InDelta(t, 32.0, c.Latitude, 1e-9)
}

func TestTracker_DeniedClearsFix(t *testing.T) {
	tr := NewTracker(testLogger())
	require.NoError(t, tr.Update(types.Coordinates{Latitude: 32.0, Longitude: -96.0}))

	require.NoError(t, tr.SetStatus(types.AuthorizationDenied))
	_, ok := tr.Latest()
	assert.False(t, ok)
	assert.Equal(t, types.AuthorizationDenied, tr.Status())
}

func TestTracker_RejectsUnknownStatus(t *testing.T) {
	tr := NewTracker(testLogger())
	assert.Error(t, tr.SetStatus(types.AuthorizationStatus("sometimes")))
	assert.Equal(t, types.AuthorizationUndetermined, tr.Status())
}
