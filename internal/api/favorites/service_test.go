package favorites

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-campus-study-spots/app/observability/metrics"
)

func init() {
	metrics.InitAppMetrics()
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestServiceImpl_AddRemove(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	svc := NewService(kv, testLogger())

	spotA := uuid.New()
	spotB := uuid.New()

	fav, err := svc.IsFavorite(ctx, spotA)
	require.NoError(t, err)
	assert.False(t, fav)

	require.NoError(t, svc.Add(ctx, spotA))
	require.NoError(t, svc.Add(ctx, spotB))

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, svc.Add(ctx, spotA))
		ids, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{spotA, spotB}, ids)
	})

	t.Run("remove keeps order of the rest", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, spotA))
		ids, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{spotB}, ids)
	})

	t.Run("remove of absent id is a no-op", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, spotA))
		ids, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{spotB}, ids)
	})
}

func TestServiceImpl_Toggle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryKV(), testLogger())
	spot := uuid.New()

	fav, err := svc.Toggle(ctx, spot)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = svc.Toggle(ctx, spot)
	require.NoError(t, err)
	assert.False(t, fav)

	ids, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestServiceImpl_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	spot := uuid.New()

	first := NewService(kv, testLogger())
	require.NoError(t, first.Add(ctx, spot))

	// A fresh instance over the same store sees the favorite.
	second := NewService(kv, testLogger())
	fav, err := second.IsFavorite(ctx, spot)
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestServiceImpl_DropsMalformedEntries(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	spot := uuid.New()
	require.NoError(t, kv.Save(ctx, []string{"not-a-uuid", spot.String()}))

	svc := NewService(kv, testLogger())
	ids, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{spot}, ids)
}

type failingKV struct {
	loadErr error
	saveErr error
	inner   *MemoryKV
}

func (f *failingKV) Load(ctx context.Context) ([]string, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.inner.Load(ctx)
}

func (f *failingKV) Save(ctx context.Context, ids []string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.inner.Save(ctx, ids)
}

func TestServiceImpl_FailedPersistRollsBack(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{inner: NewMemoryKV(), saveErr: errors.New("redis down")}
	svc := NewService(kv, testLogger())
	spot := uuid.New()

	require.Error(t, svc.Add(ctx, spot))

	// The failed mutation never took effect in memory.
	kv.saveErr = nil
	fav, err := svc.IsFavorite(ctx, spot)
	require.NoError(t, err)
	assert.False(t, fav)
}
