package spots

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

type countingService struct {
	mu      sync.Mutex
	queries []string
}

func (c *countingService) Search(ctx context.Context, q types.SearchFilterState, mode types.SortMode) ([]types.SpotView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, q.SearchText)
	return []types.SpotView{}, nil
}

func (c *countingService) SpotDetail(ctx context.Context, id uuid.UUID) (*types.SpotView, error) {
	return nil, nil
}

func (c *countingService) seen() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.queries))
	copy(out, c.queries)
	return out
}

func TestSearchController_DebouncesRapidTyping(t *testing.T) {
	svc := &countingService{}
	ctrl := NewSearchController(svc, 30*time.Millisecond)
	defer ctrl.Close()

	ctx := context.Background()
	for _, text := range []string{"q", "qu", "qui", "quie", "quiet"} {
		ctrl.Submit(ctx, types.SearchFilterState{SearchText: text}, types.SortModeNone)
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case res := <-ctrl.Results():
		require.NoError(t, res.Err)
		assert.Equal(t, "quiet", res.Query.SearchText)
	case <-time.After(time.Second):
		t.Fatal("debounced search never ran")
	}

	// Only the final keystroke reached the service.
	assert.Equal(t, []string{"quiet"}, svc.seen())
}

func TestSearchController_ZeroIntervalRunsImmediately(t *testing.T) {
	svc := &countingService{}
	ctrl := NewSearchController(svc, 0)
	defer ctrl.Close()

	ctrl.Submit(context.Background(), types.SearchFilterState{SearchText: "now"}, types.SortModeNone)

	select {
	case res := <-ctrl.Results():
		assert.Equal(t, "now", res.Query.SearchText)
	case <-time.After(time.Second):
		t.Fatal("immediate search never delivered")
	}
}

func TestSearchController_CloseStopsPendingRun(t *testing.T) {
	svc := &countingService{}
	ctrl := NewSearchController(svc, 50*time.Millisecond)

	ctrl.Submit(context.Background(), types.SearchFilterState{SearchText: "late"}, types.SortModeNone)
	ctrl.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, svc.seen())
}
