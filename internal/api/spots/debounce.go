package spots

import (
	"context"
	"sync"
	"time"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

// SearchController debounces rapid query changes the way an interactive
// search box does: every submission resets the timer, and only the latest
// query runs when the interval elapses. Results are delivered on Results in
// submission order; stale in-flight runs are dropped.
type SearchController struct {
	service  Service
	interval time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	latest uint64

	results chan SearchResult
	closed  bool
}

// SearchResult is one debounced pipeline run.
type SearchResult struct {
	Query types.SearchFilterState
	Views []types.SpotView
	Err   error
}

func NewSearchController(service Service, interval time.Duration) *SearchController {
	return &SearchController{
		service:  service,
		interval: interval,
		results:  make(chan SearchResult, 1),
	}
}

// Results delivers completed runs. Slow consumers only ever see the most
// recent result; older undelivered ones are replaced.
func (c *SearchController) Results() <-chan SearchResult {
	return c.results
}

// Submit records a query change and (re)starts the debounce interval. With a
// non-positive interval the query runs immediately.
func (c *SearchController) Submit(ctx context.Context, q types.SearchFilterState, mode types.SortMode) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq

	if c.interval <= 0 {
		c.mu.Unlock()
		c.run(ctx, q, mode, seq)
		return
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.interval, func() {
		c.run(ctx, q, mode, seq)
	})
	c.mu.Unlock()
}

func (c *SearchController) run(ctx context.Context, q types.SearchFilterState, mode types.SortMode, seq uint64) {
	views, err := c.service.Search(ctx, q, mode)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq < c.latest {
		return
	}
	c.latest = seq

	// Replace any undelivered older result.
	select {
	case <-c.results:
	default:
	}
	c.results <- SearchResult{Query: q, Views: views, Err: err}
}

// Close stops the pending timer and closes the results channel.
func (c *SearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	close(c.results)
}
