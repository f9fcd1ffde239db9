package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

var _ Repository = (*SampleRepository)(nil)

// SampleRepository serves the embedded campus fixtures. A configurable delay
// mimics a slow network so the loading paths stay honest in development.
type SampleRepository struct {
	logger *slog.Logger
	delay  time.Duration
}

func NewSampleRepository(delay time.Duration, logger *slog.Logger) *SampleRepository {
	return &SampleRepository{
		logger: logger,
		delay:  delay,
	}
}

func (r *SampleRepository) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(r.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *SampleRepository) FetchBuildings(ctx context.Context) ([]types.Building, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]types.Building, len(sampleBuildings))
	copy(out, sampleBuildings)
	return out, nil
}

func (r *SampleRepository) FetchSpots(ctx context.Context) ([]types.StudySpot, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]types.StudySpot, len(sampleSpots))
	copy(out, sampleSpots)
	return out, nil
}

func (r *SampleRepository) FetchReviews(ctx context.Context) ([]types.Review, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]types.Review, len(sampleReviews))
	copy(out, sampleReviews)
	return out, nil
}
