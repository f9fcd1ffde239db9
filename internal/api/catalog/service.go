package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-campus-study-spots/app/observability/metrics"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the loaded campus catalog. Load must complete successfully
// before the accessors return data; until then they report not-loaded state.
type Service interface {
	// Load fetches buildings, spots and reviews in parallel and publishes
	// them atomically. A second call after success is a no-op.
	Load(ctx context.Context) error

	Loaded() bool
	Buildings(ctx context.Context) ([]types.Building, error)
	Spots(ctx context.Context) ([]types.StudySpot, error)
	Reviews(ctx context.Context) ([]types.Review, error)

	BuildingByID(ctx context.Context, id uuid.UUID) (*types.Building, error)
	SpotByID(ctx context.Context, id uuid.UUID) (*types.StudySpot, error)
	SpotsInBuilding(ctx context.Context, buildingID uuid.UUID) ([]types.StudySpot, error)
}

// ErrNotLoaded is returned by accessors before a successful Load.
var ErrNotLoaded = fmt.Errorf("catalog not loaded")

type snapshot struct {
	buildings   []types.Building
	spots       []types.StudySpot
	reviews     []types.Review
	buildingsBy map[uuid.UUID]types.Building
	spotsBy     map[uuid.UUID]types.StudySpot
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository

	mu   sync.RWMutex
	snap *snapshot
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) Load(ctx context.Context) error {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "Load")
	defer span.End()

	s.mu.RLock()
	loaded := s.snap != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	l := s.logger.With(slog.String("method", "Load"))
	l.InfoContext(ctx, "Loading campus catalog")
	start := time.Now()

	var (
		buildings []types.Building
		spots     []types.StudySpot
		reviews   []types.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buildings, err = s.repo.FetchBuildings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		spots, err = s.repo.FetchSpots(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.repo.FetchReviews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.ErrorContext(ctx, "Failed to load catalog", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Catalog load failed")
		return fmt.Errorf("error loading catalog: %w", err)
	}

	snap := &snapshot{
		buildings:   buildings,
		spots:       spots,
		reviews:     reviews,
		buildingsBy: make(map[uuid.UUID]types.Building, len(buildings)),
		spotsBy:     make(map[uuid.UUID]types.StudySpot, len(spots)),
	}
	for _, b := range buildings {
		snap.buildingsBy[b.ID] = b
	}
	for _, sp := range spots {
		snap.spotsBy[sp.ID] = sp
	}

	s.mu.Lock()
	// A concurrent Load may have won the race; keep the first snapshot.
	if s.snap == nil {
		s.snap = snap
	}
	s.mu.Unlock()

	elapsed := time.Since(start)
	metrics.Get().CatalogLoadDurationSeconds.Record(ctx, elapsed.Seconds())
	l.InfoContext(ctx, "Catalog loaded",
		slog.Int("buildings", len(buildings)),
		slog.Int("spots", len(spots)),
		slog.Int("reviews", len(reviews)),
		slog.Duration("elapsed", elapsed))
	span.SetStatus(codes.Ok, "Catalog loaded")
	return nil
}

func (s *ServiceImpl) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil
}

func (s *ServiceImpl) current() (*snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}
	return s.snap, nil
}

func (s *ServiceImpl) Buildings(ctx context.Context) ([]types.Building, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	out := make([]types.Building, len(snap.buildings))
	copy(out, snap.buildings)
	return out, nil
}

func (s *ServiceImpl) Spots(ctx context.Context) ([]types.StudySpot, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	out := make([]types.StudySpot, len(snap.spots))
	copy(out, snap.spots)
	return out, nil
}

func (s *ServiceImpl) Reviews(ctx context.Context) ([]types.Review, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	out := make([]types.Review, len(snap.reviews))
	copy(out, snap.reviews)
	return out, nil
}

func (s *ServiceImpl) BuildingByID(ctx context.Context, id uuid.UUID) (*types.Building, error) {
	_, span := otel.Tracer("CatalogService").Start(ctx, "BuildingByID",
		trace.WithAttributes(attribute.String("building.id", id.String())))
	defer span.End()

	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	b, ok := snap.buildingsBy[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *ServiceImpl) SpotByID(ctx context.Context, id uuid.UUID) (*types.StudySpot, error) {
	_, span := otel.Tracer("CatalogService").Start(ctx, "SpotByID",
		trace.WithAttributes(attribute.String("spot.id", id.String())))
	defer span.End()

	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	sp, ok := snap.spotsBy[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

func (s *ServiceImpl) SpotsInBuilding(ctx context.Context, buildingID uuid.UUID) ([]types.StudySpot, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	var out []types.StudySpot
	for _, sp := range snap.spots {
		if sp.BuildingID == buildingID {
			out = append(out, sp)
		}
	}
	return out, nil
}
