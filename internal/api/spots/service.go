package spots

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-campus-study-spots/app/observability/metrics"
	"github.com/FACorreiaa/go-campus-study-spots/internal/geo"
	"github.com/FACorreiaa/go-campus-study-spots/internal/hours"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

// Catalog is the slice of the catalog service the search engine needs.
type Catalog interface {
	Buildings(ctx context.Context) ([]types.Building, error)
	Spots(ctx context.Context) ([]types.StudySpot, error)
	SpotByID(ctx context.Context, id uuid.UUID) (*types.StudySpot, error)
	BuildingByID(ctx context.Context, id uuid.UUID) (*types.Building, error)
}

// Favorites answers membership queries for the favorite badge.
type Favorites interface {
	List(ctx context.Context) ([]uuid.UUID, error)
}

// LocationSource reports the user's last known position, if any.
type LocationSource interface {
	Latest() (types.Coordinates, bool)
}

var _ Service = (*ServiceImpl)(nil)

// Service runs the filter/sort/annotate pipeline over the loaded catalog.
type Service interface {
	Search(ctx context.Context, q types.SearchFilterState, mode types.SortMode) ([]types.SpotView, error)
	SpotDetail(ctx context.Context, id uuid.UUID) (*types.SpotView, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	catalog   Catalog
	favorites Favorites
	location  LocationSource

	// resultCache holds filtered (pre-annotation) spot slices keyed by the
	// normalized query. Annotation runs per request since distance, open
	// state and favorites shift under a stable filter result.
	resultCache *cache.Cache

	loc *time.Location
	now func() time.Time
}

func NewService(catalogSvc Catalog, favoritesSvc Favorites, locationSrc LocationSource, loc *time.Location, cacheTTL time.Duration, logger *slog.Logger) *ServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &ServiceImpl{
		logger:      logger,
		catalog:     catalogSvc,
		favorites:   favoritesSvc,
		location:    locationSrc,
		resultCache: cache.New(cacheTTL, 2*cacheTTL),
		loc:         loc,
		now:         time.Now,
	}
}

func (s *ServiceImpl) Search(ctx context.Context, q types.SearchFilterState, mode types.SortMode) ([]types.SpotView, error) {
	ctx, span := otel.Tracer("SpotsService").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("search.text", q.SearchText),
		attribute.String("search.sort", string(mode)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Search"))
	metrics.Get().SearchesTotal.Add(ctx, 1)

	filtered, err := s.filtered(ctx, q)
	if err != nil {
		l.ErrorContext(ctx, "Failed to filter spots", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Filter failed")
		return nil, err
	}

	var from *types.Coordinates
	if s.location != nil {
		if c, ok := s.location.Latest(); ok {
			from = &c
		}
	}

	switch mode {
	case types.SortModeDistance:
		SortByDistance(filtered, from)
	case types.SortModeName:
		SortByName(filtered)
	case types.SortModeOpenNow:
		SortByOpenNow(filtered, s.now(), s.loc)
	case types.SortModeNone:
		// Catalog order.
	default:
		span.SetStatus(codes.Error, "Unknown sort mode")
		return nil, fmt.Errorf("unknown sort mode %q", mode)
	}

	views, err := s.annotate(ctx, filtered, from)
	if err != nil {
		l.ErrorContext(ctx, "Failed to annotate spots", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Annotation failed")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Search completed")
	return views, nil
}

// filtered returns a fresh copy of the filter result for q, serving repeats
// from the result cache.
func (s *ServiceImpl) filtered(ctx context.Context, q types.SearchFilterState) ([]types.StudySpot, error) {
	key := q.CacheKey()
	if cached, found := s.resultCache.Get(key); found {
		metrics.Get().SearchCacheHitsTotal.Add(ctx, 1)
		hit := cached.([]types.StudySpot)
		out := make([]types.StudySpot, len(hit))
		copy(out, hit)
		return out, nil
	}

	allSpots, err := s.catalog.Spots(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching spots: %w", err)
	}
	buildings, err := s.buildingIndex(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Filter(allSpots, buildings, q)
	s.resultCache.Set(key, filtered, cache.DefaultExpiration)

	out := make([]types.StudySpot, len(filtered))
	copy(out, filtered)
	return out, nil
}

func (s *ServiceImpl) buildingIndex(ctx context.Context) (map[uuid.UUID]types.Building, error) {
	buildings, err := s.catalog.Buildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching buildings: %w", err)
	}
	idx := make(map[uuid.UUID]types.Building, len(buildings))
	for _, b := range buildings {
		idx[b.ID] = b
	}
	return idx, nil
}

func (s *ServiceImpl) annotate(ctx context.Context, spots []types.StudySpot, from *types.Coordinates) ([]types.SpotView, error) {
	buildings, err := s.buildingIndex(ctx)
	if err != nil {
		return nil, err
	}

	favs := map[uuid.UUID]bool{}
	if s.favorites != nil {
		ids, err := s.favorites.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("error fetching favorites: %w", err)
		}
		for _, id := range ids {
			favs[id] = true
		}
	}

	now := s.now()
	views := make([]types.SpotView, 0, len(spots))
	for _, sp := range spots {
		v := types.SpotView{
			StudySpot:  sp,
			IsOpen:     hours.IsOpenAt(sp.OpeningHours, now, s.loc),
			IsFavorite: favs[sp.ID],
		}
		if b, ok := buildings[sp.BuildingID]; ok {
			v.BuildingName = b.Name
			v.BuildingCode = b.Code
		}
		if from != nil {
			m := geo.Distance(*from, sp.Coordinates())
			ft := geo.MetersToFeet(m)
			v.DistanceMeters = &m
			v.DistanceFeet = &ft
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *ServiceImpl) SpotDetail(ctx context.Context, id uuid.UUID) (*types.SpotView, error) {
	ctx, span := otel.Tracer("SpotsService").Start(ctx, "SpotDetail", trace.WithAttributes(
		attribute.String("spot.id", id.String()),
	))
	defer span.End()

	sp, err := s.catalog.SpotByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Catalog lookup failed")
		return nil, err
	}
	if sp == nil {
		return nil, nil
	}

	var from *types.Coordinates
	if s.location != nil {
		if c, ok := s.location.Latest(); ok {
			from = &c
		}
	}

	views, err := s.annotate(ctx, []types.StudySpot{*sp}, from)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Annotation failed")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Spot detail returned")
	return &views[0], nil
}
