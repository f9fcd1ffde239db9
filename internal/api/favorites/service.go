package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-campus-study-spots/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// Service tracks the user's favorite spots. Mutations persist before they
// return, so a mutation that errored never took effect in memory either.
type Service interface {
	IsFavorite(ctx context.Context, spotID uuid.UUID) (bool, error)
	List(ctx context.Context) ([]uuid.UUID, error)
	Add(ctx context.Context, spotID uuid.UUID) error
	Remove(ctx context.Context, spotID uuid.UUID) error
	// Toggle flips membership and reports the new state.
	Toggle(ctx context.Context, spotID uuid.UUID) (bool, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	kv     KV

	mu     sync.Mutex
	ids    []uuid.UUID
	loaded bool
}

func NewService(kv KV, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		kv:     kv,
	}
}

// loadLocked hydrates the in-memory set on first use. Unparseable entries in
// the stored list are dropped rather than failing the whole load.
func (s *ServiceImpl) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	raw, err := s.kv.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading favorites: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			s.logger.WarnContext(ctx, "Dropping malformed favorite entry", slog.String("value", r))
			continue
		}
		ids = append(ids, id)
	}
	s.ids = ids
	s.loaded = true
	return nil
}

func (s *ServiceImpl) persistLocked(ctx context.Context) error {
	raw := make([]string, len(s.ids))
	for i, id := range s.ids {
		raw[i] = id.String()
	}
	return s.kv.Save(ctx, raw)
}

func (s *ServiceImpl) indexLocked(spotID uuid.UUID) int {
	for i, id := range s.ids {
		if id == spotID {
			return i
		}
	}
	return -1
}

func (s *ServiceImpl) IsFavorite(ctx context.Context, spotID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return false, err
	}
	return s.indexLocked(spotID) >= 0, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out, nil
}

func (s *ServiceImpl) Add(ctx context.Context, spotID uuid.UUID) error {
	ctx, span := otel.Tracer("FavoritesService").Start(ctx, "Add", trace.WithAttributes(
		attribute.String("spot.id", spotID.String()),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load favorites")
		return err
	}
	if s.indexLocked(spotID) >= 0 {
		return nil
	}
	s.ids = append(s.ids, spotID)
	if err := s.persistLocked(ctx); err != nil {
		s.ids = s.ids[:len(s.ids)-1]
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to persist favorites")
		return fmt.Errorf("error persisting favorites: %w", err)
	}
	metrics.Get().FavoriteTogglesTotal.Add(ctx, 1)
	return nil
}

func (s *ServiceImpl) Remove(ctx context.Context, spotID uuid.UUID) error {
	ctx, span := otel.Tracer("FavoritesService").Start(ctx, "Remove", trace.WithAttributes(
		attribute.String("spot.id", spotID.String()),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load favorites")
		return err
	}
	i := s.indexLocked(spotID)
	if i < 0 {
		return nil
	}
	removed := s.ids[i]
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	if err := s.persistLocked(ctx); err != nil {
		s.ids = append(s.ids[:i], append([]uuid.UUID{removed}, s.ids[i:]...)...)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to persist favorites")
		return fmt.Errorf("error persisting favorites: %w", err)
	}
	metrics.Get().FavoriteTogglesTotal.Add(ctx, 1)
	return nil
}

func (s *ServiceImpl) Toggle(ctx context.Context, spotID uuid.UUID) (bool, error) {
	fav, err := s.IsFavorite(ctx, spotID)
	if err != nil {
		return false, err
	}
	if fav {
		if err := s.Remove(ctx, spotID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Add(ctx, spotID); err != nil {
		return false, err
	}
	return true, nil
}
