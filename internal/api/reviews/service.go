package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-campus-study-spots/app/observability/metrics"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyComment  = errors.New("comment must not be blank")
	ErrUnknownSpot   = errors.New("unknown spot")
)

// DefaultUserName is attributed to reviews submitted without an identity.
const DefaultUserName = "Current User"

// Catalog is the slice of the catalog service the review store needs.
type Catalog interface {
	Reviews(ctx context.Context) ([]types.Review, error)
	SpotByID(ctx context.Context, id uuid.UUID) (*types.StudySpot, error)
}

// Sink optionally persists accepted reviews beyond process memory. The
// Postgres catalog repository implements it; the sample provider runs
// without one.
type Sink interface {
	InsertReview(ctx context.Context, review types.Review) error
}

var _ Service = (*ServiceImpl)(nil)

// Service stores reviews seeded from the catalog plus user submissions.
// Stored spot ratings are never recomputed from submissions; LiveAverage on
// RatingSummary is the honest number.
type Service interface {
	ForSpot(ctx context.Context, spotID uuid.UUID) ([]types.Review, error)
	Add(ctx context.Context, spotID uuid.UUID, req types.AddReviewRequest, userID *string) (*types.Review, error)
	Summary(ctx context.Context, spotID uuid.UUID) (*types.RatingSummary, error)
}

type ServiceImpl struct {
	logger  *slog.Logger
	catalog Catalog
	sink    Sink

	mu      sync.Mutex
	reviews []types.Review
	seeded  bool
}

// NewService creates the review store. sink may be nil.
func NewService(catalogSvc Catalog, sink Sink, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		catalog: catalogSvc,
		sink:    sink,
	}
}

func (s *ServiceImpl) seedLocked(ctx context.Context) error {
	if s.seeded {
		return nil
	}
	seed, err := s.catalog.Reviews(ctx)
	if err != nil {
		return fmt.Errorf("error seeding reviews: %w", err)
	}
	s.reviews = append([]types.Review(nil), seed...)
	s.seeded = true
	return nil
}

func (s *ServiceImpl) ForSpot(ctx context.Context, spotID uuid.UUID) ([]types.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seedLocked(ctx); err != nil {
		return nil, err
	}
	var out []types.Review
	for _, rv := range s.reviews {
		if rv.SpotID == spotID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (s *ServiceImpl) Add(ctx context.Context, spotID uuid.UUID, req types.AddReviewRequest, userID *string) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewsService").Start(ctx, "Add", trace.WithAttributes(
		attribute.String("spot.id", spotID.String()),
		attribute.Int("review.rating", req.Rating),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Add"), slog.String("spotID", spotID.String()))

	if req.Rating < 1 || req.Rating > 5 {
		span.SetStatus(codes.Error, "Invalid rating")
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Comment) == "" {
		span.SetStatus(codes.Error, "Empty comment")
		return nil, ErrEmptyComment
	}

	sp, err := s.catalog.SpotByID(ctx, spotID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Catalog lookup failed")
		return nil, err
	}
	if sp == nil {
		span.SetStatus(codes.Error, "Unknown spot")
		return nil, ErrUnknownSpot
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		userName = DefaultUserName
	}

	review := types.Review{
		ID:        uuid.New(),
		SpotID:    spotID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Timestamp: time.Now().UTC(),
		UserName:  userName,
		UserID:    userID,
	}

	s.mu.Lock()
	if err := s.seedLocked(ctx); err != nil {
		s.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, "Seed failed")
		return nil, err
	}
	s.reviews = append(s.reviews, review)
	s.mu.Unlock()

	if s.sink != nil {
		if err := s.sink.InsertReview(ctx, review); err != nil {
			// The in-memory copy is already visible; log and carry on.
			l.ErrorContext(ctx, "Failed to persist review", slog.Any("error", err))
			span.RecordError(err)
		}
	}

	metrics.Get().ReviewSubmissionsTotal.Add(ctx, 1)
	l.InfoContext(ctx, "Review accepted", slog.String("reviewID", review.ID.String()))
	span.SetStatus(codes.Ok, "Review accepted")
	return &review, nil
}

// Summary reports both the static catalog rating and the live mean over the
// reviews currently held, so callers can see the drift.
func (s *ServiceImpl) Summary(ctx context.Context, spotID uuid.UUID) (*types.RatingSummary, error) {
	sp, err := s.catalog.SpotByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrUnknownSpot
	}

	reviews, err := s.ForSpot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	summary := &types.RatingSummary{
		SpotID:        spotID,
		StoredAverage: sp.AverageRating,
		ReviewCount:   len(reviews),
	}
	if len(reviews) > 0 {
		var sum int
		for _, rv := range reviews {
			sum += rv.Rating
		}
		summary.LiveAverage = float64(sum) / float64(len(reviews))
	}
	return summary, nil
}
