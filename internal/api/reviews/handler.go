package reviews

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	appMiddleware "github.com/FACorreiaa/go-campus-study-spots/app/middleware"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetSpotReviews handles GET /spots/{spotID}/reviews.
func (h *Handler) GetSpotReviews(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "GetSpotReviews")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetSpotReviews"))

	spotID, err := uuid.Parse(chi.URLParam(r, "spotID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid spot ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid spot ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid spot ID format")
		return
	}

	reviews, err := h.service.ForSpot(ctx, spotID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load reviews", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load reviews")
		return
	}
	if reviews == nil {
		reviews = []types.Review{}
	}

	span.SetStatus(codes.Ok, "Reviews returned")
	api.WriteJSONResponse(w, r, http.StatusOK, reviews)
}

// AddSpotReview handles POST /spots/{spotID}/reviews. The author comes from
// the bearer identity when present, then the request body, then the default.
func (h *Handler) AddSpotReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "AddSpotReview")
	defer span.End()

	l := h.logger.With(slog.String("method", "AddSpotReview"))

	spotID, err := uuid.Parse(chi.URLParam(r, "spotID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid spot ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid spot ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid spot ID format")
		return
	}

	var req types.AddReviewRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid review payload", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid payload")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var userID *string
	if id, name, ok := appMiddleware.UserFromContext(ctx); ok {
		userID = &id
		req.UserName = name
	}

	review, err := h.service.Add(ctx, spotID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrEmptyComment):
			span.SetStatus(codes.Error, "Validation failed")
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUnknownSpot):
			span.SetStatus(codes.Error, "Unknown spot")
			api.ErrorResponse(w, r, http.StatusNotFound, "Spot not found")
		default:
			l.ErrorContext(ctx, "Failed to add review", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Service operation failed")
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add review")
		}
		return
	}

	span.SetStatus(codes.Ok, "Review accepted")
	api.WriteJSONResponse(w, r, http.StatusCreated, review)
}

// GetSpotRatingSummary handles GET /spots/{spotID}/rating.
func (h *Handler) GetSpotRatingSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "GetSpotRatingSummary")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetSpotRatingSummary"))

	spotID, err := uuid.Parse(chi.URLParam(r, "spotID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid spot ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid spot ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid spot ID format")
		return
	}

	summary, err := h.service.Summary(ctx, spotID)
	if err != nil {
		if errors.Is(err, ErrUnknownSpot) {
			span.SetStatus(codes.Error, "Unknown spot")
			api.ErrorResponse(w, r, http.StatusNotFound, "Spot not found")
			return
		}
		l.ErrorContext(ctx, "Failed to compute rating summary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute rating summary")
		return
	}

	span.SetStatus(codes.Ok, "Rating summary returned")
	api.WriteJSONResponse(w, r, http.StatusOK, summary)
}
