package favorites

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-campus-study-spots/internal/api"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/catalog"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
	catalog catalog.Service
}

func NewHandler(service Service, catalogSvc catalog.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		catalog: catalogSvc,
	}
}

// GetFavorites handles GET /favorites - returns the favorited spots in the
// order they were added. IDs that no longer resolve to a spot are skipped.
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FavoritesHandler").Start(r.Context(), "GetFavorites")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetFavorites"))

	ids, err := h.service.List(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list favorites", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load favorites")
		return
	}

	spots := make([]types.StudySpot, 0, len(ids))
	for _, id := range ids {
		sp, err := h.catalog.SpotByID(ctx, id)
		if err != nil {
			l.ErrorContext(ctx, "Failed to resolve favorite spot", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Catalog lookup failed")
			api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
			return
		}
		if sp == nil {
			continue
		}
		spots = append(spots, *sp)
	}

	span.SetStatus(codes.Ok, "Favorites returned")
	api.WriteJSONResponse(w, r, http.StatusOK, spots)
}

// AddFavorite handles PUT /favorites/{spotID}.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FavoritesHandler").Start(r.Context(), "AddFavorite")
	defer span.End()

	l := h.logger.With(slog.String("method", "AddFavorite"))

	spotID, ok := h.resolveSpotID(w, r, l)
	if !ok {
		span.SetStatus(codes.Error, "Invalid or unknown spot")
		return
	}

	if err := h.service.Add(ctx, spotID); err != nil {
		l.ErrorContext(ctx, "Failed to add favorite", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to save favorite")
		return
	}

	span.SetStatus(codes.Ok, "Favorite added")
	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Favorite added"})
}

// RemoveFavorite handles DELETE /favorites/{spotID}.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FavoritesHandler").Start(r.Context(), "RemoveFavorite")
	defer span.End()

	l := h.logger.With(slog.String("method", "RemoveFavorite"))

	spotID, err := uuid.Parse(chi.URLParam(r, "spotID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid spot ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid spot ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid spot ID format")
		return
	}

	// Removing is valid even for spots no longer in the catalog, so stale
	// favorites can always be cleaned up.
	if err := h.service.Remove(ctx, spotID); err != nil {
		l.ErrorContext(ctx, "Failed to remove favorite", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	span.SetStatus(codes.Ok, "Favorite removed")
	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Favorite removed"})
}

// ToggleFavorite handles POST /favorites/{spotID}/toggle and reports the
// resulting state.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FavoritesHandler").Start(r.Context(), "ToggleFavorite")
	defer span.End()

	l := h.logger.With(slog.String("method", "ToggleFavorite"))

	spotID, ok := h.resolveSpotID(w, r, l)
	if !ok {
		span.SetStatus(codes.Error, "Invalid or unknown spot")
		return
	}

	fav, err := h.service.Toggle(ctx, spotID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to toggle favorite", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}

	span.SetStatus(codes.Ok, "Favorite toggled")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"spot_id":     spotID,
		"is_favorite": fav,
	})
}

func (h *Handler) resolveSpotID(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	ctx := r.Context()
	spotID, err := uuid.Parse(chi.URLParam(r, "spotID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid spot ID", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid spot ID format")
		return uuid.Nil, false
	}
	sp, err := h.catalog.SpotByID(ctx, spotID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to resolve spot", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return uuid.Nil, false
	}
	if sp == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "Spot not found")
		return uuid.Nil, false
	}
	return spotID, true
}
