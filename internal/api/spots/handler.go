package spots

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

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

// SearchSpots handles GET /spots.
//
// Query parameters:
//
//	q         free-text search
//	building  building UUID filter
//	features  comma-separated feature tags, all required
//	sort      "", "distance", "name" or "open"
func (h *Handler) SearchSpots(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SpotsHandler").Start(r.Context(), "SearchSpots")
	defer span.End()

	l := h.logger.With(slog.String("method", "SearchSpots"))

	q := types.SearchFilterState{
		SearchText: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("building"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			l.WarnContext(ctx, "Invalid building filter", slog.String("value", raw))
			span.SetStatus(codes.Error, "Invalid building filter")
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid building ID format")
			return
		}
		q.SelectedBuildingID = &id
	}
	if raw := r.URL.Query().Get("features"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				q.SelectedFeatures = append(q.SelectedFeatures, f)
			}
		}
	}

	mode := types.SortMode(r.URL.Query().Get("sort"))
	switch mode {
	case types.SortModeNone, types.SortModeDistance, types.SortModeName, types.SortModeOpenNow:
	default:
		span.SetStatus(codes.Error, "Invalid sort mode")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid sort mode")
		return
	}

	views, err := h.service.Search(ctx, q, mode)
	if err != nil {
		l.ErrorContext(ctx, "Search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Search not available")
		return
	}

	span.SetStatus(codes.Ok, "Search results returned")
	api.WriteJSONResponse(w, r, http.StatusOK, views)
}

// GetSpot handles GET /spots/{spotID} - the annotated detail view.
func (h *Handler) GetSpot(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SpotsHandler").Start(r.Context(), "GetSpot")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetSpot"))

	id, err := uuid.Parse(chi.URLParam(r, "spotID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid spot ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid spot ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid spot ID format")
		return
	}

	view, err := h.service.SpotDetail(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load spot detail", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return
	}
	if view == nil {
		span.SetStatus(codes.Error, "Spot not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Spot not found")
		return
	}

	span.SetStatus(codes.Ok, "Spot detail returned")
	api.WriteJSONResponse(w, r, http.StatusOK, view)
}
