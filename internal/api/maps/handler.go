package maps

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-campus-study-spots/internal/api"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/catalog"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	catalog catalog.Service
	center  types.Coordinates
}

func NewHandler(catalogSvc catalog.Service, center types.Coordinates, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		catalog: catalogSvc,
		center:  center,
	}
}

// GetMarkers handles GET /map/markers - campus center plus every building
// and spot pin.
func (h *Handler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("MapsHandler").Start(r.Context(), "GetMarkers")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetMarkers"))

	buildings, err := h.catalog.Buildings(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch buildings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Catalog not available")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return
	}
	spots, err := h.catalog.Spots(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch spots", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Catalog not available")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return
	}

	span.SetStatus(codes.Ok, "Markers returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"center":  h.center,
		"markers": BuildMarkers(buildings, spots),
	})
}

// GetDirections handles GET /map/directions?spot_id=... - an Apple Maps
// walking link to the spot.
func (h *Handler) GetDirections(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("MapsHandler").Start(r.Context(), "GetDirections")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetDirections"))

	spotID, err := uuid.Parse(r.URL.Query().Get("spot_id"))
	if err != nil {
		l.WarnContext(ctx, "Invalid spot ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid spot ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid spot ID format")
		return
	}

	sp, err := h.catalog.SpotByID(ctx, spotID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to resolve spot", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Catalog not available")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return
	}
	if sp == nil {
		span.SetStatus(codes.Error, "Spot not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Spot not found")
		return
	}

	span.SetStatus(codes.Ok, "Directions returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"spot_id": sp.ID,
		"url":     DirectionsURL(sp.Coordinates(), sp.Name),
	})
}
