package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-campus-study-spots/internal/api"
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

// GetBuildings handles GET /buildings - returns every campus building.
func (h *Handler) GetBuildings(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetBuildings")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetBuildings"))

	buildings, err := h.service.Buildings(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve buildings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return
	}

	span.SetStatus(codes.Ok, "Buildings returned")
	api.WriteJSONResponse(w, r, http.StatusOK, buildings)
}

// GetBuilding handles GET /buildings/{buildingID}.
func (h *Handler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetBuilding")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetBuilding"))

	id, err := uuid.Parse(chi.URLParam(r, "buildingID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid building ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid building ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid building ID format")
		return
	}

	building, err := h.service.BuildingByID(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve building", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return
	}
	if building == nil {
		span.SetStatus(codes.Error, "Building not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Building not found")
		return
	}

	span.SetStatus(codes.Ok, "Building returned")
	api.WriteJSONResponse(w, r, http.StatusOK, building)
}

// GetBuildingSpots handles GET /buildings/{buildingID}/spots.
func (h *Handler) GetBuildingSpots(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetBuildingSpots")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetBuildingSpots"))

	id, err := uuid.Parse(chi.URLParam(r, "buildingID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid building ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid building ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid building ID format")
		return
	}

	spots, err := h.service.SpotsInBuilding(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve spots for building", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Catalog not available")
		return
	}

	span.SetStatus(codes.Ok, "Building spots returned")
	api.WriteJSONResponse(w, r, http.StatusOK, spots)
}
