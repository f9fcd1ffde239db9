package location

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-campus-study-spots/internal/api"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	tracker *Tracker
}

func NewHandler(tracker *Tracker, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		tracker: tracker,
	}
}

// UpdateLocation handles POST /location - a device fix and/or permission
// change.
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LocationHandler").Start(r.Context(), "UpdateLocation")
	defer span.End()

	l := h.logger.With(slog.String("method", "UpdateLocation"))

	var update types.LocationUpdate
	if err := api.DecodeJSONBody(w, r, &update); err != nil {
		l.WarnContext(ctx, "Invalid location payload", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid payload")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if update.Status != nil {
		if err := h.tracker.SetStatus(*update.Status); err != nil {
			l.WarnContext(ctx, "Invalid authorization status", slog.Any("error", err))
			span.SetStatus(codes.Error, "Invalid status")
			api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown authorization status")
			return
		}
		// A status-only update carries no fix.
		if *update.Status == types.AuthorizationDenied || *update.Status == types.AuthorizationRestricted {
			span.SetStatus(codes.Ok, "Status recorded")
			api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Status recorded"})
			return
		}
	}

	if err := h.tracker.Update(types.Coordinates{Latitude: update.Latitude, Longitude: update.Longitude}); err != nil {
		if errors.Is(err, ErrInvalidCoordinates) {
			span.SetStatus(codes.Error, "Invalid coordinates")
			api.ErrorResponse(w, r, http.StatusBadRequest, "Coordinates out of range")
			return
		}
		l.ErrorContext(ctx, "Failed to record location", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Tracker update failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to record location")
		return
	}

	span.SetStatus(codes.Ok, "Location recorded")
	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Location recorded"})
}

// GetLocation handles GET /location - the last known fix and permission
// state.
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("LocationHandler").Start(r.Context(), "GetLocation")
	defer span.End()

	resp := map[string]interface{}{
		"status": h.tracker.Status(),
	}
	if c, ok := h.tracker.Latest(); ok {
		resp["coordinates"] = c
	}

	span.SetStatus(codes.Ok, "Location returned")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
