package location

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// Tracker holds the device's last reported position and permission state.
// Everything else treats "no location yet" as a normal condition, so the
// zero value (undetermined, no fix) is ready to use.
type Tracker struct {
	logger *slog.Logger

	mu     sync.RWMutex
	latest *types.Coordinates
	status types.AuthorizationStatus
}

func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{
		logger: logger,
		status: types.AuthorizationUndetermined,
	}
}

// Update records a new fix. Out-of-range coordinates are rejected and the
// previous fix is kept.
func (t *Tracker) Update(c types.Coordinates) error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fix := c
	t.latest = &fix
	return nil
}

// SetStatus records a permission change. Losing permission clears the
// stored fix so stale positions never leak into distance math.
func (t *Tracker) SetStatus(s types.AuthorizationStatus) error {
	if !s.Valid() {
		return errors.New("unknown authorization status")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
	if s == types.AuthorizationDenied || s == types.AuthorizationRestricted {
		t.latest = nil
	}
	return nil
}

// Latest returns the last fix, if one exists.
func (t *Tracker) Latest() (types.Coordinates, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.latest == nil {
		return types.Coordinates{}, false
	}
	return *t.latest, true
}

func (t *Tracker) Status() types.AuthorizationStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}
