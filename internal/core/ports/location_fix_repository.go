package ports

import (
	"context"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/tracking"
)

// LocationFixRepository defines the persistence contract for vehicle position history.
// Fixes are append-only: once recorded, a fix is never updated or removed.
type LocationFixRepository interface {
	// Add persists a new location fix.
	// The fix must be valid and is expected to be newer than the latest fix
	// already stored for the same vehicle.
	Add(ctx context.Context, fix tracking.LocationFix) error

	// GetLatest retrieves the most recent fix for a vehicle.
	// Returns an object-not-found error if the vehicle has no fixes yet.
	GetLatest(ctx context.Context, vehicleID kernel.UUID) (tracking.LocationFix, error)

	// GetRange retrieves the fixes recorded for a vehicle inside the
	// [from, to] window, ordered oldest first. Either bound may be the zero
	// time to leave that side of the window open.
	GetRange(ctx context.Context, vehicleID kernel.UUID, from, to time.Time) ([]tracking.LocationFix, error)
}
