// Package ports defines repository interfaces for the fleet domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Provides methods for storing, retrieving, and querying fleet vehicles,
// including guarded availability updates used during delivery assignment.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// The vehicle must exist in the repository and be valid.
	Update(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle aggregate and locks its row until the
	// surrounding transaction commits or rolls back. Concurrent callers block
	// on the lock, so writes keyed on the vehicle execute one at a time.
	// Must be called inside a transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllAvailable retrieves all vehicles currently free for assignment.
	GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)

	// Reserve atomically flips the vehicle from available to unavailable.
	// The update only succeeds if the vehicle is still available at the time
	// it executes, so two concurrent reservations of the same vehicle cannot
	// both win.
	//
	// Returns:
	//   - (true, nil) if the reservation won
	//   - (false, nil) if the vehicle was already taken
	//   - (false, error) on storage failure
	Reserve(ctx context.Context, id kernel.UUID) (bool, error)

	// Release returns a vehicle to the assignable pool.
	// Releasing an already available vehicle is a no-op.
	Release(ctx context.Context, id kernel.UUID) error
}
