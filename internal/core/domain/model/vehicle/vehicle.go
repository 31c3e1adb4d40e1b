package vehicle

import (
	"errors"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrModelIsRequired is returned when attempting to create a vehicle without a model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrCapacityIsRequired is returned when attempting to create a vehicle with invalid capacity (≤0).
	ErrCapacityIsRequired = errs.NewValueIsRequiredError("capacity")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle represents a delivery vehicle in the fleet.
// It is an aggregate root that manages vehicle identity and availability for assignment.
//
// Key responsibilities:
//   - Managing vehicle identity (ID, plate, model)
//   - Tracking cargo capacity used for assignment ranking
//   - Tracking availability for delivery assignment
//
// Business rules:
//   - Vehicle must have a valid UUID, non-empty plate and model, and positive capacity
//   - A newly registered vehicle is available for assignment
//   - Availability transitions are idempotent
//
// Example usage:
//
//	vehicle, err := NewVehicle(kernel.NewUUID(), "ABC-1234", "Sprinter 416", 1500)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Vehicle is available and ready for assignment
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// plate is the registration plate of the vehicle
	plate string
	// model is the manufacturer model name of the vehicle
	model string
	// capacity is the cargo capacity used for assignment ranking
	capacity int
	// available indicates whether the vehicle can be assigned to a delivery
	available bool
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified parameters.
// This is the only way to register a fresh vehicle in the fleet.
//
// The constructor validates all input parameters. A newly created vehicle
// starts available for assignment.
//
// Parameters:
//   - id: Unique identifier for the vehicle (must be valid UUID)
//   - plate: Registration plate (must be non-empty)
//   - model: Manufacturer model name (must be non-empty)
//   - capacity: Cargo capacity (must be positive)
//
// Returns:
//   - *Vehicle: A fully initialized vehicle, available for assignment
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewVehicle(id kernel.UUID, plate string, model string, capacity int) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setPlate(plate),
		vehicle.setModel(model),
		vehicle.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	vehicle.available = true
	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage.
// Unlike NewVehicle which registers fresh vehicles as available, this constructor
// restores a vehicle to its previously persisted state, including availability.
//
// Parameters:
//   - id: Unique identifier for the vehicle
//   - plate: Registration plate
//   - model: Manufacturer model name
//   - capacity: Cargo capacity
//   - available: Availability flag at the time of persistence
//
// Returns:
//   - *Vehicle: Restored vehicle aggregate
//   - error: Validation error if any parameter is invalid
func RestoreVehicle(
	id kernel.UUID,
	plate string,
	model string,
	capacity int,
	available bool,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setPlate(plate),
		vehicle.setModel(model),
		vehicle.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	vehicle.available = available
	return vehicle, nil
}

// IsEqual compares two vehicles for equality based on their unique identifiers.
// Two vehicles are considered equal if they have the same ID, regardless of other attributes.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// Validate checks if the Vehicle was properly constructed using the NewVehicle constructor.
// The zero value of Vehicle is invalid and will fail this validation.
//
// Returns:
//   - error: ErrVehicleIsNotConstructed if improperly initialized, nil if valid
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the unique identifier of the vehicle.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the registration plate of the vehicle.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Model returns the manufacturer model name of the vehicle.
func (v *Vehicle) Model() string {
	return v.model
}

// Capacity returns the cargo capacity of the vehicle.
// Capacity determines ranking during delivery assignment.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// IsAvailable reports whether the vehicle can be assigned to a delivery.
func (v *Vehicle) IsAvailable() bool {
	return v.available
}

// MarkUnavailable marks the vehicle as busy with a delivery.
// The operation is idempotent: marking an already unavailable vehicle has no effect.
func (v *Vehicle) MarkUnavailable() {
	v.available = false
}

// MarkAvailable returns the vehicle to the assignable pool.
// The operation is idempotent: marking an already available vehicle has no effect.
func (v *Vehicle) MarkAvailable() {
	v.available = true
}

// setID sets the vehicle's unique identifier with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

// setPlate sets the vehicle's registration plate with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	v.plate = plate
	return nil
}

// setModel sets the vehicle's model name with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	v.model = model
	return nil
}

// setCapacity sets the vehicle's cargo capacity with validation.
// This is an internal setter used during vehicle construction.
func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsRequired
	}

	v.capacity = capacity
	return nil
}
