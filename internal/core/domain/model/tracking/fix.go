package tracking

import (
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

// Domain errors for location fix operations.
var (
	// ErrRecordedAtIsRequired is returned when attempting to create a fix without a timestamp.
	ErrRecordedAtIsRequired = errs.NewValueIsRequiredError("recordedAt")
	// ErrLocationFixIsNotConstructed is returned when using an improperly initialized LocationFix.
	ErrLocationFixIsNotConstructed = errors.New("LocationFix must be created via NewLocationFix constructor")
)

// LocationFix represents a single observed position of a vehicle at a point in time.
// It is an immutable value object: once created, a fix never changes.
//
// Business rules:
//   - The fix must reference a valid vehicle and a valid geographic point
//   - The recording timestamp must be set (non-zero)
type LocationFix struct {
	// id uniquely identifies the fix
	id kernel.UUID
	// vehicleID identifies the vehicle that reported the position
	vehicleID kernel.UUID
	// point is the reported geographic position
	point kernel.GeoPoint
	// recordedAt is the moment the position was observed
	recordedAt time.Time
	// guard ensures the fix was properly constructed
	guard guard.ConstructorGuard
}

// NewLocationFix creates a new LocationFix with the specified parameters.
// This is the only way to create a valid LocationFix instance.
//
// Parameters:
//   - id: Unique identifier for the fix (must be valid UUID)
//   - vehicleID: Identifier of the reporting vehicle (must be valid UUID)
//   - point: Observed geographic position (must be valid)
//   - recordedAt: Observation timestamp (must be non-zero)
//
// Returns:
//   - LocationFix: A fully initialized, immutable fix
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewLocationFix(
	id kernel.UUID,
	vehicleID kernel.UUID,
	point kernel.GeoPoint,
	recordedAt time.Time,
) (LocationFix, error) {
	fix := LocationFix{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fix.setID(id),
		fix.setVehicleID(vehicleID),
		fix.setPoint(point),
		fix.setRecordedAt(recordedAt),
	); err != nil {
		return LocationFix{}, err
	}

	return fix, nil
}

// Validate checks if the LocationFix was properly constructed using the constructor.
// The zero value of LocationFix is invalid and will fail this validation.
func (f LocationFix) Validate() error {
	return f.guard.Validate(ErrLocationFixIsNotConstructed)
}

// ID returns the unique identifier of the fix.
func (f LocationFix) ID() kernel.UUID {
	return f.id
}

// VehicleID returns the identifier of the vehicle that reported the position.
func (f LocationFix) VehicleID() kernel.UUID {
	return f.vehicleID
}

// Point returns the observed geographic position.
func (f LocationFix) Point() kernel.GeoPoint {
	return f.point
}

// RecordedAt returns the moment the position was observed.
func (f LocationFix) RecordedAt() time.Time {
	return f.recordedAt
}

// IsEqual compares two fixes for equality based on their unique identifiers.
func (f LocationFix) IsEqual(other LocationFix) bool {
	return f.id.IsEqual(other.id)
}

// setID sets the fix's unique identifier with validation.
// This is an internal setter used during construction.
func (f *LocationFix) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	f.id = id
	return nil
}

// setVehicleID sets the reporting vehicle identifier with validation.
// This is an internal setter used during construction.
func (f *LocationFix) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	f.vehicleID = vehicleID
	return nil
}

// setPoint sets the observed position with validation.
// This is an internal setter used during construction.
func (f *LocationFix) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	f.point = point
	return nil
}

// setRecordedAt sets the observation timestamp with validation.
// This is an internal setter used during construction.
func (f *LocationFix) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return ErrRecordedAtIsRequired
	}

	f.recordedAt = recordedAt
	return nil
}
