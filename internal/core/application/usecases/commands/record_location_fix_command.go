package commands

import (
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var (
	ErrRecordLocationFixCommandIsNotConstructed = errors.New(
		"RecordLocationFixCommand must be created via NewRecordLocationFixCommand constructor",
	)
	ErrRecordedAtIsRequired = errors.New("recordedAt is required")
)

// RecordLocationFixCommand represents a request to append a position
// observation to a vehicle's tracking history.
//
// Example:
//
//	cmd, err := NewRecordLocationFixCommand(vehicleID, -23.5505, -46.6333, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid fix data: %w", err)
//	}
//
//	handler := NewRecordLocationFixCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record fix: %w", err)
//	}
type RecordLocationFixCommand struct { //nolint:recvcheck //using for validation
	fixID      kernel.UUID
	vehicleID  kernel.UUID
	point      kernel.GeoPoint
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewRecordLocationFixCommand creates a command to record a position observation.
// Automatically generates a unique ID for the fix.
// Validates the vehicle reference, the coordinates, and the timestamp.
func NewRecordLocationFixCommand(
	vehicleID kernel.UUID,
	latitude float64,
	longitude float64,
	recordedAt time.Time,
) (RecordLocationFixCommand, error) {
	command := RecordLocationFixCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFixID(kernel.NewUUID()),
		command.setVehicleID(vehicleID),
		command.setPoint(latitude, longitude),
		command.setRecordedAt(recordedAt),
	); err != nil {
		return RecordLocationFixCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordLocationFixCommandIsNotConstructed if validation fails.
func (c RecordLocationFixCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationFixCommandIsNotConstructed)
}

// FixID returns the generated fix ID from the command.
func (c RecordLocationFixCommand) FixID() kernel.UUID {
	return c.fixID
}

// VehicleID returns the vehicle reference from the command.
func (c RecordLocationFixCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Point returns the validated coordinates from the command.
func (c RecordLocationFixCommand) Point() kernel.GeoPoint {
	return c.point
}

// RecordedAt returns the observation timestamp from the command.
func (c RecordLocationFixCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *RecordLocationFixCommand) setFixID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.fixID = id
	return nil
}

func (c *RecordLocationFixCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *RecordLocationFixCommand) setPoint(latitude, longitude float64) error {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *RecordLocationFixCommand) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return ErrRecordedAtIsRequired
	}

	c.recordedAt = recordedAt
	return nil
}
