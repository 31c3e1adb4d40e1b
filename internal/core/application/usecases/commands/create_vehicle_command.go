package commands

import (
	"errors"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrPlateIsRequired   = errors.New("plate is required")
	ErrModelIsRequired   = errors.New("model is required")
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateVehicleCommand represents a request to register a new vehicle in the fleet.
// Encapsulates all data needed to create a vehicle entity available for assignment.
//
// Example:
//
//	cmd, err := NewCreateVehicleCommand("ABC-1234", "Sprinter 416", 1500)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
//	fmt.Printf("Registered vehicle with ID: %s", cmd.VehicleID())
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.UUID
	plate        string
	model        string
	capacity     int
	initialPoint *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Automatically generates a unique ID for the vehicle.
// Validates that plate and model are not empty and capacity is positive.
func NewCreateVehicleCommand(plate string, model string, capacity int) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(kernel.NewUUID()),
		command.setPlate(plate),
		command.setModel(model),
		command.setCapacity(capacity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return command, nil
}

// NewCreateVehicleCommandWithLocation creates a registration command that also
// records the vehicle's starting position as its first location fix.
func NewCreateVehicleCommandWithLocation(
	plate string,
	model string,
	capacity int,
	latitude float64,
	longitude float64,
) (CreateVehicleCommand, error) {
	command, err := NewCreateVehicleCommand(plate, model, capacity)
	if err != nil {
		return CreateVehicleCommand{}, err
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return CreateVehicleCommand{}, err
	}

	command.initialPoint = &point
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the generated vehicle ID from the command.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the vehicle plate from the command.
func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

// Model returns the vehicle model from the command.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Capacity returns the vehicle capacity from the command.
func (c CreateVehicleCommand) Capacity() int {
	return c.capacity
}

// InitialPoint returns the starting position to record for the vehicle,
// nil when registration does not report one.
func (c CreateVehicleCommand) InitialPoint() *kernel.GeoPoint {
	return c.initialPoint
}

func (c *CreateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *CreateVehicleCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
