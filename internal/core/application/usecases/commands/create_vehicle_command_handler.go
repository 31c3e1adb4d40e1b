package commands

import (
	"context"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/tracking"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for vehicle registration.
// Creates and persists new vehicle entities ready for delivery assignment. When
// the command carries a starting position, it is recorded as the vehicle's
// first location fix in the same transaction.
//
// Example:
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	cmd, _ := NewCreateVehicleCommand("ABC-1234", "Sprinter 416", 1500)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("vehicle registration failed: %w", err)
//	}
type CreateVehicleCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
// Requires a TrackingUoWFactory so registration can persist the vehicle and
// its optional initial fix atomically.
func NewCreateVehicleCommandHandler(uowFactory TrackingUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command.
// Creates a new vehicle entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	vehicleEntity, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Plate(), cmd.Model(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = vehicleRepo.Add(ctx, vehicleEntity); err != nil {
		return err
	}

	if point := cmd.InitialPoint(); point != nil {
		fix, fixErr := tracking.NewLocationFix(
			kernel.NewUUID(),
			vehicleEntity.ID(),
			*point,
			time.Now().UTC(),
		)
		if fixErr != nil {
			return fixErr
		}

		if err = uow.LocationFixRepository().Add(ctx, fix); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
