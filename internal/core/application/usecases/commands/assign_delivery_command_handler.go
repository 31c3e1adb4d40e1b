package commands

import (
	"context"
	"errors"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/route"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/vehicle"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/services"
	"github.com/Gumierow/GIS-ISI/internal/core/ports"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
)

// ErrNoPendingDelivery is returned when the assignment workflow finds no
// delivery waiting for a vehicle. Expected during idle periods.
var ErrNoPendingDelivery = errors.New("no pending delivery found")

// AssignDeliveryResult carries the aggregates touched by a successful assignment.
type AssignDeliveryResult struct {
	// Delivery is the assigned delivery, now in progress.
	Delivery *delivery.Delivery
	// Vehicle is the vehicle bound to the delivery, now unavailable.
	Vehicle *vehicle.Vehicle
	// Route is the route planned during assignment, nil if none was requested.
	Route *route.Route
}

// AssignDeliveryCommandHandler orchestrates the vehicle assignment process.
// Finds the target delivery, ranks available vehicles by capacity, and reserves
// the best candidate. Ensures transactional consistency when updating the
// delivery, the vehicle, and the optional route.
//
// Concurrent assignments of the same vehicle are resolved by the repository's
// guarded reservation: only one transaction wins, the others fall through to
// the next candidate. Concurrent assignments of the same delivery are resolved
// by the status-guarded delivery update.
//
// Example:
//
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	cmd := NewAssignFirstPendingCommand()
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingDelivery):
//	    log.Println("Nothing to assign")
//	case errors.Is(err, services.ErrNoVehicleAvailable):
//	    log.Println("All vehicles are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Assigned vehicle %s", result.Vehicle.ID())
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignDeliveryCommandHandler(uowFactory UoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery assignment command.
// Loads the target (or oldest pending) delivery, ranks the available fleet,
// reserves the first winnable candidate, and binds it to the delivery within
// a single transaction. Returns ErrNoPendingDelivery when there is nothing to
// assign and services.ErrNoVehicleAvailable when the fleet has no capacity;
// in both cases the delivery (if any) stays pending.
func (h AssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	command AssignDeliveryCommand,
) (AssignDeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return AssignDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	deliveryEntity, err := h.findDelivery(ctx, command, deliveryRepo)
	if err != nil {
		return AssignDeliveryResult{}, err
	}

	// A non-pending delivery cannot be assigned, so it must be rejected
	// before any vehicle is reserved.
	if deliveryEntity.Status() != delivery.Pending {
		return AssignDeliveryResult{}, errs.NewInvalidTransitionError(
			"status", deliveryEntity.Status().String(), delivery.InProgress.String(),
		)
	}

	reserved, err := h.reserveBestVehicle(ctx, uow.VehicleRepository())
	if err != nil {
		return AssignDeliveryResult{}, err
	}

	if err = deliveryEntity.Assign(reserved.ID()); err != nil {
		return AssignDeliveryResult{}, err
	}

	plannedRoute, err := h.planRoute(ctx, command, deliveryEntity, uow.RouteRepository())
	if err != nil {
		return AssignDeliveryResult{}, err
	}

	if err = deliveryRepo.UpdateFrom(ctx, deliveryEntity, delivery.Pending); err != nil {
		return AssignDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignDeliveryResult{}, err
	}

	return AssignDeliveryResult{
		Delivery: deliveryEntity,
		Vehicle:  reserved,
		Route:    plannedRoute,
	}, nil
}

// findDelivery resolves the delivery targeted by the command.
// A targeted lookup surfaces NotFound to the caller; the oldest-pending lookup
// converts NotFound into ErrNoPendingDelivery.
func (h AssignDeliveryCommandHandler) findDelivery(
	ctx context.Context,
	command AssignDeliveryCommand,
	deliveryRepo ports.DeliveryRepository,
) (*delivery.Delivery, error) {
	if command.DeliveryID() != nil {
		return deliveryRepo.Get(ctx, *command.DeliveryID())
	}

	deliveryEntity, err := deliveryRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingDelivery
	}
	if err != nil {
		return nil, err
	}

	return deliveryEntity, nil
}

// reserveBestVehicle walks the ranked candidates and reserves the first one
// that is still free at reservation time. Losing a reservation race moves on
// to the next candidate rather than failing the whole assignment.
func (h AssignDeliveryCommandHandler) reserveBestVehicle(
	ctx context.Context,
	vehicleRepo ports.VehicleRepository,
) (*vehicle.Vehicle, error) {
	availableVehicles, err := vehicleRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := services.NewFleetDispatcher().RankVehicles(availableVehicles)
	if err != nil {
		return nil, err
	}

	for _, candidate := range ranked {
		won, reserveErr := vehicleRepo.Reserve(ctx, candidate.ID())
		if reserveErr != nil {
			return nil, reserveErr
		}

		if won {
			candidate.MarkUnavailable()
			return candidate, nil
		}
	}

	return nil, services.ErrNoVehicleAvailable
}

// planRoute creates and links the optional route requested by the command.
func (h AssignDeliveryCommandHandler) planRoute(
	ctx context.Context,
	command AssignDeliveryCommand,
	deliveryEntity *delivery.Delivery,
	routeRepo ports.RouteRepository,
) (*route.Route, error) {
	spec := command.RouteSpec()
	if spec == nil {
		return nil, nil //nolint:nilnil // no route requested
	}

	plannedRoute, err := route.NewRoute(
		kernel.NewUUID(),
		deliveryEntity.ID(),
		spec.Origin(),
		spec.Destination(),
		spec.DistanceKm(),
		spec.EtaMinutes(),
	)
	if err != nil {
		return nil, err
	}

	if err = deliveryEntity.AttachRoute(plannedRoute.ID()); err != nil {
		return nil, err
	}

	if err = routeRepo.Add(ctx, plannedRoute); err != nil {
		return nil, err
	}

	return plannedRoute, nil
}
