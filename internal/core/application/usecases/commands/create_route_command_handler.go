package commands

import (
	"context"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles route planning for existing deliveries.
// Creates the route and binds it to the delivery in one transaction.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route planning.
// Requires a RouteUoWFactory for transactional persistence operations.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command.
// Loads the delivery, plans the route, and links it onto the delivery. A
// delivery that already carries a route rejects the link with an invalid
// state error.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, command CreateRouteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	deliveryEntity, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	spec := command.RouteSpec()
	routeEntity, err := route.NewRoute(
		command.RouteID(),
		deliveryEntity.ID(),
		spec.Origin(),
		spec.Destination(),
		spec.DistanceKm(),
		spec.EtaMinutes(),
	)
	if err != nil {
		return err
	}

	if err = deliveryEntity.AttachRoute(routeEntity.ID()); err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, routeEntity); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, deliveryEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
