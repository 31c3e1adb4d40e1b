package commands

import (
	"context"
)

// CancelDeliveryCommandHandler handles delivery cancellation.
// Cancels a pending or in-progress delivery and releases the vehicle when one
// is bound. Both updates happen in one transaction.
type CancelDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCancelDeliveryCommandHandler(uowFactory UoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery cancellation command.
// The stored status at the time the command loaded the delivery guards the
// update, so a concurrent confirmation or failure surfaces as an invalid
// transition instead of being overwritten.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, command CancelDeliveryCommand) error {
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

	priorStatus := deliveryEntity.Status()
	// Cancel clears the vehicle reference, so capture it first for the release
	boundVehicleID := deliveryEntity.Vehicle()
	if err = deliveryEntity.Cancel(); err != nil {
		return err
	}

	if err = deliveryRepo.UpdateFrom(ctx, deliveryEntity, priorStatus); err != nil {
		return err
	}

	if boundVehicleID != nil {
		if err = uow.VehicleRepository().Release(ctx, *boundVehicleID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
