package commands

import (
	"context"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
)

// ConfirmDeliveryCommandHandler handles delivery confirmation.
// Marks the delivery as delivered, stamps the completion time, and frees the
// vehicle so it can take the next job. Both updates happen in one transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
// The delivery must be in progress; the status-guarded update makes sure a
// concurrent lifecycle change surfaces as an invalid transition instead of
// being overwritten.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
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

	if err = deliveryEntity.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryRepo.UpdateFrom(ctx, deliveryEntity, delivery.InProgress); err != nil {
		return err
	}

	if err = uow.VehicleRepository().Release(ctx, *deliveryEntity.Vehicle()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
