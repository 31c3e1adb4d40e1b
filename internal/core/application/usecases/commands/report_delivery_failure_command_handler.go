package commands

import (
	"context"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
)

// ReportDeliveryFailureCommandHandler handles delivery failure reports.
// Marks the delivery as failed and frees the vehicle so it can take the next
// job. Both updates happen in one transaction.
type ReportDeliveryFailureCommandHandler struct {
	uowFactory UoWFactory
}

// NewReportDeliveryFailureCommandHandler creates a handler for delivery failure reports.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewReportDeliveryFailureCommandHandler(uowFactory UoWFactory) ReportDeliveryFailureCommandHandler {
	return ReportDeliveryFailureCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery failure command.
// The delivery must be in progress; the status-guarded update protects against
// concurrent lifecycle changes. The failed delivery stays failed, no automatic
// retry is scheduled.
func (h ReportDeliveryFailureCommandHandler) Handle(ctx context.Context, command ReportDeliveryFailureCommand) error {
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

	// Fail clears the vehicle reference, so capture it first for the release
	boundVehicleID := deliveryEntity.Vehicle()
	if err = deliveryEntity.Fail(); err != nil {
		return err
	}

	if err = deliveryRepo.UpdateFrom(ctx, deliveryEntity, delivery.InProgress); err != nil {
		return err
	}

	if err = uow.VehicleRepository().Release(ctx, *boundVehicleID); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
