package commands

import (
	"context"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for delivery registration.
// Creates and persists new pending deliveries awaiting vehicle assignment.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
// Requires a DeliveryUoWFactory for transactional persistence operations.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Creates a new pending delivery stamped with the current time and persists it
// within a transaction. Automatically rolls back on any error.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	deliveryEntity, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.ProductID(),
		cmd.DistributionPointID(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, deliveryEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
