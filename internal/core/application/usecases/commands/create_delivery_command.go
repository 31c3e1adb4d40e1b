package commands

import (
	"errors"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery job.
// The delivery starts pending and waits for the assignment workflow to pick
// a vehicle for it.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(productID, distributionPointID)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID          kernel.UUID
	productID           kernel.UUID
	distributionPointID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Automatically generates a unique ID for the delivery.
// Validates the product and distribution point references.
func NewCreateDeliveryCommand(productID kernel.UUID, distributionPointID kernel.UUID) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(kernel.NewUUID()),
		command.setProductID(productID),
		command.setDistributionPointID(distributionPointID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the generated delivery ID from the command.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ProductID returns the product reference from the command.
func (c CreateDeliveryCommand) ProductID() kernel.UUID {
	return c.productID
}

// DistributionPointID returns the distribution point reference from the command.
func (c CreateDeliveryCommand) DistributionPointID() kernel.UUID {
	return c.distributionPointID
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *CreateDeliveryCommand) setDistributionPointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.distributionPointID = id
	return nil
}
