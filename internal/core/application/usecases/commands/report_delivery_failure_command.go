package commands

import (
	"errors"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var ErrReportDeliveryFailureCommandIsNotConstructed = errors.New(
	"ReportDeliveryFailureCommand must be created via NewReportDeliveryFailureCommand constructor",
)

// ReportDeliveryFailureCommand represents a request to mark an in-progress
// delivery as failed. The bound vehicle returns to the assignable pool; the
// failed delivery is not retried automatically.
type ReportDeliveryFailureCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReportDeliveryFailureCommand creates a command to report a failed delivery.
// Validates the delivery reference.
func NewReportDeliveryFailureCommand(deliveryID kernel.UUID) (ReportDeliveryFailureCommand, error) {
	command := ReportDeliveryFailureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDeliveryID(deliveryID); err != nil {
		return ReportDeliveryFailureCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReportDeliveryFailureCommandIsNotConstructed if validation fails.
func (c ReportDeliveryFailureCommand) Validate() error {
	return c.guard.Validate(ErrReportDeliveryFailureCommandIsNotConstructed)
}

// DeliveryID returns the delivery reference from the command.
func (c ReportDeliveryFailureCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *ReportDeliveryFailureCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
