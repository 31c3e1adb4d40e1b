package commands

import (
	"errors"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to plan a route for an existing
// delivery. A delivery can carry at most one route.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID    kernel.UUID
	deliveryID kernel.UUID
	routeSpec  RouteSpec

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to plan a route for a delivery.
// Automatically generates a unique ID for the route.
// Validates the delivery reference and the route parameters.
func NewCreateRouteCommand(deliveryID kernel.UUID, routeSpec RouteSpec) (CreateRouteCommand, error) {
	command := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(kernel.NewUUID()),
		command.setDeliveryID(deliveryID),
		command.setRouteSpec(routeSpec),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRouteCommandIsNotConstructed if validation fails.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the generated route ID from the command.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// DeliveryID returns the delivery reference from the command.
func (c CreateRouteCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RouteSpec returns the route parameters from the command.
func (c CreateRouteCommand) RouteSpec() RouteSpec {
	return c.routeSpec
}

func (c *CreateRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.routeID = id
	return nil
}

func (c *CreateRouteCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateRouteCommand) setRouteSpec(routeSpec RouteSpec) error {
	if err := routeSpec.Validate(); err != nil {
		return err
	}

	c.routeSpec = routeSpec
	return nil
}
