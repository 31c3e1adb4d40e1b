package commands

import (
	"errors"
	"fmt"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via its constructor",
	)
	ErrRouteSpecIsNotConstructed = errors.New(
		"RouteSpec must be created via NewRouteSpec constructor",
	)
	ErrRouteOriginIsRequired      = errors.New("route origin is required")
	ErrRouteDestinationIsRequired = errors.New("route destination is required")
)

// RouteSpec carries the optional route parameters for a delivery assignment.
// When supplied, the assignment workflow plans the route in the same
// transaction that binds the vehicle.
type RouteSpec struct { //nolint:recvcheck //using for validation
	origin      string
	destination string
	distanceKm  float64
	etaMinutes  int

	guard guard.ConstructorGuard
}

// NewRouteSpec creates a validated route specification.
// Origin and destination must be non-empty, distance and estimated time
// must not be negative.
func NewRouteSpec(origin string, destination string, distanceKm float64, etaMinutes int) (RouteSpec, error) {
	spec := RouteSpec{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setOrigin(origin),
		spec.setDestination(destination),
		spec.setDistanceKm(distanceKm),
		spec.setEtaMinutes(etaMinutes),
	); err != nil {
		return RouteSpec{}, err
	}

	return spec, nil
}

// Validate ensures the spec was created through the constructor.
func (s RouteSpec) Validate() error {
	return s.guard.Validate(ErrRouteSpecIsNotConstructed)
}

// Origin returns the starting point label of the planned route.
func (s RouteSpec) Origin() string {
	return s.origin
}

// Destination returns the end point label of the planned route.
func (s RouteSpec) Destination() string {
	return s.destination
}

// DistanceKm returns the planned distance in kilometers.
func (s RouteSpec) DistanceKm() float64 {
	return s.distanceKm
}

// EtaMinutes returns the estimated travel time in minutes.
func (s RouteSpec) EtaMinutes() int {
	return s.etaMinutes
}

func (s *RouteSpec) setOrigin(origin string) error {
	if origin == "" {
		return ErrRouteOriginIsRequired
	}

	s.origin = origin
	return nil
}

func (s *RouteSpec) setDestination(destination string) error {
	if destination == "" {
		return ErrRouteDestinationIsRequired
	}

	s.destination = destination
	return nil
}

func (s *RouteSpec) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm is invalid",
			fmt.Errorf("%f is negative", distanceKm),
		)
	}

	s.distanceKm = distanceKm
	return nil
}

func (s *RouteSpec) setEtaMinutes(etaMinutes int) error {
	if etaMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"etaMinutes is invalid",
			fmt.Errorf("%d is negative", etaMinutes),
		)
	}

	s.etaMinutes = etaMinutes
	return nil
}

// AssignDeliveryCommand triggers the assignment of an available vehicle to a
// pending delivery. It either targets a specific delivery or, when created via
// NewAssignFirstPendingCommand, picks the oldest pending delivery.
//
// Example:
//
//	cmd, _ := NewAssignDeliveryCommand(deliveryID, nil)
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoVehicleAvailable) {
//	    log.Printf("Fleet is busy, delivery stays pending")
//	}
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID *kernel.UUID
	routeSpec  *RouteSpec

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a vehicle to a specific
// delivery. The optional routeSpec plans a route in the same transaction.
func NewAssignDeliveryCommand(deliveryID kernel.UUID, routeSpec *RouteSpec) (AssignDeliveryCommand, error) {
	command := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setRouteSpec(routeSpec),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return command, nil
}

// NewAssignFirstPendingCommand creates a command that assigns a vehicle to the
// oldest pending delivery. Used by the background assignment job.
func NewAssignFirstPendingCommand() AssignDeliveryCommand {
	return AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through a constructor.
// Returns ErrAssignDeliveryCommandIsNotConstructed if validation fails.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the targeted delivery's ID.
// Returns nil when the command targets the oldest pending delivery.
func (c AssignDeliveryCommand) DeliveryID() *kernel.UUID {
	return c.deliveryID
}

// RouteSpec returns the optional route parameters.
// Returns nil when no route should be planned during assignment.
func (c AssignDeliveryCommand) RouteSpec() *RouteSpec {
	return c.routeSpec
}

func (c *AssignDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = &deliveryID
	return nil
}

func (c *AssignDeliveryCommand) setRouteSpec(routeSpec *RouteSpec) error {
	if routeSpec == nil {
		return nil
	}

	if err := routeSpec.Validate(); err != nil {
		return err
	}

	c.routeSpec = routeSpec
	return nil
}
