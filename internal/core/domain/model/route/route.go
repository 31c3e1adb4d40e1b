package route

import (
	"errors"
	"fmt"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
)

// Domain errors for route operations.
var (
	// ErrOriginIsRequired is returned when attempting to create a route without an origin.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when attempting to create a route without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// Route represents a planned path for carrying out a delivery.
// It captures the origin and destination labels along with the planned
// distance and estimated travel time.
//
// Route follows these invariants:
//   - Must have a valid unique identifier and delivery reference
//   - Origin and destination must be non-empty
//   - Distance and estimated time must not be negative
//   - Can only be created through NewRoute constructor
type Route struct {
	// id is the unique identifier for the route
	id kernel.UUID

	// deliveryID identifies the delivery this route was planned for
	deliveryID kernel.UUID

	// origin is the human-readable starting point of the route
	origin string

	// destination is the human-readable end point of the route
	destination string

	// distanceKm is the planned travel distance in kilometers
	distanceKm float64

	// etaMinutes is the estimated travel time in minutes
	etaMinutes int

	// isConstructed ensures the route was created via NewRoute
	isConstructed bool
}

// NewRoute creates a new Route instance with validation. This is the only way
// to create a valid Route, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the route (must be valid UUID)
//   - deliveryID: Identifier of the delivery the route serves (must be valid UUID)
//   - origin: Starting point label (must be non-empty)
//   - destination: End point label (must be non-empty)
//   - distanceKm: Planned distance in kilometers (must not be negative)
//   - etaMinutes: Estimated travel time in minutes (must not be negative)
//
// Returns:
//   - *Route: The created route if all validations pass
//   - error: Validation error if any parameter is invalid
func NewRoute(
	id kernel.UUID,
	deliveryID kernel.UUID,
	origin string,
	destination string,
	distanceKm float64,
	etaMinutes int,
) (*Route, error) {
	route := &Route{
		isConstructed: true,
	}

	if err := errors.Join(
		route.setID(id),
		route.setDeliveryID(deliveryID),
		route.setOrigin(origin),
		route.setDestination(destination),
		route.setDistanceKm(distanceKm),
		route.setEtaMinutes(etaMinutes),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// Validate ensures the Route instance was properly constructed through NewRoute.
// This prevents bypassing validation by directly instantiating the struct.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}

	return nil
}

// IsEqual compares two routes by their unique identifiers.
// Routes are considered equal if they have the same ID.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// DeliveryID returns the identifier of the delivery this route serves.
func (r *Route) DeliveryID() kernel.UUID {
	return r.deliveryID
}

// Origin returns the starting point label of the route.
func (r *Route) Origin() string {
	return r.origin
}

// Destination returns the end point label of the route.
func (r *Route) Destination() string {
	return r.destination
}

// DistanceKm returns the planned travel distance in kilometers.
func (r *Route) DistanceKm() float64 {
	return r.distanceKm
}

// EtaMinutes returns the estimated travel time in minutes.
func (r *Route) EtaMinutes() int {
	return r.etaMinutes
}

// setID validates and sets the route's unique identifier.
// This is a private method used only during construction.
func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setDeliveryID validates and sets the served delivery's identifier.
// This is a private method used only during construction.
func (r *Route) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	r.deliveryID = deliveryID
	return nil
}

// setOrigin validates and sets the route's origin label.
// This is a private method used only during construction.
func (r *Route) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	r.origin = origin
	return nil
}

// setDestination validates and sets the route's destination label.
// This is a private method used only during construction.
func (r *Route) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	r.destination = destination
	return nil
}

// setDistanceKm validates and sets the planned distance.
// This is a private method used only during construction.
func (r *Route) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm is invalid",
			fmt.Errorf("%f is negative", distanceKm),
		)
	}
	r.distanceKm = distanceKm
	return nil
}

// setEtaMinutes validates and sets the estimated travel time.
// This is a private method used only during construction.
func (r *Route) setEtaMinutes(etaMinutes int) error {
	if etaMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"etaMinutes is invalid",
			fmt.Errorf("%d is negative", etaMinutes),
		)
	}
	r.etaMinutes = etaMinutes
	return nil
}
