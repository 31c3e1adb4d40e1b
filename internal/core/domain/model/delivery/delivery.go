package delivery

import (
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created through
	// the NewDelivery factory method. This ensures all deliveries are properly validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrCreatedAtIsRequired is returned when attempting to create a delivery without
	// a creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")

	// ErrDeliveredAtIsRequired is returned when attempting to complete a delivery without
	// a completion timestamp.
	ErrDeliveredAtIsRequired = errs.NewValueIsRequiredError("deliveredAt")
)

// Delivery represents a delivery job in the system. It is the aggregate root that manages
// the delivery lifecycle from creation through vehicle assignment to a terminal state.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier, product, and distribution point
//   - Status transitions follow defined business rules
//   - A vehicle is attached exactly when the status requires one
//   - The completion timestamp is set only for delivered deliveries
//   - Can only be created through NewDelivery constructor
//
// The Delivery struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// productID identifies the product being delivered
	productID kernel.UUID

	// distributionPointID identifies the origin distribution point
	distributionPointID kernel.UUID

	// vehicleID is the assigned vehicle's ID (nil if unassigned)
	vehicleID *kernel.UUID

	// routeID is the linked route's ID (nil if no route planned yet)
	routeID *kernel.UUID

	// status represents the current state in the delivery lifecycle
	status Status

	// createdAt is the moment the delivery was registered
	createdAt time.Time

	// deliveredAt is the completion moment (nil until delivered)
	deliveredAt *time.Time

	// isConstructed ensures the delivery was created via NewDelivery
	isConstructed bool
}

// NewDelivery creates a new Delivery instance with validation. This is the only way
// to create a valid Delivery, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the delivery (must be valid UUID)
//   - productID: Identifier of the product being delivered (must be valid UUID)
//   - distributionPointID: Identifier of the origin distribution point (must be valid UUID)
//   - createdAt: Registration timestamp (must be non-zero)
//
// Returns:
//   - *Delivery: The created delivery if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor validates all inputs and ensures the delivery is created
// with Pending status and no vehicle assigned.
func NewDelivery(
	id kernel.UUID,
	productID kernel.UUID,
	distributionPointID kernel.UUID,
	createdAt time.Time,
) (*Delivery, error) {
	delivery := &Delivery{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setProductID(productID),
		delivery.setDistributionPointID(distributionPointID),
		delivery.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
// Unlike NewDelivery which creates fresh pending deliveries, this constructor
// restores a delivery to its previously persisted state.
//
// In addition to field validation, the constructor checks that the persisted
// status is consistent with vehicle assignment: a pending delivery cannot carry
// a vehicle, and an in-progress one must.
//
// Returns:
//   - *Delivery: Restored delivery aggregate
//   - error: Validation error if any parameter is invalid or the state is inconsistent
func RestoreDelivery(
	id kernel.UUID,
	productID kernel.UUID,
	distributionPointID kernel.UUID,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
	vehicleID *kernel.UUID,
	routeID *kernel.UUID,
) (*Delivery, error) {
	delivery := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setProductID(productID),
		delivery.setDistributionPointID(distributionPointID),
		delivery.setCreatedAt(createdAt),
		delivery.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveVehicle(vehicleID != nil); err != nil {
		return nil, err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return nil, err
		}
		delivery.vehicleID = vehicleID
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return nil, err
		}
		delivery.routeID = routeID
	}
	delivery.deliveredAt = deliveredAt

	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed through NewDelivery.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the delivery is valid
//   - ErrDeliveryIsNotConstructed if the delivery was not created via NewDelivery
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
// Deliveries are considered equal if they have the same ID.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ProductID returns the identifier of the product being delivered.
func (d *Delivery) ProductID() kernel.UUID {
	return d.productID
}

// DistributionPointID returns the identifier of the origin distribution point.
func (d *Delivery) DistributionPointID() kernel.UUID {
	return d.distributionPointID
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the registration timestamp of the delivery.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// DeliveredAt returns the completion timestamp.
// Returns nil unless the delivery has been delivered.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Vehicle returns the assigned vehicle's ID.
// Returns nil if no vehicle is assigned.
func (d *Delivery) Vehicle() *kernel.UUID {
	return d.vehicleID
}

// Route returns the linked route's ID.
// Returns nil if no route has been planned.
func (d *Delivery) Route() *kernel.UUID {
	return d.routeID
}

// Assign assigns the delivery to a vehicle and moves the status to InProgress.
//
// This method enforces the following business rules:
//   - The vehicle ID must be valid
//   - The delivery must be in Pending status
//
// Parameters:
//   - vehicleID: The ID of the vehicle to assign
//
// Returns:
//   - nil on successful assignment
//   - error if vehicle ID is invalid or status transition is not allowed
func (d *Delivery) Assign(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.vehicleID = &vehicleID
	return nil
}

// Complete marks the delivery as delivered and records the completion moment.
//
// This method enforces the following business rules:
//   - The delivery must be in InProgress status
//   - The completion timestamp must be non-zero
//   - Delivered is a terminal state with no further transitions
//
// Parameters:
//   - deliveredAt: The completion moment
//
// Returns:
//   - nil on successful completion
//   - error if the delivery is not in InProgress status or the timestamp is zero
func (d *Delivery) Complete(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return ErrDeliveredAtIsRequired
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.deliveredAt = &deliveredAt
	return nil
}

// Fail marks an in-progress delivery as failed.
// Failed is a terminal state with no further transitions.
// The vehicle reference is cleared, terminal deliveries hold no vehicle.
//
// Returns:
//   - nil on success
//   - error if the delivery is not in InProgress status
func (d *Delivery) Fail() error {
	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.vehicleID = nil
	return nil
}

// Cancel calls the delivery off.
// Cancellation is allowed while the delivery is Pending or InProgress.
// Cancelled is a terminal state with no further transitions.
// The vehicle reference is cleared, terminal deliveries hold no vehicle.
//
// Returns:
//   - nil on success
//   - error if the delivery is already in a terminal state
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.vehicleID = nil
	return nil
}

// AttachRoute links a planned route to the delivery.
// A delivery can have at most one route.
//
// Parameters:
//   - routeID: The ID of the planned route
//
// Returns:
//   - nil on success
//   - error if the route ID is invalid or a route is already linked
func (d *Delivery) AttachRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	if d.routeID != nil {
		return errs.NewInvalidStateError("delivery already has a route")
	}

	d.routeID = &routeID
	return nil
}

// setID validates and sets the delivery's unique identifier.
// This is a private method used only during construction.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setProductID validates and sets the delivered product's identifier.
// This is a private method used only during construction.
func (d *Delivery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	d.productID = productID
	return nil
}

// setDistributionPointID validates and sets the origin distribution point identifier.
// This is a private method used only during construction.
func (d *Delivery) setDistributionPointID(distributionPointID kernel.UUID) error {
	if err := distributionPointID.Validate(); err != nil {
		return err
	}
	d.distributionPointID = distributionPointID
	return nil
}

// setCreatedAt validates and sets the registration timestamp.
// This is a private method used only during construction.
func (d *Delivery) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	d.createdAt = createdAt
	return nil
}

// setStatus validates and sets the delivery status.
// This is a private method used only during restoration.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
