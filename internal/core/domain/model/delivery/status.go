package delivery

import (
	"fmt"

	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──┬──> Delivered
//	          │                 ├──> Failed
//	          └──> Cancelled <──┘
//
// Delivered, Failed, and Cancelled are terminal states with no further
// transitions allowed.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a delivery is first created.
	// Deliveries in this status are waiting to be assigned to a vehicle.
	Pending

	// InProgress indicates the delivery has been assigned to a vehicle
	// and is being carried out.
	InProgress

	// Delivered indicates the delivery has been successfully completed.
	// This is a terminal state.
	Delivered

	// Failed indicates the delivery attempt did not succeed.
	// This is a terminal state.
	Failed

	// Cancelled indicates the delivery was called off before completion.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Failed:     "failed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Failed:     "failed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a persisted status string back into a Status value.
//
// Returns:
//   - the matching Status for a known string
//   - (Unknown, error) for any unrecognized value
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Delivered, Failed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
//
// Returns:
//   - "pending", "in_progress", "delivered", "failed", or "cancelled" for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered, Failed, and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// ValidateCanHaveVehicle validates the consistency between delivery status and
// vehicle assignment.
//
// Business Rules:
//   - InProgress and Delivered deliveries must have a vehicle assigned
//   - Pending, Failed, and Cancelled deliveries must not have a vehicle,
//     since the vehicle is released when the delivery leaves the road
//
// Parameters:
//   - vehicle: whether the delivery has a vehicle assigned
//
// Returns:
//   - error: validation error if status and vehicle assignment are inconsistent
func (s Status) ValidateCanHaveVehicle(vehicle bool) error {
	if vehicle && (s == Pending || s == Failed || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a vehicle", s.String()),
		)
	}

	if !vehicle && (s == InProgress || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no vehicle", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (vehicle assigned)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Delivery.Assign() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("status", s.String(), InProgress.String())
	}

	return InProgress, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InProgress -> Delivered (delivery confirmed)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Delivery.Complete() to enforce state transitions.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError("status", s.String(), Delivered.String())
	}

	return Delivered, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - InProgress -> Failed (delivery attempt did not succeed)
//
// Returns:
//   - (Failed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Fail() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError("status", s.String(), Failed.String())
	}

	return Failed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (called off before assignment)
//   - InProgress -> Cancelled (called off mid-delivery)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewInvalidTransitionError("status", s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
