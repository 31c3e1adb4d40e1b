// Package delivery provides domain entities and business logic for delivery
// lifecycle management. It implements the Delivery aggregate root and its
// Status state machine.
//
// The package includes:
//   - Delivery: The aggregate root tracking a delivery job from registration
//     through vehicle assignment to a terminal state
//   - Status: A state machine enforcing the pending -> in_progress ->
//     delivered/failed workflow, with cancellation from non-terminal states
//
// Key business rules:
//   - A delivery starts pending and carries no vehicle
//   - Assignment attaches a vehicle and moves the delivery in progress
//   - Delivered, failed, and cancelled are terminal states
//   - The completion timestamp is recorded only when the delivery is confirmed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
