// Package vehicle provides domain entities and business logic for fleet vehicle
// management. It implements the Vehicle aggregate root with identity, cargo
// capacity, and availability handling.
//
// Key business rules:
//   - Vehicles must have a valid unique identifier, plate, model, and positive capacity
//   - A freshly registered vehicle is available for delivery assignment
//   - Availability flips when a delivery is assigned and is restored when the
//     delivery reaches a terminal state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package vehicle
