// Package kernel provides core domain primitives for the fleet management system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation, comparison,
//     and deterministic ordering capabilities
//   - GeoPoint: a value object representing a validated WGS84 coordinate pair
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
