// Package tracking provides the domain model for vehicle position history.
// It implements the LocationFix value object, a single immutable observation
// of where a vehicle was at a given moment.
//
// Fixes are append-only: the history of a vehicle is the ordered sequence of
// its fixes, and the most recent fix is the vehicle's current position.
package tracking
