// Package route provides the domain model for planned delivery routes.
// A Route links a delivery to its origin and destination along with the
// planned distance and estimated travel time.
package route
