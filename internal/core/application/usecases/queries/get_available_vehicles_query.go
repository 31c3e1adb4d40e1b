// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var (
	ErrGetAvailableVehiclesQueryIsNotConstructed = errors.New(
		"GetAvailableVehiclesQuery must be created via NewGetAvailableVehiclesQuery constructor",
	)
)

// GetAvailableVehiclesQuery retrieves all vehicles currently free for
// assignment. Results come back in dispatch order, so the first row is the
// vehicle the assignment workflow would pick next.
//
// Example:
//
//	query := NewGetAvailableVehiclesQuery()
//	handler := NewGetAvailableVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve available vehicles: %w", err)
//	}
//
//	for _, v := range vehicles {
//	    fmt.Printf("Vehicle %s (%s) capacity %d\n", v.Plate, v.Model, v.Capacity)
//	}
type GetAvailableVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableVehiclesQuery creates a query to retrieve available vehicles.
// This is a parameterless query that fetches the complete free-vehicle list.
func NewGetAvailableVehiclesQuery() GetAvailableVehiclesQuery {
	return GetAvailableVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableVehiclesQueryIsNotConstructed if validation fails.
func (q GetAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableVehiclesQueryIsNotConstructed)
}

// GetAvailableVehiclesQueryResponse represents vehicle information in the read model.
// Contains essential vehicle data for fleet monitoring and dispatch preview.
type GetAvailableVehiclesQueryResponse struct {
	ID       kernel.UUID
	Plate    string
	Model    string
	Capacity int
}
