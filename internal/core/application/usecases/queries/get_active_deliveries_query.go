package queries

import (
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var (
	ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
		"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
	)
)

// GetActiveDeliveriesQuery retrieves all deliveries that have not reached a
// terminal state. Returns deliveries in pending or in-progress status for
// monitoring and management.
//
// Example:
//
//	query := NewGetActiveDeliveriesQuery()
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active deliveries: %w", err)
//	}
//
//	fmt.Printf("Found %d deliveries in flight\n", len(deliveries))
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve non-terminal deliveries.
// This is a parameterless query that fetches all pending and in-progress deliveries.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDeliveriesQueryIsNotConstructed if validation fails.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse represents in-flight delivery information.
// VehicleID and RouteID are nil for deliveries that are still pending.
type GetActiveDeliveriesQueryResponse struct {
	ID                  kernel.UUID
	ProductID           kernel.UUID
	DistributionPointID kernel.UUID
	Status              delivery.Status
	VehicleID           *kernel.UUID
	RouteID             *kernel.UUID
	CreatedAt           time.Time
}
