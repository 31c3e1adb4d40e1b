package ports

import (
	"context"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for planned routes.
type RouteRepository interface {
	// Add persists a new route to storage.
	// The route must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetByDeliveryID retrieves the route planned for a given delivery.
	GetByDeliveryID(ctx context.Context, deliveryID kernel.UUID) (*route.Route, error)
}
