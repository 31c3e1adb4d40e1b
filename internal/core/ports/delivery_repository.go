package ports

import (
	"context"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying deliveries based on
// their lifecycle status.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateFrom persists changes to an existing delivery aggregate, but only
	// if the stored status still matches fromStatus. This guards lifecycle
	// transitions against concurrent writers: the losing writer observes an
	// invalid transition error instead of silently overwriting state.
	UpdateFrom(ctx context.Context, aggregate *delivery.Delivery, fromStatus delivery.Status) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetFirstInPendingStatus retrieves the oldest delivery still waiting for
	// a vehicle. Used by the assignment workflow to pick the next job.
	GetFirstInPendingStatus(ctx context.Context) (*delivery.Delivery, error)

	// GetAllInProgress retrieves all deliveries currently assigned to vehicles
	// but not yet finished.
	GetAllInProgress(ctx context.Context) ([]*delivery.Delivery, error)
}
