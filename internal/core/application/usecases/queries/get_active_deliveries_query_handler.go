package queries

import (
	"context"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves non-terminal deliveries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending and in-progress deliveries.
// Returns deliveries sorted by creation time, oldest first. That is the order
// the background assignment job drains the pending queue in.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			distribution_point_id,
			status,
			vehicle_id,
			route_id,
			created_at
		FROM deliveries
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, int(delivery.Pending), int(delivery.InProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveDeliveriesQueryResponse
		var id, productID, distributionPointID uuid.UUID
		var vehicleID, routeID uuid.NullUUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&productID,
			&distributionPointID,
			&status,
			&vehicleID,
			&routeID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		response, err = buildActiveDeliveryResponse(
			id, productID, distributionPointID, vehicleID, routeID, status, createdAt,
		)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// buildActiveDeliveryResponse converts scanned database values to domain types.
func buildActiveDeliveryResponse(
	id, productID, distributionPointID uuid.UUID,
	vehicleID, routeID uuid.NullUUID,
	status int,
	createdAt time.Time,
) (GetActiveDeliveriesQueryResponse, error) {
	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	product, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	distributionPoint, err := kernel.UUIDFromBytes(distributionPointID[:])
	if err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	deliveryStatus := delivery.Status(status)
	if err = deliveryStatus.Validate(); err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	response := GetActiveDeliveriesQueryResponse{
		ID:                  deliveryID,
		ProductID:           product,
		DistributionPointID: distributionPoint,
		Status:              deliveryStatus,
		CreatedAt:           createdAt,
	}

	if vehicleID.Valid {
		vID, vErr := kernel.UUIDFromBytes(vehicleID.UUID[:])
		if vErr != nil {
			return GetActiveDeliveriesQueryResponse{}, vErr
		}
		response.VehicleID = &vID
	}

	if routeID.Valid {
		rID, rErr := kernel.UUIDFromBytes(routeID.UUID[:])
		if rErr != nil {
			return GetActiveDeliveriesQueryResponse{}, rErr
		}
		response.RouteID = &rID
	}

	return response, nil
}
