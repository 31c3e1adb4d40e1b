package queries

import (
	"context"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableVehiclesQueryHandler retrieves free vehicles from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableVehiclesQueryHandler(db)
//	query := NewGetAvailableVehiclesQuery()
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get vehicles: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d available vehicles\n", len(vehicles))
type GetAvailableVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableVehiclesQueryHandler creates a handler for vehicle retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableVehiclesQueryHandler(db *gorm.DB) GetAvailableVehiclesQueryHandler {
	return GetAvailableVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all available vehicles.
// Returns vehicles sorted by capacity descending, ties broken by ID, which is
// the same order the dispatcher ranks candidates in.
func (h GetAvailableVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableVehiclesQuery,
) ([]GetAvailableVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAvailableVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			model,
			capacity
		FROM vehicles
		WHERE available = true
		ORDER BY capacity DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAvailableVehiclesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Plate,
			&response.Model,
			&response.Capacity,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = vehicleID
		vehicles = append(vehicles, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
