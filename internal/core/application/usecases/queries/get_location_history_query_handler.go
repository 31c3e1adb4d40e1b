package queries

import (
	"context"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLocationHistoryQueryHandler retrieves a vehicle's track over a time window.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetLocationHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationHistoryQueryHandler creates a handler for track history queries.
// Requires a GORM database connection for query execution.
func NewGetLocationHistoryQueryHandler(db *gorm.DB) GetLocationHistoryQueryHandler {
	return GetLocationHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the vehicle's fixes within the window.
// Returns fixes sorted by recording time, oldest first. A vehicle with no
// fixes in the window yields an empty slice, not an error.
func (h GetLocationHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetLocationHistoryQuery,
) ([]GetLocationHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fixes := make([]GetLocationHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			latitude,
			longitude,
			recorded_at
		FROM location_fixes
		WHERE vehicle_id = ? AND recorded_at BETWEEN ? AND ?
		ORDER BY recorded_at
	`, query.VehicleID().Bytes(), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetLocationHistoryQueryResponse
		var id, vehicleID uuid.UUID
		var latitude, longitude float64
		var recordedAt time.Time

		err = rows.Scan(
			&id,
			&vehicleID,
			&latitude,
			&longitude,
			&recordedAt,
		)
		if err != nil {
			return nil, err
		}

		fixID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = fixID

		vID, idErr := kernel.UUIDFromBytes(vehicleID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.VehicleID = vID

		point, pointErr := kernel.NewGeoPoint(latitude, longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		response.Point = point
		response.RecordedAt = recordedAt

		fixes = append(fixes, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fixes, nil
}
