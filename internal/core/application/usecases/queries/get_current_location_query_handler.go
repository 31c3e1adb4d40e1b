package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentLocationQueryHandler retrieves a vehicle's latest position fix.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCurrentLocationQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentLocationQueryHandler creates a handler for latest-position queries.
// Requires a GORM database connection for query execution.
func NewGetCurrentLocationQueryHandler(db *gorm.DB) GetCurrentLocationQueryHandler {
	return GetCurrentLocationQueryHandler{db: db}
}

// Handle executes the query to retrieve the vehicle's most recent fix.
// Returns an object-not-found error when the vehicle has no recorded fixes.
func (h GetCurrentLocationQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentLocationQuery,
) (GetCurrentLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentLocationQueryResponse{}, err
	}

	var id uuid.UUID
	var latitude, longitude float64
	var recordedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			vehicle_id,
			latitude,
			longitude,
			recorded_at
		FROM location_fixes
		WHERE vehicle_id = ?
		ORDER BY recorded_at DESC
		LIMIT 1
	`, query.VehicleID().Bytes()).Row()

	err := row.Scan(&id, &latitude, &longitude, &recordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCurrentLocationQueryResponse{},
				errs.NewObjectNotFoundError("vehicleId", query.VehicleID().String())
		}
		return GetCurrentLocationQueryResponse{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCurrentLocationQueryResponse{}, err
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return GetCurrentLocationQueryResponse{}, err
	}

	return GetCurrentLocationQueryResponse{
		VehicleID:  vehicleID,
		Point:      point,
		RecordedAt: recordedAt,
	}, nil
}
