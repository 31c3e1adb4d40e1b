package queries

import (
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var (
	ErrGetCurrentLocationQueryIsNotConstructed = errors.New(
		"GetCurrentLocationQuery must be created via NewGetCurrentLocationQuery constructor",
	)
)

// GetCurrentLocationQuery retrieves the most recent position fix for a vehicle.
//
// Example:
//
//	query, err := NewGetCurrentLocationQuery(vehicleID)
//	if err != nil {
//	    return err
//	}
//
//	location, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("Vehicle has not reported a position yet")
//	}
type GetCurrentLocationQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentLocationQuery creates a query for a vehicle's latest position.
// Validates the vehicle reference.
func NewGetCurrentLocationQuery(vehicleID kernel.UUID) (GetCurrentLocationQuery, error) {
	query := GetCurrentLocationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVehicleID(vehicleID); err != nil {
		return GetCurrentLocationQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentLocationQueryIsNotConstructed if validation fails.
func (q GetCurrentLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentLocationQueryIsNotConstructed)
}

// VehicleID returns the vehicle reference from the query.
func (q GetCurrentLocationQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

func (q *GetCurrentLocationQuery) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	q.vehicleID = vehicleID
	return nil
}

// GetCurrentLocationQueryResponse represents a vehicle's latest known position.
type GetCurrentLocationQueryResponse struct {
	VehicleID  kernel.UUID
	Point      kernel.GeoPoint
	RecordedAt time.Time
}
