package queries

import (
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
	"github.com/Gumierow/GIS-ISI/internal/pkg/guard"
)

var (
	ErrGetLocationHistoryQueryIsNotConstructed = errors.New(
		"GetLocationHistoryQuery must be created via NewGetLocationHistoryQuery constructor",
	)
	ErrHistoryRangeIsInvalid = errs.NewValueIsInvalidError("history range is invalid")
)

// GetLocationHistoryQuery retrieves a vehicle's position fixes within a time
// window. The window is inclusive on both ends and must not be inverted.
//
// Example:
//
//	query, err := NewGetLocationHistoryQuery(vehicleID, from, to)
//	if err != nil {
//	    return err
//	}
//
//	fixes, err := handler.Handle(ctx, query)
//	for _, fix := range fixes {
//	    fmt.Printf("%s at %s\n", fix.Point, fix.RecordedAt)
//	}
type GetLocationHistoryQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	from      time.Time
	to        time.Time

	guard guard.ConstructorGuard
}

// NewGetLocationHistoryQuery creates a query for a vehicle's track over a time window.
// Validates the vehicle reference and rejects windows where from is after to.
func NewGetLocationHistoryQuery(vehicleID kernel.UUID, from, to time.Time) (GetLocationHistoryQuery, error) {
	query := GetLocationHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setVehicleID(vehicleID),
		query.setWindow(from, to),
	); err != nil {
		return GetLocationHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLocationHistoryQueryIsNotConstructed if validation fails.
func (q GetLocationHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationHistoryQueryIsNotConstructed)
}

// VehicleID returns the vehicle reference from the query.
func (q GetLocationHistoryQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

// From returns the inclusive start of the time window.
func (q GetLocationHistoryQuery) From() time.Time {
	return q.from
}

// To returns the inclusive end of the time window.
func (q GetLocationHistoryQuery) To() time.Time {
	return q.to
}

func (q *GetLocationHistoryQuery) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	q.vehicleID = vehicleID
	return nil
}

func (q *GetLocationHistoryQuery) setWindow(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return ErrHistoryRangeIsInvalid
	}
	if from.After(to) {
		return ErrHistoryRangeIsInvalid
	}

	q.from = from
	q.to = to
	return nil
}

// GetLocationHistoryQueryResponse represents one recorded position fix.
type GetLocationHistoryQueryResponse struct {
	ID         kernel.UUID
	VehicleID  kernel.UUID
	Point      kernel.GeoPoint
	RecordedAt time.Time
}
