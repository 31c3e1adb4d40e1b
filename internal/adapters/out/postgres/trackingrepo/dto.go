// Package trackingrepo provides data transfer objects and mapping functions for
// location fix persistence. Fixes are append-only rows: the repository never
// updates or deletes them, a vehicle's history only grows.
package trackingrepo

import (
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// LocationFixDTO represents the database structure for persisting location fixes.
// The composite index serves both latest-fix lookups and range scans over a
// vehicle's track.
type LocationFixDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID  uuid.UUID `gorm:"type:uuid;not null;index:idx_fixes_vehicle_recorded,priority:1"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_fixes_vehicle_recorded,priority:2"`
}

// TableName specifies the database table name for location fix entities.
// Overrides GORM's default naming convention to use "location_fixes".
func (LocationFixDTO) TableName() string {
	return "location_fixes"
}

// fromDomain converts a location fix value object to its database representation.
func fromDomain(fix tracking.LocationFix) LocationFixDTO {
	return LocationFixDTO{
		ID:         fix.ID().Bytes(),
		VehicleID:  fix.VehicleID().Bytes(),
		Latitude:   fix.Point().Latitude(),
		Longitude:  fix.Point().Longitude(),
		RecordedAt: fix.RecordedAt(),
	}
}

// toDomain converts a database DTO to a location fix value object.
func toDomain(dto LocationFixDTO) (tracking.LocationFix, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return tracking.LocationFix{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return tracking.LocationFix{}, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return tracking.LocationFix{}, err
	}

	return tracking.NewLocationFix(id, vehicleID, point, dto.RecordedAt)
}
