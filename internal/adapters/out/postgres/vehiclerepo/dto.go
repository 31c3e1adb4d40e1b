// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
// This package implements the repository pattern for the vehicle domain aggregate, handling
// the conversion between domain entities and database representations.
package vehiclerepo

import (
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// The availability flag is indexed because reservation and free-fleet queries
// filter on it.
type VehicleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate     string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Model     string    `gorm:"type:varchar(255);not null"`
	Capacity  int       `gorm:"type:int;not null"`
	Available bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(vehicle *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:        vehicle.ID().Bytes(),
		Plate:     vehicle.Plate(),
		Model:     vehicle.Model(),
		Capacity:  vehicle.Capacity(),
		Available: vehicle.IsAvailable(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the aggregate with its persisted availability using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Plate, dto.Model, dto.Capacity, dto.Available)
}
