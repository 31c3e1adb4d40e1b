// Package routerepo provides data transfer objects and mapping functions for route persistence.
// This package implements the repository pattern for the route domain aggregate, handling
// the conversion between domain entities and database representations.
package routerepo

import (
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
// Each route belongs to exactly one delivery, enforced by the unique index.
type RouteDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Origin      string    `gorm:"type:varchar(255);not null"`
	Destination string    `gorm:"type:varchar(255);not null"`
	DistanceKm  float64   `gorm:"type:double precision;not null"`
	EtaMinutes  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for route entities.
// Overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(route *route.Route) RouteDTO {
	return RouteDTO{
		ID:          route.ID().Bytes(),
		DeliveryID:  route.DeliveryID().Bytes(),
		Origin:      route.Origin(),
		Destination: route.Destination(),
		DistanceKm:  route.DistanceKm(),
		EtaMinutes:  route.EtaMinutes(),
	}
}

// toDomain converts a database DTO to a route domain aggregate.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return route.NewRoute(id, deliveryID, dto.Origin, dto.Destination, dto.DistanceKm, dto.EtaMinutes)
}
