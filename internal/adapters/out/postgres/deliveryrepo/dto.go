// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Status and vehicle columns are indexed because assignment and monitoring
// queries filter on them.
type DeliveryDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID           uuid.UUID  `gorm:"type:uuid;not null"`
	DistributionPointID uuid.UUID  `gorm:"type:uuid;not null"`
	Status              int        `gorm:"type:int;not null;index"`
	VehicleID           *uuid.UUID `gorm:"type:uuid;index"`
	RouteID             *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time  `gorm:"not null;index"`
	DeliveredAt         *time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(delivery *delivery.Delivery) DeliveryDTO {
	var vehicleID *uuid.UUID
	if id := delivery.Vehicle(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	var routeID *uuid.UUID
	if id := delivery.Route(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	return DeliveryDTO{
		ID:                  delivery.ID().Bytes(),
		ProductID:           delivery.ProductID().Bytes(),
		DistributionPointID: delivery.DistributionPointID().Bytes(),
		Status:              int(delivery.Status()),
		VehicleID:           vehicleID,
		RouteID:             routeID,
		CreatedAt:           delivery.CreatedAt(),
		DeliveredAt:         delivery.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including status, vehicle binding
// and route link using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	distributionPointID, err := kernel.UUIDFromBytes(dto.DistributionPointID[:])
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}

		vehicleID = &vID
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}

		routeID = &rID
	}

	return delivery.RestoreDelivery(
		id,
		productID,
		distributionPointID,
		delivery.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveredAt,
		vehicleID,
		routeID,
	)
}
