package trackingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/tracking"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationFixRepository implements LocationFixRepository using GORM.
type GormLocationFixRepository struct {
	db *gorm.DB
}

// NewGormLocationFixRepository creates a new GORM location fix repository.
// Fixes are value objects, not aggregates, so the repository takes no tracker.
func NewGormLocationFixRepository(db *gorm.DB) *GormLocationFixRepository {
	return &GormLocationFixRepository{db: db}
}

// Add appends a new fix to the vehicle's history.
func (r *GormLocationFixRepository) Add(ctx context.Context, fix tracking.LocationFix) error {
	if err := fix.Validate(); err != nil {
		return err
	}

	dto := fromDomain(fix)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatest retrieves the most recent fix for a vehicle.
func (r *GormLocationFixRepository) GetLatest(
	ctx context.Context,
	vehicleID kernel.UUID,
) (tracking.LocationFix, error) {
	if err := vehicleID.Validate(); err != nil {
		return tracking.LocationFix{}, err
	}

	var dto LocationFixDTO
	if err := r.db.WithContext(ctx).
		Order("recorded_at DESC").
		First(&dto, "vehicle_id = ?", vehicleID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tracking.LocationFix{}, errs.NewObjectNotFoundError("vehicleId", vehicleID.String())
		}
		return tracking.LocationFix{}, err
	}

	return toDomain(dto)
}

// GetRange retrieves a vehicle's fixes recorded within [from, to], oldest first.
func (r *GormLocationFixRepository) GetRange(
	ctx context.Context,
	vehicleID kernel.UUID,
	from, to time.Time,
) ([]tracking.LocationFix, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LocationFixDTO
	if err := r.db.WithContext(ctx).
		Order("recorded_at").
		Find(&dtos, "vehicle_id = ? AND recorded_at BETWEEN ? AND ?",
			vehicleID.Bytes(), from, to).Error; err != nil {
		return nil, err
	}

	fixes := make([]tracking.LocationFix, 0, len(dtos))
	for _, dto := range dtos {
		fix, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		fixes = append(fixes, fix)
	}

	return fixes, nil
}
