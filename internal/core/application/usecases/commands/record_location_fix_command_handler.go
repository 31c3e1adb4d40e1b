package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/tracking"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"
)

// RecordLocationFixCommandHandler handles position ingestion for fleet vehicles.
// Appends a new fix to the vehicle's history, enforcing that time never moves
// backwards within a single vehicle's track.
type RecordLocationFixCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewRecordLocationFixCommandHandler creates a handler for position ingestion.
// Requires a TrackingUoWFactory for transactional persistence operations.
func NewRecordLocationFixCommandHandler(uowFactory TrackingUoWFactory) RecordLocationFixCommandHandler {
	return RecordLocationFixCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fix recording command.
// Verifies the vehicle exists, rejects fixes older than the vehicle's latest
// recorded fix, and appends the new fix within a transaction. The vehicle row
// is locked for the duration of the transaction, so concurrent reports for
// the same vehicle run one at a time and each ordering check sees every
// previously accepted fix.
func (h RecordLocationFixCommandHandler) Handle(ctx context.Context, command RecordLocationFixCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The row lock serializes fix ingestion per vehicle until commit
	if _, err := uow.VehicleRepository().GetForUpdate(ctx, command.VehicleID()); err != nil {
		return err
	}

	fixRepo := uow.LocationFixRepository()

	latest, err := fixRepo.GetLatest(ctx, command.VehicleID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err == nil && command.RecordedAt().Before(latest.RecordedAt()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"recordedAt is invalid",
			fmt.Errorf("%s is earlier than the latest recorded fix at %s",
				command.RecordedAt().Format("2006-01-02T15:04:05Z07:00"),
				latest.RecordedAt().Format("2006-01-02T15:04:05Z07:00"),
			),
		)
	}

	fix, err := tracking.NewLocationFix(
		command.FixID(),
		command.VehicleID(),
		command.Point(),
		command.RecordedAt(),
	)
	if err != nil {
		return err
	}

	if err = fixRepo.Add(ctx, fix); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
