package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Gumierow/GIS-ISI/internal/core/application/usecases/commands"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DeliveryAssignmentJob manages the scheduled assignment of vehicles to deliveries.
// Runs every second to match pending deliveries with available vehicles.
type DeliveryAssignmentJob struct {
	handler commands.AssignDeliveryCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryAssignmentJob creates a new job for assigning deliveries.
// Uses AssignDeliveryCommandHandler to process assignments every second.
func NewDeliveryAssignmentJob(handler commands.AssignDeliveryCommandHandler, logger *slog.Logger) *DeliveryAssignmentJob {
	return &DeliveryAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_assignment_job"),
	}
}

// Start begins the delivery assignment job to run every second.
func (j *DeliveryAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignFirstPendingCommand()

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingDelivery) && !errors.Is(err, services.ErrNoVehicleAvailable) {
				j.logger.ErrorContext(ctx, "Delivery assignment job failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Delivery assigned",
			"deliveryId", result.Delivery.ID().String(),
			"vehicleId", result.Vehicle.ID().String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery assignment job started (running every second)")
	return nil
}

// Stop stops the delivery assignment job.
func (j *DeliveryAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery assignment job stopped")
}
