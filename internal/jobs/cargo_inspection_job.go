package jobs

import (
	"context"
	"errors"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CargoInspectionJob manages the scheduled inspection sweep of underway
// cargos. Runs every minute to rederive delivery snapshots against the
// latest handling history, catching up on any event registration whose
// asynchronous inspection was lost.
type CargoInspectionJob struct {
	handler commands.InspectUnderwayCargosCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCargoInspectionJob creates a new job for the inspection sweep.
// Uses InspectUnderwayCargosCommandHandler to inspect every cargo still in
// transit.
func NewCargoInspectionJob(handler commands.InspectUnderwayCargosCommandHandler, logger *slog.Logger) *CargoInspectionJob {
	return &CargoInspectionJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "cargo_inspection_job"),
	}
}

// Start begins the cargo inspection job to run every minute.
func (j *CargoInspectionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewInspectUnderwayCargosCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal quiet state, not a failure
			if !errors.Is(err, commands.ErrNoUnderwayCargosFound) {
				j.logger.ErrorContext(ctx, "Cargo inspection sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cargo inspection job started (running every minute)")
	return nil
}

// Stop stops the cargo inspection job.
func (j *CargoInspectionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cargo inspection job stopped")
}
