package commands

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/ports"
)

// RegisterHandlingEventCommandHandler handles the business logic for
// handling event registration. The event factory validates the report
// against the cargo, voyage and location stores; the created event is
// appended to the event store, and CargoWasHandled is raised after the
// transaction commits so the delivery snapshot can be rederived
// asynchronously.
type RegisterHandlingEventCommandHandler struct {
	uowFactory        HandlingUoWFactory
	applicationEvents ports.ApplicationEvents
}

// NewRegisterHandlingEventCommandHandler creates a handler for handling
// event registration. Requires a HandlingUoWFactory for transactional
// persistence and the application event channel for the post-commit
// notification.
func NewRegisterHandlingEventCommandHandler(
	uowFactory HandlingUoWFactory,
	applicationEvents ports.ApplicationEvents,
) RegisterHandlingEventCommandHandler {
	return RegisterHandlingEventCommandHandler{
		uowFactory:        uowFactory,
		applicationEvents: applicationEvents,
	}
}

// Handle processes the handling report. Registration time is assigned here;
// completion time comes from the report.
func (h *RegisterHandlingEventCommandHandler) Handle(ctx context.Context, cmd RegisterHandlingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	factory, err := handling.NewEventFactory(
		uow.CargoRepository(), uow.VoyageRepository(), uow.LocationRepository())
	if err != nil {
		return err
	}

	event, err := factory.CreateEvent(ctx, time.Now(), cmd.CompletionTime(),
		cmd.TrackingID(), cmd.VoyageNumber(), cmd.UnLocode(), cmd.EventType())
	if err != nil {
		return err
	}

	if err = uow.HandlingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.applicationEvents.CargoWasHandled(ctx, event)
	return nil
}
