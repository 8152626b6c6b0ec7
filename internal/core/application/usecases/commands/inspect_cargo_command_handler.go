package commands

import (
	"context"

	"cargotracker/internal/core/ports"
)

// InspectCargoCommandHandler handles the business logic for cargo
// inspection: load the cargo and its handling history, rederive the
// delivery snapshot, persist the updated aggregate and notify interested
// parties about misdirection or arrival.
type InspectCargoCommandHandler struct {
	uowFactory        InspectionUoWFactory
	applicationEvents ports.ApplicationEvents
}

// NewInspectCargoCommandHandler creates a handler for cargo inspection.
// Requires an InspectionUoWFactory for transactional persistence and the
// application event channel for the inspection outcomes.
func NewInspectCargoCommandHandler(
	uowFactory InspectionUoWFactory,
	applicationEvents ports.ApplicationEvents,
) InspectCargoCommandHandler {
	return InspectCargoCommandHandler{
		uowFactory:        uowFactory,
		applicationEvents: applicationEvents,
	}
}

// Handle processes the inspection command. Notifications are raised only
// after the updated snapshot was committed.
func (h *InspectCargoCommandHandler) Handle(ctx context.Context, cmd InspectCargoCommand) error {
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

	cargoRepo := uow.CargoRepository()
	aggregate, err := cargoRepo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().GetHistory(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	if err = aggregate.DeriveDeliveryProgress(history); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate.Delivery().IsMisdirected() {
		h.applicationEvents.CargoWasMisdirected(ctx, aggregate)
	}
	if aggregate.Delivery().IsUnloadedAtDestination() {
		h.applicationEvents.CargoHasArrived(ctx, aggregate)
	}

	return nil
}
