package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// ChangeDestinationCommandHandler handles the business logic for changing a
// cargo's destination. A new route specification is built from the current
// one with the destination swapped, and the aggregate rederives its
// delivery snapshot against the existing itinerary.
type ChangeDestinationCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewChangeDestinationCommandHandler creates a handler for destination
// changes. Requires a BookingUoWFactory for transactional persistence.
func NewChangeDestinationCommandHandler(uowFactory BookingUoWFactory) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the destination change command.
func (h *ChangeDestinationCommandHandler) Handle(ctx context.Context, cmd ChangeDestinationCommand) error {
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

	destination, err := uow.LocationRepository().Get(ctx, cmd.DestinationUnLocode())
	if err != nil {
		return err
	}

	current := aggregate.RouteSpecification()
	routeSpecification, err := cargo.NewRouteSpecification(
		current.Origin(), destination, current.ArrivalDeadline())
	if err != nil {
		return err
	}

	if err = aggregate.SpecifyNewRoute(routeSpecification); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
