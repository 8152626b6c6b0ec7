package commands

import (
	"context"
)

// AssignCargoToRouteCommandHandler handles the business logic for routing a
// cargo. Attaching the itinerary synchronously rederives the delivery
// snapshot inside the aggregate.
type AssignCargoToRouteCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewAssignCargoToRouteCommandHandler creates a handler for route
// assignment. Requires a CargoUoWFactory for transactional persistence.
func NewAssignCargoToRouteCommandHandler(uowFactory CargoUoWFactory) AssignCargoToRouteCommandHandler {
	return AssignCargoToRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route assignment command.
func (h *AssignCargoToRouteCommandHandler) Handle(ctx context.Context, cmd AssignCargoToRouteCommand) error {
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

	if err = aggregate.AssignToRoute(cmd.Itinerary()); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
