package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// BookCargoCommandHandler handles the business logic for booking a cargo:
// it resolves the origin and destination locations, reserves a tracking ID
// and persists the new, unrouted cargo aggregate.
type BookCargoCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewBookCargoCommandHandler creates a handler for cargo booking.
// Requires a BookingUoWFactory for transactional persistence.
func NewBookCargoCommandHandler(uowFactory BookingUoWFactory) BookCargoCommandHandler {
	return BookCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command and returns the tracking ID assigned
// to the new cargo.
func (h *BookCargoCommandHandler) Handle(ctx context.Context, cmd BookCargoCommand) (kernel.TrackingID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()
	origin, err := locationRepo.Get(ctx, cmd.OriginUnLocode())
	if err != nil {
		return kernel.TrackingID{}, err
	}
	destination, err := locationRepo.Get(ctx, cmd.DestinationUnLocode())
	if err != nil {
		return kernel.TrackingID{}, err
	}

	routeSpecification, err := cargo.NewRouteSpecification(origin, destination, cmd.ArrivalDeadline())
	if err != nil {
		return kernel.TrackingID{}, err
	}

	cargoRepo := uow.CargoRepository()
	trackingID, err := cargoRepo.NextTrackingID(ctx)
	if err != nil {
		return kernel.TrackingID{}, err
	}

	booked, err := cargo.NewCargo(trackingID, routeSpecification)
	if err != nil {
		return kernel.TrackingID{}, err
	}

	if err = cargoRepo.Add(ctx, booked); err != nil {
		return kernel.TrackingID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	return trackingID, nil
}
