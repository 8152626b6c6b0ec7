package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/ports"
)

// RequestPossibleRoutesCommandHandler asks the routing service for
// itineraries matching the cargo's route specification. Candidates that do
// not actually satisfy the specification are filtered out: the routing
// service is an external system and its answers are not trusted blindly.
type RequestPossibleRoutesCommandHandler struct {
	uowFactory     CargoUoWFactory
	routingService ports.RoutingService
}

// NewRequestPossibleRoutesCommandHandler creates a handler for route
// candidate requests.
func NewRequestPossibleRoutesCommandHandler(
	uowFactory CargoUoWFactory,
	routingService ports.RoutingService,
) RequestPossibleRoutesCommandHandler {
	return RequestPossibleRoutesCommandHandler{
		uowFactory:     uowFactory,
		routingService: routingService,
	}
}

// Handle processes the command and returns the satisfying itineraries.
// An empty result means no route could be found, which is not an error.
func (h *RequestPossibleRoutesCommandHandler) Handle(
	ctx context.Context,
	cmd RequestPossibleRoutesCommand,
) ([]cargo.Itinerary, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	aggregate, err := uow.CargoRepository().Get(ctx, cmd.TrackingID())
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return nil, err
	}

	routeSpecification := aggregate.RouteSpecification()

	candidates, err := h.routingService.FetchRoutesForSpecification(ctx, routeSpecification)
	if err != nil {
		return nil, err
	}

	satisfying := make([]cargo.Itinerary, 0, len(candidates))
	for _, itinerary := range candidates {
		if routeSpecification.IsSatisfiedBy(itinerary) {
			satisfying = append(satisfying, itinerary)
		}
	}

	return satisfying, nil
}
