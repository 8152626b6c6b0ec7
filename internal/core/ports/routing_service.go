package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// RoutingService finds itineraries satisfying a route specification. Route
// search is not part of this system: the implementation calls an external
// route optimization service. The core only validates and consumes the
// returned itineraries, it never generates them.
type RoutingService interface {
	// FetchRoutesForSpecification returns candidate itineraries for the
	// given specification. An empty result means no route could be found;
	// that is not an error.
	FetchRoutesForSpecification(
		ctx context.Context,
		routeSpecification cargo.RouteSpecification,
	) ([]cargo.Itinerary, error)
}
