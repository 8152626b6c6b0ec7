// Package routing calls the external route optimization service. Route
// search is not part of this system: the client fetches candidate transit
// paths over HTTP and converts them into domain itineraries, resolving
// voyages and locations through the repositories.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// transitPath is the wire format of one candidate route returned by the
// route finder.
type transitPath struct {
	TransitEdges []transitEdge `json:"transitEdges"`
}

// transitEdge is one carrier movement of a candidate route.
type transitEdge struct {
	VoyageNumber string    `json:"voyageNumber"`
	FromUnLocode string    `json:"fromUnLocode"`
	ToUnLocode   string    `json:"toUnLocode"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
}

// Client implements ports.RoutingService against the external route finder
// HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	uowFactory ports.UnitOfWorkFactory
}

// NewClient creates a routing service client. baseURL is the address of
// the external route finder. The unit of work factory provides the voyage
// and location repositories used to rehydrate the returned paths.
func NewClient(baseURL string, uowFactory ports.UnitOfWorkFactory) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("routing client: base URL is empty")
	}
	if uowFactory == nil {
		return nil, fmt.Errorf("routing client: unit of work factory is nil")
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		uowFactory: uowFactory,
	}, nil
}

// FetchRoutesForSpecification asks the route finder for transit paths from
// the specification's origin to its destination arriving before the
// deadline. Paths referencing unknown voyages or locations are rejected as
// a whole; an empty result is not an error.
func (c *Client) FetchRoutesForSpecification(
	ctx context.Context,
	routeSpecification cargo.RouteSpecification,
) ([]cargo.Itinerary, error) {
	if err := routeSpecification.Validate(); err != nil {
		return nil, err
	}

	paths, err := c.fetchTransitPaths(ctx, routeSpecification)
	if err != nil {
		return nil, err
	}

	itineraries := make([]cargo.Itinerary, 0, len(paths))
	for _, path := range paths {
		itinerary, err := c.toItinerary(ctx, path)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, itinerary)
	}

	return itineraries, nil
}

func (c *Client) fetchTransitPaths(
	ctx context.Context,
	routeSpecification cargo.RouteSpecification,
) ([]transitPath, error) {
	query := url.Values{}
	query.Set("origin", routeSpecification.Origin().UnLocode().String())
	query.Set("destination", routeSpecification.Destination().UnLocode().String())
	query.Set("deadline", routeSpecification.ArrivalDeadline().Format(time.RFC3339))

	requestURL := fmt.Sprintf("%s/routes?%s", c.baseURL, query.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("routing client: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("routing client: call route finder: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing client: route finder returned status %d", response.StatusCode)
	}

	var paths []transitPath
	if err := json.NewDecoder(response.Body).Decode(&paths); err != nil {
		return nil, fmt.Errorf("routing client: decode response: %w", err)
	}

	return paths, nil
}

// toItinerary converts one transit path into a domain itinerary. The route
// finder speaks in voyage numbers and UN/LOCODEs; legs carry full voyages
// and locations, so both are resolved through the repositories.
func (c *Client) toItinerary(ctx context.Context, path transitPath) (cargo.Itinerary, error) {
	uow := c.uowFactory.Create()
	voyages := uow.VoyageRepository()
	locations := uow.LocationRepository()

	legs := make([]cargo.Leg, 0, len(path.TransitEdges))
	for _, edge := range path.TransitEdges {
		voyageNumber, err := kernel.NewVoyageNumber(edge.VoyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		legVoyage, err := voyages.Get(ctx, voyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		loadUnLocode, err := kernel.NewUnLocode(edge.FromUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		loadLocation, err := locations.Get(ctx, loadUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		unloadUnLocode, err := kernel.NewUnLocode(edge.ToUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		unloadLocation, err := locations.Get(ctx, unloadUnLocode)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		leg, err := cargo.NewLeg(legVoyage, loadLocation, unloadLocation, edge.FromDate, edge.ToDate)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}
