package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2009, time.March, n, 12, 0, 0, 0, time.UTC)
}

func trackingID(t *testing.T, id string) kernel.TrackingID {
	t.Helper()
	trackingID, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	return trackingID
}

func voyagePtr(v voyage.Voyage) *voyage.Voyage {
	return &v
}

func newLeg(t *testing.T, legVoyage voyage.Voyage, load, unload location.Location, loadDay, unloadDay int) cargo.Leg {
	t.Helper()
	leg, err := cargo.NewLeg(legVoyage, load, unload, day(loadDay), day(unloadDay))
	require.NoError(t, err)
	return leg
}

// shanghaiToGothenburg is the reference plan used across the delivery and
// cargo tests: Shanghai -> Rotterdam -> Göteborg on voyage V300.
func shanghaiToGothenburg(t *testing.T) cargo.Itinerary {
	t.Helper()

	itinerary, err := cargo.NewItinerary([]cargo.Leg{
		newLeg(t, voyage.V300, location.Shanghai, location.Rotterdam, 2, 8),
		newLeg(t, voyage.V300, location.Rotterdam, location.Gothenburg, 9, 12),
	})
	require.NoError(t, err)
	return itinerary
}

func routeSpec(t *testing.T, origin, destination location.Location, deadlineDay int) cargo.RouteSpecification {
	t.Helper()
	spec, err := cargo.NewRouteSpecification(origin, destination, day(deadlineDay))
	require.NoError(t, err)
	return spec
}

func newEvent(t *testing.T, cargoID kernel.TrackingID, eventType handling.EventType,
	loc location.Location, eventVoyage *voyage.Voyage, completedDay int,
) handling.Event {
	t.Helper()
	event, err := handling.NewEvent(cargoID, eventType, loc, eventVoyage,
		day(completedDay), day(completedDay).Add(6*time.Hour))
	require.NoError(t, err)
	return event
}

func newHistory(t *testing.T, events ...handling.Event) handling.History {
	t.Helper()
	history, err := handling.NewHistory(events)
	require.NoError(t, err)
	return history
}
