package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deriveDelivery(t *testing.T, spec cargo.RouteSpecification, itinerary cargo.Itinerary,
	events ...handling.Event,
) cargo.Delivery {
	t.Helper()
	delivery, err := cargo.DeriveDeliveryFrom(spec, itinerary, newHistory(t, events...))
	require.NoError(t, err)
	return delivery
}

func TestDelivery_TransportStatus(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	tests := []struct {
		name     string
		event    *handling.Event
		expected cargo.TransportStatus
	}{
		{"no_event_means_not_received", nil, cargo.NotReceived},
		{"receive_means_in_port",
			eventPtr(newEvent(t, cargoID, handling.Receive, location.Shanghai, nil, 1)), cargo.InPort},
		{"load_means_onboard_carrier",
			eventPtr(newEvent(t, cargoID, handling.Load, location.Shanghai, voyagePtr(voyage.V300), 2)), cargo.OnboardCarrier},
		{"unload_means_in_port",
			eventPtr(newEvent(t, cargoID, handling.Unload, location.Rotterdam, voyagePtr(voyage.V300), 8)), cargo.InPort},
		{"customs_means_in_port",
			eventPtr(newEvent(t, cargoID, handling.Customs, location.Gothenburg, nil, 12)), cargo.InPort},
		{"claim_means_claimed",
			eventPtr(newEvent(t, cargoID, handling.Claim, location.Gothenburg, nil, 13)), cargo.Claimed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var events []handling.Event
			if tc.event != nil {
				events = append(events, *tc.event)
			}

			delivery := deriveDelivery(t, spec, itinerary, events...)

			assert.Equal(t, tc.expected, delivery.TransportStatus())
		})
	}
}

func eventPtr(e handling.Event) *handling.Event {
	return &e
}

func TestDelivery_RoutingStatus(t *testing.T) {
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)

	t.Run("no_itinerary_means_not_routed", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, cargo.EmptyItinerary())

		assert.Equal(t, cargo.NotRouted, delivery.RoutingStatus())
	})

	t.Run("satisfying_itinerary_means_routed", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, shanghaiToGothenburg(t))

		assert.Equal(t, cargo.Routed, delivery.RoutingStatus())
	})

	t.Run("unsatisfying_itinerary_means_misrouted", func(t *testing.T) {
		// Given: a plan starting in Rotterdam while Shanghai is required
		partial, err := cargo.NewItinerary([]cargo.Leg{
			newLeg(t, voyage.V300, location.Rotterdam, location.Gothenburg, 9, 12),
		})
		require.NoError(t, err)

		delivery := deriveDelivery(t, spec, partial)

		assert.Equal(t, cargo.Misrouted, delivery.RoutingStatus())
	})
}

func TestDelivery_Misdirection(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	t.Run("no_event_is_never_misdirected", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, itinerary)

		assert.False(t, delivery.IsMisdirected())
	})

	t.Run("receive_off_plan_is_misdirected", func(t *testing.T) {
		// Given: cargo routed from Shanghai but received in Hangzhou
		received := newEvent(t, cargoID, handling.Receive, location.Hangzhou, nil, 1)

		delivery := deriveDelivery(t, spec, itinerary, received)

		assert.True(t, delivery.IsMisdirected())
		assert.False(t, delivery.IsOnTrack())
	})

	t.Run("event_on_plan_is_not_misdirected", func(t *testing.T) {
		received := newEvent(t, cargoID, handling.Receive, location.Shanghai, nil, 1)

		delivery := deriveDelivery(t, spec, itinerary, received)

		assert.False(t, delivery.IsMisdirected())
		assert.True(t, delivery.IsOnTrack())
	})
}

func TestDelivery_LastKnownLocationAndVoyage(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	t.Run("without_events_location_is_unknown_and_voyage_is_none", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, itinerary)

		assert.True(t, delivery.LastKnownLocation().IsUnknown())
		assert.True(t, delivery.CurrentVoyage().IsNone())

		_, ok := delivery.LastEvent()
		assert.False(t, ok)
	})

	t.Run("onboard_cargo_reports_its_voyage", func(t *testing.T) {
		loaded := newEvent(t, cargoID, handling.Load, location.Shanghai, voyagePtr(voyage.V300), 2)

		delivery := deriveDelivery(t, spec, itinerary, loaded)

		assert.Equal(t, "CNSHA", delivery.LastKnownLocation().UnLocode().String())
		assert.Equal(t, "V300", delivery.CurrentVoyage().VoyageNumber().String())
	})

	t.Run("cargo_in_port_has_no_current_voyage", func(t *testing.T) {
		unloaded := newEvent(t, cargoID, handling.Unload, location.Rotterdam, voyagePtr(voyage.V300), 8)

		delivery := deriveDelivery(t, spec, itinerary, unloaded)

		assert.Equal(t, "NLRTM", delivery.LastKnownLocation().UnLocode().String())
		assert.True(t, delivery.CurrentVoyage().IsNone())
	})
}

func TestDelivery_EstimatedTimeOfArrival(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	t.Run("on_track_cargo_estimates_final_arrival", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, itinerary)

		eta, ok := delivery.EstimatedTimeOfArrival()
		require.True(t, ok)
		assert.Equal(t, day(12), eta)
	})

	t.Run("misdirected_cargo_has_no_estimate", func(t *testing.T) {
		offPlan := newEvent(t, cargoID, handling.Receive, location.Hangzhou, nil, 1)

		delivery := deriveDelivery(t, spec, itinerary, offPlan)

		_, ok := delivery.EstimatedTimeOfArrival()
		assert.False(t, ok)
	})

	t.Run("unrouted_cargo_has_no_estimate", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, cargo.EmptyItinerary())

		_, ok := delivery.EstimatedTimeOfArrival()
		assert.False(t, ok)
	})
}

func TestDelivery_NextExpectedActivity(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	t.Run("before_any_event_expect_receive_at_origin", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, itinerary)

		activity, ok := delivery.NextExpectedActivity()
		require.True(t, ok)
		assert.Equal(t, handling.Receive, activity.Type())
		assert.Equal(t, "CNSHA", activity.Location().UnLocode().String())
		assert.False(t, activity.HasVoyage())
	})

	t.Run("after_receive_expect_load_onto_first_leg", func(t *testing.T) {
		received := newEvent(t, cargoID, handling.Receive, location.Shanghai, nil, 1)

		delivery := deriveDelivery(t, spec, itinerary, received)

		activity, ok := delivery.NextExpectedActivity()
		require.True(t, ok)
		assert.Equal(t, handling.Load, activity.Type())
		assert.Equal(t, "CNSHA", activity.Location().UnLocode().String())
		assert.Equal(t, "V300", activity.Voyage().VoyageNumber().String())
	})

	t.Run("after_load_expect_unload_at_leg_end", func(t *testing.T) {
		received := newEvent(t, cargoID, handling.Receive, location.Shanghai, nil, 1)
		loaded := newEvent(t, cargoID, handling.Load, location.Shanghai, voyagePtr(voyage.V300), 2)

		delivery := deriveDelivery(t, spec, itinerary, received, loaded)

		activity, ok := delivery.NextExpectedActivity()
		require.True(t, ok)
		assert.Equal(t, handling.Unload, activity.Type())
		assert.Equal(t, "NLRTM", activity.Location().UnLocode().String())
		assert.Equal(t, "V300", activity.Voyage().VoyageNumber().String())
	})

	t.Run("after_unload_midway_expect_load_onto_next_leg", func(t *testing.T) {
		unloaded := newEvent(t, cargoID, handling.Unload, location.Rotterdam, voyagePtr(voyage.V300), 8)

		delivery := deriveDelivery(t, spec, itinerary, unloaded)

		activity, ok := delivery.NextExpectedActivity()
		require.True(t, ok)
		assert.Equal(t, handling.Load, activity.Type())
		assert.Equal(t, "NLRTM", activity.Location().UnLocode().String())
	})

	t.Run("after_unload_on_last_leg_expect_claim_without_voyage", func(t *testing.T) {
		unloaded := newEvent(t, cargoID, handling.Unload, location.Gothenburg, voyagePtr(voyage.V300), 12)

		delivery := deriveDelivery(t, spec, itinerary, unloaded)

		activity, ok := delivery.NextExpectedActivity()
		require.True(t, ok)
		assert.Equal(t, handling.Claim, activity.Type())
		assert.Equal(t, "SEGOT", activity.Location().UnLocode().String())
		assert.False(t, activity.HasVoyage())
	})

	t.Run("after_claim_nothing_is_expected", func(t *testing.T) {
		claimed := newEvent(t, cargoID, handling.Claim, location.Gothenburg, nil, 13)

		delivery := deriveDelivery(t, spec, itinerary, claimed)

		_, ok := delivery.NextExpectedActivity()
		assert.False(t, ok)
	})

	t.Run("off_track_cargo_expects_nothing", func(t *testing.T) {
		offPlan := newEvent(t, cargoID, handling.Receive, location.Hangzhou, nil, 1)

		delivery := deriveDelivery(t, spec, itinerary, offPlan)

		_, ok := delivery.NextExpectedActivity()
		assert.False(t, ok)
	})
}

func TestDelivery_IsUnloadedAtDestination(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	load1 := newEvent(t, cargoID, handling.Load, location.Shanghai, voyagePtr(voyage.V300), 2)
	unload1 := newEvent(t, cargoID, handling.Unload, location.Rotterdam, voyagePtr(voyage.V300), 8)
	load2 := newEvent(t, cargoID, handling.Load, location.Rotterdam, voyagePtr(voyage.V300), 9)
	unload2 := newEvent(t, cargoID, handling.Unload, location.Gothenburg, voyagePtr(voyage.V300), 12)

	t.Run("final_unload_at_destination", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, itinerary, load1, unload1, load2, unload2)

		assert.True(t, delivery.IsUnloadedAtDestination())
	})

	t.Run("still_underway_without_the_final_unload", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, itinerary, load1, unload1, load2)

		assert.False(t, delivery.IsUnloadedAtDestination())
	})

	t.Run("unload_elsewhere_does_not_count", func(t *testing.T) {
		delivery := deriveDelivery(t, spec, itinerary, load1, unload1)

		assert.False(t, delivery.IsUnloadedAtDestination())
	})
}

func TestDelivery_Purity(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)
	loaded := newEvent(t, cargoID, handling.Load, location.Shanghai, voyagePtr(voyage.V300), 2)

	// When: the same inputs are derived twice
	first := deriveDelivery(t, spec, itinerary, loaded)
	second := deriveDelivery(t, spec, itinerary, loaded)

	// Then: every derived output matches; only the calculation time may
	// differ
	same, err := first.SameValueAs(second)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestDelivery_UpdateOnRouting(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	t.Run("reuses_the_previous_last_event", func(t *testing.T) {
		loaded := newEvent(t, cargoID, handling.Load, location.Shanghai, voyagePtr(voyage.V300), 2)
		before := deriveDelivery(t, spec, itinerary, loaded)

		// When: the destination changes to Rotterdam
		newSpec := routeSpec(t, location.Shanghai, location.Rotterdam, 20)
		after, err := before.UpdateOnRouting(newSpec, itinerary)
		require.NoError(t, err)

		// Then: the event carried over, and the old plan no longer satisfies
		lastEvent, ok := after.LastEvent()
		require.True(t, ok)
		assert.Equal(t, handling.Load, lastEvent.Type())
		assert.Equal(t, cargo.Misrouted, after.RoutingStatus())
	})

	t.Run("zero_value_delivery_cannot_be_updated", func(t *testing.T) {
		var delivery cargo.Delivery

		_, err := delivery.UpdateOnRouting(spec, itinerary)

		require.ErrorIs(t, err, cargo.ErrDeliveryIsNotConstructed)
	})
}

func TestRestoreDelivery(t *testing.T) {
	cargoID := trackingID(t, "ABC123")
	spec := routeSpec(t, location.Shanghai, location.Gothenburg, 20)
	itinerary := shanghaiToGothenburg(t)

	t.Run("preserves_the_calculation_time", func(t *testing.T) {
		loaded := newEvent(t, cargoID, handling.Load, location.Shanghai, voyagePtr(voyage.V300), 2)
		calculatedAt := day(3)

		restored, err := cargo.RestoreDelivery(&loaded, itinerary, spec, calculatedAt)

		require.NoError(t, err)
		assert.Equal(t, calculatedAt, restored.CalculatedAt())
		assert.Equal(t, cargo.OnboardCarrier, restored.TransportStatus())
	})

	t.Run("requires_a_calculation_time", func(t *testing.T) {
		_, err := cargo.RestoreDelivery(nil, itinerary, spec, time.Time{})

		require.Error(t, err)
	})
}
