package handling_test

import (
	"context"
	"testing"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCargoFinder struct {
	known map[string]bool
}

func (f *fakeCargoFinder) Exists(_ context.Context, trackingID kernel.TrackingID) (bool, error) {
	return f.known[trackingID.String()], nil
}

type fakeVoyageFinder struct{}

func (f *fakeVoyageFinder) Get(_ context.Context, voyageNumber kernel.VoyageNumber) (voyage.Voyage, error) {
	if found, ok := voyage.LookupSample(voyageNumber); ok {
		return found, nil
	}
	return voyage.Voyage{}, errs.NewObjectNotFoundError("voyage", voyageNumber.String())
}

type fakeLocationFinder struct{}

func (f *fakeLocationFinder) Get(_ context.Context, unLocode kernel.UnLocode) (location.Location, error) {
	if found, ok := location.LookupSample(unLocode); ok {
		return found, nil
	}
	return location.Location{}, errs.NewObjectNotFoundError("location", unLocode.String())
}

func newTestFactory(t *testing.T, knownCargos ...string) *handling.EventFactory {
	t.Helper()

	known := make(map[string]bool, len(knownCargos))
	for _, id := range knownCargos {
		known[id] = true
	}

	factory, err := handling.NewEventFactory(
		&fakeCargoFinder{known: known}, &fakeVoyageFinder{}, &fakeLocationFinder{})
	require.NoError(t, err)
	return factory
}

func unLocode(t *testing.T, code string) kernel.UnLocode {
	t.Helper()
	locode, err := kernel.NewUnLocode(code)
	require.NoError(t, err)
	return locode
}

func voyageNumber(t *testing.T, number string) *kernel.VoyageNumber {
	t.Helper()
	voyageNumber, err := kernel.NewVoyageNumber(number)
	require.NoError(t, err)
	return &voyageNumber
}

func TestEventFactory_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_load_event_with_resolved_references", func(t *testing.T) {
		// Given
		factory := newTestFactory(t, "ABC123")

		// When
		event, err := factory.CreateEvent(ctx, registered(1), completed(1),
			trackingID(t, "ABC123"), voyageNumber(t, "V100"), unLocode(t, "CNHKG"), handling.Load)

		// Then
		require.NoError(t, err)
		require.NoError(t, event.Validate())
		assert.Equal(t, handling.Load, event.Type())
		assert.Equal(t, "V100", event.Voyage().VoyageNumber().String())
		assert.Equal(t, "CNHKG", event.Location().UnLocode().String())
	})

	t.Run("absent_voyage_number_skips_the_voyage_lookup", func(t *testing.T) {
		// Given
		factory := newTestFactory(t, "ABC123")

		// When
		event, err := factory.CreateEvent(ctx, registered(1), completed(1),
			trackingID(t, "ABC123"), nil, unLocode(t, "CNHKG"), handling.Receive)

		// Then
		require.NoError(t, err)
		assert.False(t, event.HasVoyage())
	})

	t.Run("unknown_cargo_is_reported", func(t *testing.T) {
		// Given
		factory := newTestFactory(t)

		// When
		_, err := factory.CreateEvent(ctx, registered(1), completed(1),
			trackingID(t, "NOPE42"), nil, unLocode(t, "CNHKG"), handling.Receive)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)

		var unknownCargo *handling.UnknownCargoError
		require.ErrorAs(t, err, &unknownCargo)
		assert.Equal(t, "NOPE42", unknownCargo.TrackingID.String())
	})

	t.Run("unknown_voyage_is_reported", func(t *testing.T) {
		// Given
		factory := newTestFactory(t, "ABC123")

		// When
		_, err := factory.CreateEvent(ctx, registered(1), completed(1),
			trackingID(t, "ABC123"), voyageNumber(t, "V999"), unLocode(t, "CNHKG"), handling.Load)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)

		var unknownVoyage *handling.UnknownVoyageError
		require.ErrorAs(t, err, &unknownVoyage)
		assert.Equal(t, "V999", unknownVoyage.VoyageNumber.String())
	})

	t.Run("unknown_location_is_reported", func(t *testing.T) {
		// Given
		factory := newTestFactory(t, "ABC123")

		// When: ZZZZZ is well-formed but no such location exists
		_, err := factory.CreateEvent(ctx, registered(1), completed(1),
			trackingID(t, "ABC123"), nil, unLocode(t, "ZZZZZ"), handling.Receive)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)

		var unknownLocation *handling.UnknownLocationError
		require.ErrorAs(t, err, &unknownLocation)
		assert.Equal(t, "ZZZZZ", unknownLocation.UnLocode.String())
	})

	t.Run("illegal_type_voyage_combination_is_wrapped", func(t *testing.T) {
		// Given
		factory := newTestFactory(t, "ABC123")

		// When: RECEIVE must not carry a voyage
		_, err := factory.CreateEvent(ctx, registered(1), completed(1),
			trackingID(t, "ABC123"), voyageNumber(t, "V100"), unLocode(t, "CNHKG"), handling.Receive)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)
	})

	t.Run("validation_order_reports_cargo_before_voyage", func(t *testing.T) {
		// Given: neither the cargo nor the voyage exists
		factory := newTestFactory(t)

		// When
		_, err := factory.CreateEvent(ctx, registered(1), completed(1),
			trackingID(t, "NOPE42"), voyageNumber(t, "V999"), unLocode(t, "CNHKG"), handling.Load)

		// Then
		var unknownCargo *handling.UnknownCargoError
		require.ErrorAs(t, err, &unknownCargo)
	})
}

func TestNewEventFactory(t *testing.T) {
	t.Run("all_finders_are_required", func(t *testing.T) {
		_, err := handling.NewEventFactory(nil, &fakeVoyageFinder{}, &fakeLocationFinder{})
		require.Error(t, err)

		_, err = handling.NewEventFactory(&fakeCargoFinder{}, nil, &fakeLocationFinder{})
		require.Error(t, err)

		_, err = handling.NewEventFactory(&fakeCargoFinder{}, &fakeVoyageFinder{}, nil)
		require.Error(t, err)
	})
}
