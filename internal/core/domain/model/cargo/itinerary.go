package cargo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrItineraryIsNotConstructed is returned when attempting to use an
// improperly initialized Itinerary.
var ErrItineraryIsNotConstructed = errs.NewValueIsRequiredError(
	"itinerary must be created via NewItinerary or EmptyItinerary")

// Itinerary is the plan a cargo is expected to follow: an ordered sequence
// of legs, each leg connecting to the next. Immutable value object.
//
// An unrouted cargo carries the empty itinerary, created by
// EmptyItinerary. The empty itinerary has relaxed matching rules: with no
// plan, no handling event can be off-plan.
type Itinerary struct { //nolint:recvcheck //using for validation
	legs  []Leg
	guard guard.ConstructorGuard
}

// NewItinerary creates an Itinerary from an ordered, non-empty sequence of
// legs. Use EmptyItinerary for the no-plan sentinel.
func NewItinerary(legs []Leg) (Itinerary, error) {
	itinerary := Itinerary{
		guard: guard.NewConstructorGuard(),
	}

	if err := itinerary.setLegs(legs); err != nil {
		return Itinerary{}, err
	}

	return itinerary, nil
}

// EmptyItinerary returns the itinerary of an unrouted cargo. It has no legs
// and considers every handling event expected.
func EmptyItinerary() Itinerary {
	return Itinerary{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Itinerary was properly constructed using one of
// the constructors. The zero value fails this validation.
func (i Itinerary) Validate() error {
	return i.guard.Validate(ErrItineraryIsNotConstructed)
}

// IsEmpty reports whether this is the no-plan itinerary.
func (i Itinerary) IsEmpty() bool {
	return len(i.legs) == 0
}

// Legs returns the legs of this itinerary as a copy,
// preserving immutability of the value object.
func (i Itinerary) Legs() []Leg {
	legs := make([]Leg, len(i.legs))
	copy(legs, i.legs)
	return legs
}

// InitialDepartureLocation returns the load location of the first leg, or
// the unknown location for the empty itinerary.
func (i Itinerary) InitialDepartureLocation() location.Location {
	if i.IsEmpty() {
		return location.Unknown()
	}
	return i.legs[0].LoadLocation()
}

// FinalArrivalLocation returns the unload location of the last leg, or the
// unknown location for the empty itinerary.
func (i Itinerary) FinalArrivalLocation() location.Location {
	if i.IsEmpty() {
		return location.Unknown()
	}
	return i.legs[len(i.legs)-1].UnloadLocation()
}

// FinalArrivalTime returns the unload time of the last leg. The second
// return value is false for the empty itinerary.
func (i Itinerary) FinalArrivalTime() (time.Time, bool) {
	if i.IsEmpty() {
		return time.Time{}, false
	}
	return i.legs[len(i.legs)-1].UnloadTime(), true
}

// IsExpected decides whether an observed handling event is consistent with
// this plan:
//
//   - empty itinerary: every event is expected (no plan, nothing off-plan)
//   - RECEIVE: at the load location of the first leg
//   - LOAD: at the load location and voyage of any leg
//   - UNLOAD: at the unload location and voyage of any leg
//   - CLAIM: at the unload location of the last leg
//   - CUSTOMS: always expected
//
// Comparison is by identity of location and voyage; times are not matched.
func (i Itinerary) IsExpected(event handling.Event) (bool, error) {
	if err := i.Validate(); err != nil {
		return false, err
	}
	if err := event.Validate(); err != nil {
		return false, err
	}

	if i.IsEmpty() {
		return true, nil
	}

	switch event.Type() {
	case handling.Receive:
		return i.legs[0].LoadLocation().SameIdentityAs(event.Location())

	case handling.Load:
		for _, leg := range i.legs {
			matches, err := legMatchesEvent(leg.LoadLocation(), leg, event)
			if err != nil {
				return false, err
			}
			if matches {
				return true, nil
			}
		}
		return false, nil

	case handling.Unload:
		for _, leg := range i.legs {
			matches, err := legMatchesEvent(leg.UnloadLocation(), leg, event)
			if err != nil {
				return false, err
			}
			if matches {
				return true, nil
			}
		}
		return false, nil

	case handling.Claim:
		return i.legs[len(i.legs)-1].UnloadLocation().SameIdentityAs(event.Location())

	case handling.Customs:
		return true, nil

	case handling.UnknownType:
		return false, nil

	default:
		return false, nil
	}
}

// legMatchesEvent reports whether the given leg location and the leg's
// voyage both match the event.
func legMatchesEvent(legLocation location.Location, leg Leg, event handling.Event) (bool, error) {
	sameLocation, err := legLocation.SameIdentityAs(event.Location())
	if err != nil {
		return false, err
	}
	if !sameLocation {
		return false, nil
	}

	return leg.Voyage().SameIdentityAs(event.Voyage())
}

// SameValueAs compares two itineraries leg by leg.
func (i Itinerary) SameValueAs(other Itinerary) (bool, error) {
	if err := i.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	if len(i.legs) != len(other.legs) {
		return false, nil
	}

	for idx, leg := range i.legs {
		same, err := leg.SameValueAs(other.legs[idx])
		if err != nil {
			return false, err
		}
		if !same {
			return false, nil
		}
	}

	return true, nil
}

// setLegs sets the leg sequence with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (i *Itinerary) setLegs(legs []Leg) error {
	if len(legs) == 0 {
		return errs.NewValueIsRequiredError("legs")
	}

	for _, leg := range legs {
		if err := leg.Validate(); err != nil {
			return err
		}
	}

	i.legs = make([]Leg, len(legs))
	copy(i.legs, legs)
	return nil
}
