package cargo

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrRouteSpecificationIsNotConstructed is returned when attempting to use
// an improperly initialized RouteSpecification.
var ErrRouteSpecificationIsNotConstructed = errs.NewValueIsRequiredError(
	"route specification must be created via NewRouteSpecification constructor")

// RouteSpecification describes where a cargo has to be transported from and
// to, and by when. Immutable value object. Origin and destination must be
// different locations.
type RouteSpecification struct { //nolint:recvcheck //using for validation
	origin          location.Location
	destination     location.Location
	arrivalDeadline time.Time
	guard           guard.ConstructorGuard
}

// NewRouteSpecification creates a new RouteSpecification.
func NewRouteSpecification(
	origin location.Location,
	destination location.Location,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	routeSpecification := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := routeSpecification.setLocations(origin, destination); err != nil {
		return RouteSpecification{}, err
	}
	if err := routeSpecification.setArrivalDeadline(arrivalDeadline); err != nil {
		return RouteSpecification{}, err
	}

	return routeSpecification, nil
}

// Validate checks if the RouteSpecification was properly constructed using
// the constructor. The zero value fails this validation.
func (r RouteSpecification) Validate() error {
	return r.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

// Origin returns where the cargo departs from.
func (r RouteSpecification) Origin() location.Location {
	return r.origin
}

// Destination returns where the cargo has to arrive.
func (r RouteSpecification) Destination() location.Location {
	return r.destination
}

// ArrivalDeadline returns when the cargo has to arrive at the latest.
func (r RouteSpecification) ArrivalDeadline() time.Time {
	return r.arrivalDeadline
}

// IsSatisfiedBy decides whether the given itinerary would take the cargo
// where this specification demands: its initial departure location matches
// the origin, its final arrival location matches the destination, and the
// arrival deadline is strictly after its final arrival time. Any failure,
// including an empty or unconstructed itinerary, yields false rather than
// an error.
func (r RouteSpecification) IsSatisfiedBy(itinerary Itinerary) bool {
	return r.ToSpecification()(itinerary)
}

// ToSpecification expresses the satisfaction predicate as a composable
// specification over itineraries.
func (r RouteSpecification) ToSpecification() kernel.Specification[Itinerary] {
	departsFromOrigin := kernel.Specification[Itinerary](func(i Itinerary) bool {
		same, err := r.origin.SameIdentityAs(i.InitialDepartureLocation())
		return err == nil && same
	})

	arrivesAtDestination := kernel.Specification[Itinerary](func(i Itinerary) bool {
		same, err := r.destination.SameIdentityAs(i.FinalArrivalLocation())
		return err == nil && same
	})

	meetsDeadline := kernel.Specification[Itinerary](func(i Itinerary) bool {
		arrival, ok := i.FinalArrivalTime()
		return ok && r.arrivalDeadline.After(arrival)
	})

	usable := kernel.Specification[Itinerary](func(i Itinerary) bool {
		return i.Validate() == nil && !i.IsEmpty()
	})

	return usable.And(departsFromOrigin).And(arrivesAtDestination).And(meetsDeadline)
}

// SameValueAs compares two route specifications attribute by attribute.
func (r RouteSpecification) SameValueAs(other RouteSpecification) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	sameOrigin, err := r.origin.SameIdentityAs(other.origin)
	if err != nil {
		return false, err
	}
	sameDestination, err := r.destination.SameIdentityAs(other.destination)
	if err != nil {
		return false, err
	}

	return sameOrigin && sameDestination &&
		r.arrivalDeadline.Equal(other.arrivalDeadline), nil
}

// setLocations sets origin and destination with validation. They must be
// different locations.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (r *RouteSpecification) setLocations(origin location.Location, destination location.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}

	same, err := origin.SameIdentityAs(destination)
	if err != nil {
		return err
	}
	if same {
		return errs.NewValueIsInvalidErrorWithCause("route specification",
			fmt.Errorf("origin and destination are both %s", origin.UnLocode()))
	}

	r.origin = origin
	r.destination = destination
	return nil
}

// setArrivalDeadline sets the deadline with validation.
func (r *RouteSpecification) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrival deadline")
	}

	r.arrivalDeadline = arrivalDeadline
	return nil
}
