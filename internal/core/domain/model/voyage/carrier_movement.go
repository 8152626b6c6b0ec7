// Package voyage provides the Voyage reference entity and its schedule of
// carrier movements. A voyage is a vessel's journey along a series of
// locations, identified by a voyage number. Voyages are constructed
// incrementally through the Builder, which chains each movement's departure
// location to the previous movement's arrival location.
package voyage

import (
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrCarrierMovementIsNotConstructed is returned when attempting to use an
// improperly initialized CarrierMovement.
var ErrCarrierMovementIsNotConstructed = errs.NewValueIsRequiredError(
	"carrier movement must be created via NewCarrierMovement constructor")

// CarrierMovement is a vessel voyage from one location to another. It is an
// immutable value object with value-based equality on all attributes.
type CarrierMovement struct { //nolint:recvcheck //using for validation
	departureLocation location.Location
	arrivalLocation   location.Location
	departureTime     time.Time
	arrivalTime       time.Time
	guard             guard.ConstructorGuard
}

// NewCarrierMovement creates a new CarrierMovement. All locations must be
// properly constructed and both times must be non-zero.
func NewCarrierMovement(
	departureLocation location.Location,
	arrivalLocation location.Location,
	departureTime time.Time,
	arrivalTime time.Time,
) (CarrierMovement, error) {
	movement := CarrierMovement{
		guard: guard.NewConstructorGuard(),
	}

	if err := movement.setLocations(departureLocation, arrivalLocation); err != nil {
		return CarrierMovement{}, err
	}
	if err := movement.setTimes(departureTime, arrivalTime); err != nil {
		return CarrierMovement{}, err
	}

	return movement, nil
}

// Validate checks if the CarrierMovement was properly constructed using the
// constructor. The zero value fails this validation.
func (m CarrierMovement) Validate() error {
	return m.guard.Validate(ErrCarrierMovementIsNotConstructed)
}

// DepartureLocation returns the location of departure.
func (m CarrierMovement) DepartureLocation() location.Location {
	return m.departureLocation
}

// ArrivalLocation returns the location of arrival.
func (m CarrierMovement) ArrivalLocation() location.Location {
	return m.arrivalLocation
}

// DepartureTime returns the time of departure.
func (m CarrierMovement) DepartureTime() time.Time {
	return m.departureTime
}

// ArrivalTime returns the time of arrival.
func (m CarrierMovement) ArrivalTime() time.Time {
	return m.arrivalTime
}

// SameValueAs compares two carrier movements attribute by attribute.
func (m CarrierMovement) SameValueAs(other CarrierMovement) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	sameDeparture, err := m.departureLocation.SameIdentityAs(other.departureLocation)
	if err != nil {
		return false, err
	}
	sameArrival, err := m.arrivalLocation.SameIdentityAs(other.arrivalLocation)
	if err != nil {
		return false, err
	}

	return sameDeparture && sameArrival &&
		m.departureTime.Equal(other.departureTime) &&
		m.arrivalTime.Equal(other.arrivalTime), nil
}

// setLocations sets the endpoints with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (m *CarrierMovement) setLocations(departure location.Location, arrival location.Location) error {
	if err := departure.Validate(); err != nil {
		return err
	}
	if err := arrival.Validate(); err != nil {
		return err
	}

	m.departureLocation = departure
	m.arrivalLocation = arrival
	return nil
}

// setTimes sets the departure and arrival times with validation.
func (m *CarrierMovement) setTimes(departureTime time.Time, arrivalTime time.Time) error {
	if departureTime.IsZero() {
		return errs.NewValueIsRequiredError("departure time")
	}
	if arrivalTime.IsZero() {
		return errs.NewValueIsRequiredError("arrival time")
	}

	m.departureTime = departureTime
	m.arrivalTime = arrivalTime
	return nil
}
