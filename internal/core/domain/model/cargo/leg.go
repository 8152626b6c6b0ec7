package cargo

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLegIsNotConstructed is returned when attempting to use an improperly
// initialized Leg.
var ErrLegIsNotConstructed = errs.NewValueIsRequiredError(
	"leg must be created via NewLeg constructor")

// Leg is one segment of an itinerary: the cargo is loaded onto a voyage at
// a location and unloaded off it at another. Immutable value object.
//
// A leg does not verify that its locations and times correspond to a
// carrier movement in the voyage's own schedule. Itineraries come from the
// external routing service, which is trusted to produce legs consistent
// with the schedules it planned them from.
type Leg struct { //nolint:recvcheck //using for validation
	voyage         voyage.Voyage
	loadLocation   location.Location
	unloadLocation location.Location
	loadTime       time.Time
	unloadTime     time.Time
	guard          guard.ConstructorGuard
}

// NewLeg creates a new Leg on the given voyage. Load and unload locations
// must differ and the unload time must be after the load time.
func NewLeg(
	legVoyage voyage.Voyage,
	loadLocation location.Location,
	unloadLocation location.Location,
	loadTime time.Time,
	unloadTime time.Time,
) (Leg, error) {
	leg := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := leg.setVoyage(legVoyage); err != nil {
		return Leg{}, err
	}
	if err := leg.setLocations(loadLocation, unloadLocation); err != nil {
		return Leg{}, err
	}
	if err := leg.setTimes(loadTime, unloadTime); err != nil {
		return Leg{}, err
	}

	return leg, nil
}

// Validate checks if the Leg was properly constructed using the
// constructor. The zero value fails this validation.
func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// Voyage returns the voyage this leg travels on.
func (l Leg) Voyage() voyage.Voyage {
	return l.voyage
}

// LoadLocation returns where the cargo is loaded for this leg.
func (l Leg) LoadLocation() location.Location {
	return l.loadLocation
}

// UnloadLocation returns where the cargo is unloaded after this leg.
func (l Leg) UnloadLocation() location.Location {
	return l.unloadLocation
}

// LoadTime returns when the cargo is loaded for this leg.
func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadTime returns when the cargo is unloaded after this leg.
func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

// SameValueAs compares two legs attribute by attribute.
func (l Leg) SameValueAs(other Leg) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	sameVoyage, err := l.voyage.SameIdentityAs(other.voyage)
	if err != nil {
		return false, err
	}
	sameLoad, err := l.loadLocation.SameIdentityAs(other.loadLocation)
	if err != nil {
		return false, err
	}
	sameUnload, err := l.unloadLocation.SameIdentityAs(other.unloadLocation)
	if err != nil {
		return false, err
	}

	return sameVoyage && sameLoad && sameUnload &&
		l.loadTime.Equal(other.loadTime) &&
		l.unloadTime.Equal(other.unloadTime), nil
}

// String returns a human-readable representation of the leg.
// This method implements the fmt.Stringer interface.
func (l Leg) String() string {
	return fmt.Sprintf("%s: %s -> %s", l.voyage, l.loadLocation, l.unloadLocation)
}

// setVoyage sets the voyage with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (l *Leg) setVoyage(legVoyage voyage.Voyage) error {
	if err := legVoyage.Validate(); err != nil {
		return err
	}

	l.voyage = legVoyage
	return nil
}

// setLocations sets the load and unload locations with validation.
func (l *Leg) setLocations(loadLocation location.Location, unloadLocation location.Location) error {
	if err := loadLocation.Validate(); err != nil {
		return err
	}
	if err := unloadLocation.Validate(); err != nil {
		return err
	}

	same, err := loadLocation.SameIdentityAs(unloadLocation)
	if err != nil {
		return err
	}
	if same {
		return errs.NewValueIsInvalidErrorWithCause("leg",
			fmt.Errorf("load and unload location are both %s", loadLocation.UnLocode()))
	}

	l.loadLocation = loadLocation
	l.unloadLocation = unloadLocation
	return nil
}

// setTimes sets the load and unload times with validation.
func (l *Leg) setTimes(loadTime time.Time, unloadTime time.Time) error {
	if loadTime.IsZero() {
		return errs.NewValueIsRequiredError("load time")
	}
	if unloadTime.IsZero() {
		return errs.NewValueIsRequiredError("unload time")
	}
	if !unloadTime.After(loadTime) {
		return errs.NewValueIsInvalidErrorWithCause("leg",
			fmt.Errorf("unload time %s is not after load time %s",
				unloadTime.Format(time.RFC3339), loadTime.Format(time.RFC3339)))
	}

	l.loadTime = loadTime
	l.unloadTime = unloadTime
	return nil
}
