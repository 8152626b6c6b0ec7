// Package location provides the Location reference entity. A location is a
// stop on a journey, such as a cargo origin or destination, or a carrier
// movement endpoint. It is uniquely identified by a UN locode.
package location

import (
	"fmt"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location. Locations must be created via the
// NewLocation constructor to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an entity identified by its UN locode. Two locations are the
// same location exactly when their locodes are equal, regardless of the
// display name.
//
// Example:
//
//	locode, _ := kernel.NewUnLocode("SESTO")
//	stockholm, err := location.NewLocation(locode, "Stockholm")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(stockholm) // Output: Stockholm [SESTO]
type Location struct { //nolint:recvcheck //using for validation
	unLocode kernel.UnLocode
	name     string
	guard    guard.ConstructorGuard
}

// Unknown returns the special Location that marks an unknown location, used
// at read-facing API boundaries when no location is known yet. Internal
// logic represents the absence of a location as an absent value instead.
func Unknown() Location {
	locode, err := kernel.NewUnLocode("XXXXX")
	if err != nil {
		panic(err)
	}

	unknown, err := NewLocation(locode, "Unknown location")
	if err != nil {
		panic(err)
	}

	return unknown
}

// NewLocation creates a new Location with the given locode and display name.
// Returns a validation error if the locode is not properly constructed or
// the name is empty.
func NewLocation(unLocode kernel.UnLocode, name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setUnLocode(unLocode); err != nil {
		return Location{}, err
	}
	if err := loc.setName(name); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the
// constructor. The zero value of Location fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// UnLocode returns the UN locode identifying this location.
func (l Location) UnLocode() kernel.UnLocode {
	return l.unLocode
}

// Name returns the actual name of this location, e.g. "Stockholm".
func (l Location) Name() string {
	return l.name
}

// IsUnknown reports whether this location is the unknown-location sentinel.
func (l Location) IsUnknown() bool {
	return l.unLocode.String() == "XXXXX"
}

// SameIdentityAs compares two locations by identity. Since Location is an
// entity, this is true exactly when the UN locodes are equal.
func (l Location) SameIdentityAs(other Location) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return l.unLocode.IsEqual(other.unLocode)
}

// String returns a human-readable representation in the format
// "Name [LOCODE]". This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("%s [%s]", l.name, l.unLocode)
}

// setUnLocode sets the locode with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (l *Location) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}

	l.unLocode = unLocode
	return nil
}

// setName sets the display name with validation.
func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}

	l.name = name
	return nil
}
