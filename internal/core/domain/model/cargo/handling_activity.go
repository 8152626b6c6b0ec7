package cargo

import (
	"fmt"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrHandlingActivityIsNotConstructed is returned when attempting to use an
// improperly initialized HandlingActivity.
var ErrHandlingActivityIsNotConstructed = errs.NewValueIsRequiredError(
	"handling activity must be created via NewHandlingActivity constructor")

// HandlingActivity is a handling step that is expected to happen to a cargo
// next: an event type at a location, possibly on a voyage. It is derived by
// the delivery computation, never reported from the outside.
type HandlingActivity struct { //nolint:recvcheck //using for validation
	eventType handling.EventType
	location  location.Location

	// voyage is the expected voyage (nil for voyageless activities)
	voyage *voyage.Voyage

	guard guard.ConstructorGuard
}

// NewHandlingActivity creates a HandlingActivity. The voyage follows the
// same legality rule as handling events: required for LOAD and UNLOAD,
// prohibited otherwise.
func NewHandlingActivity(
	eventType handling.EventType,
	activityLocation location.Location,
	activityVoyage *voyage.Voyage,
) (HandlingActivity, error) {
	activity := HandlingActivity{
		guard: guard.NewConstructorGuard(),
	}

	if err := activity.setTypeAndVoyage(eventType, activityVoyage); err != nil {
		return HandlingActivity{}, err
	}
	if err := activity.setLocation(activityLocation); err != nil {
		return HandlingActivity{}, err
	}

	return activity, nil
}

// Validate checks if the HandlingActivity was properly constructed using
// the constructor. The zero value fails this validation.
func (a HandlingActivity) Validate() error {
	return a.guard.Validate(ErrHandlingActivityIsNotConstructed)
}

// Type returns the expected kind of handling.
func (a HandlingActivity) Type() handling.EventType {
	return a.eventType
}

// Location returns where the handling is expected.
func (a HandlingActivity) Location() location.Location {
	return a.location
}

// Voyage returns the expected voyage, or the NONE sentinel for voyageless
// activities; use HasVoyage to distinguish.
func (a HandlingActivity) Voyage() voyage.Voyage {
	if a.voyage == nil {
		return voyage.None()
	}
	return *a.voyage
}

// HasVoyage reports whether this activity expects a particular voyage.
func (a HandlingActivity) HasVoyage() bool {
	return a.voyage != nil
}

// SameValueAs compares two activities attribute by attribute.
func (a HandlingActivity) SameValueAs(other HandlingActivity) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	if a.eventType != other.eventType {
		return false, nil
	}

	sameLocation, err := a.location.SameIdentityAs(other.location)
	if err != nil {
		return false, err
	}
	if !sameLocation {
		return false, nil
	}

	if a.HasVoyage() != other.HasVoyage() {
		return false, nil
	}
	if !a.HasVoyage() {
		return true, nil
	}

	return a.voyage.SameIdentityAs(*other.voyage)
}

// String returns a human-readable representation of the activity.
// This method implements the fmt.Stringer interface.
func (a HandlingActivity) String() string {
	if a.voyage != nil {
		return fmt.Sprintf("%s at %s on %s", a.eventType, a.location, a.voyage)
	}
	return fmt.Sprintf("%s at %s", a.eventType, a.location)
}

// setTypeAndVoyage sets the event type and voyage together, enforcing the
// same legality rule as handling events.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (a *HandlingActivity) setTypeAndVoyage(eventType handling.EventType, activityVoyage *voyage.Voyage) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	if eventType.RequiresVoyage() && activityVoyage == nil {
		return errs.NewValueIsInvalidErrorWithCause("handling activity",
			fmt.Errorf("%s activities require a voyage", eventType))
	}
	if eventType.ProhibitsVoyage() && activityVoyage != nil {
		return errs.NewValueIsInvalidErrorWithCause("handling activity",
			fmt.Errorf("%s activities must not have a voyage", eventType))
	}

	if activityVoyage != nil {
		if err := activityVoyage.Validate(); err != nil {
			return err
		}
		voyageCopy := *activityVoyage
		a.voyage = &voyageCopy
	}

	a.eventType = eventType
	return nil
}

// setLocation sets the expected location with validation.
func (a *HandlingActivity) setLocation(activityLocation location.Location) error {
	if err := activityLocation.Validate(); err != nil {
		return err
	}

	a.location = activityLocation
	return nil
}
