package handling

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when attempting to use an improperly
// initialized Event.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError(
	"handling event must be created via NewEvent constructor or the EventFactory")

// Event is an immutable fact about the handling of a cargo: the cargo was
// received, loaded, unloaded, claimed or cleared through customs at a
// location, at a point in time, possibly on a voyage.
//
// The event's identity is its content: tracking ID, type, location, voyage
// and completion time. Registration time records when the fact was reported
// and is deliberately excluded from identity, so the same real-world fact
// reported twice is recognized as a duplicate.
//
// Construction enforces the type/voyage legality rule: LOAD and UNLOAD
// require a voyage, RECEIVE, CLAIM and CUSTOMS prohibit one. Violations fail
// immediately, never silently.
type Event struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	eventType  EventType
	location   location.Location

	// voyage is the associated voyage (nil when the event type prohibits one)
	voyage *voyage.Voyage

	completionTime   time.Time
	registrationTime time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a handling event for the cargo identified by trackingID.
// eventVoyage must be non-nil exactly when the event type requires a voyage;
// pass nil for RECEIVE, CLAIM and CUSTOMS events.
func NewEvent(
	trackingID kernel.TrackingID,
	eventType EventType,
	eventLocation location.Location,
	eventVoyage *voyage.Voyage,
	completionTime time.Time,
	registrationTime time.Time,
) (Event, error) {
	event := Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := event.setTrackingID(trackingID); err != nil {
		return Event{}, err
	}
	if err := event.setTypeAndVoyage(eventType, eventVoyage); err != nil {
		return Event{}, err
	}
	if err := event.setLocation(eventLocation); err != nil {
		return Event{}, err
	}
	if err := event.setTimes(completionTime, registrationTime); err != nil {
		return Event{}, err
	}

	return event, nil
}

// Validate checks if the Event was properly constructed using the
// constructor. The zero value fails this validation.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// TrackingID returns the tracking ID of the handled cargo.
func (e Event) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// Type returns the kind of handling that took place.
func (e Event) Type() EventType {
	return e.eventType
}

// Location returns where the handling took place.
func (e Event) Location() location.Location {
	return e.location
}

// Voyage returns the voyage the cargo was loaded onto or unloaded off.
// For event types without a voyage the NONE sentinel voyage is returned;
// use HasVoyage to distinguish.
func (e Event) Voyage() voyage.Voyage {
	if e.voyage == nil {
		return voyage.None()
	}
	return *e.voyage
}

// HasVoyage reports whether this event carries a voyage association.
func (e Event) HasVoyage() bool {
	return e.voyage != nil
}

// CompletionTime returns when the handling was completed in the real world.
func (e Event) CompletionTime() time.Time {
	return e.completionTime
}

// RegistrationTime returns when the event was registered in the system.
func (e Event) RegistrationTime() time.Time {
	return e.registrationTime
}

// SameEventAs compares two events by their content identity: tracking ID,
// type, location, voyage and completion time. Registration time is excluded.
func (e Event) SameEventAs(other Event) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return e.contentKey() == other.contentKey(), nil
}

// String returns a human-readable representation of the event.
// This method implements the fmt.Stringer interface.
func (e Event) String() string {
	if e.voyage != nil {
		return fmt.Sprintf("%s of cargo %s at %s on %s, completed %s",
			e.eventType, e.trackingID, e.location,
			e.voyage, e.completionTime.Format(time.RFC3339))
	}
	return fmt.Sprintf("%s of cargo %s at %s, completed %s",
		e.eventType, e.trackingID, e.location, e.completionTime.Format(time.RFC3339))
}

// contentKey builds the deduplication key over the event's identifying
// content. Two events with equal keys describe the same real-world fact.
func (e Event) contentKey() string {
	voyageNumber := ""
	if e.voyage != nil {
		voyageNumber = e.voyage.VoyageNumber().String()
	}

	return fmt.Sprintf("%s|%s|%s|%s|%d",
		e.trackingID,
		voyageNumber,
		e.location.UnLocode(),
		e.eventType,
		e.completionTime.UnixNano())
}

// setTrackingID sets the cargo reference with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (e *Event) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	e.trackingID = trackingID
	return nil
}

// setTypeAndVoyage sets the event type and voyage together, enforcing the
// legality rule in both directions.
func (e *Event) setTypeAndVoyage(eventType EventType, eventVoyage *voyage.Voyage) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	if eventType.RequiresVoyage() && eventVoyage == nil {
		return errs.NewValueIsInvalidErrorWithCause("handling event",
			fmt.Errorf("%s events require a voyage", eventType))
	}
	if eventType.ProhibitsVoyage() && eventVoyage != nil {
		return errs.NewValueIsInvalidErrorWithCause("handling event",
			fmt.Errorf("%s events must not have a voyage", eventType))
	}

	if eventVoyage != nil {
		if err := eventVoyage.Validate(); err != nil {
			return err
		}
		voyageCopy := *eventVoyage
		e.voyage = &voyageCopy
	}

	e.eventType = eventType
	return nil
}

// setLocation sets the handling location with validation.
func (e *Event) setLocation(eventLocation location.Location) error {
	if err := eventLocation.Validate(); err != nil {
		return err
	}

	e.location = eventLocation
	return nil
}

// setTimes sets the completion and registration times with validation.
func (e *Event) setTimes(completionTime time.Time, registrationTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completion time")
	}
	if registrationTime.IsZero() {
		return errs.NewValueIsRequiredError("registration time")
	}

	e.completionTime = completionTime
	e.registrationTime = registrationTime
	return nil
}
