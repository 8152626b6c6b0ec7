package handling

import (
	"fmt"
	"strings"

	"cargotracker/internal/pkg/errs"
)

// EventType is the closed enumeration of handling event kinds. Each type
// carries a fixed rule of whether a voyage association is required or
// prohibited:
//
//	LOAD, UNLOAD             require a voyage
//	RECEIVE, CLAIM, CUSTOMS  prohibit a voyage
//
// The rule is total over the five types and is enforced by the Event
// constructor.
type EventType int

const (
	// UnknownType represents an invalid or undefined event type.
	// This value (0) helps catch uninitialized EventType values.
	UnknownType EventType = iota

	// Receive records that the cargo was received at an origin location.
	Receive

	// Load records that the cargo was loaded onto a voyage at a location.
	Load

	// Unload records that the cargo was unloaded off a voyage at a location.
	Unload

	// Claim records that the cargo was claimed by the customer.
	Claim

	// Customs records that the cargo was cleared through customs.
	Customs
)

// getEventTypeStrings returns a map of EventType values to their string
// representations. All types are included for string conversion.
func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		UnknownType: "UNKNOWN",
		Receive:     "RECEIVE",
		Load:        "LOAD",
		Unload:      "UNLOAD",
		Claim:       "CLAIM",
		Customs:     "CUSTOMS",
	}
}

// getValidEventTypeStrings returns a map of only valid EventType values.
// Only valid types are included to support validation.
func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[EventType]string{
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Claim:   "CLAIM",
		Customs: "CUSTOMS",
	}
}

// EventTypeFromString parses an event type from its string representation.
// Parsing is case-insensitive. Used when events arrive from external
// sources such as the API or persistence.
func EventTypeFromString(s string) (EventType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for eventType, str := range getValidEventTypeStrings() {
		if str == normalized {
			return eventType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("event type",
		fmt.Errorf("%q is not a valid handling event type", s))
}

// Validate checks if the EventType value is valid.
// UnknownType (0) and any other unlisted values are invalid.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type",
			fmt.Errorf("%d is not a valid handling event type", t))
	}
	return nil
}

// String returns the upper-case name of the event type.
// This method implements the fmt.Stringer interface and is safe to call on
// any EventType value, including invalid ones.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresVoyage reports whether events of this type must carry a voyage.
// True for LOAD and UNLOAD: a cargo is always loaded onto or unloaded off a
// particular voyage.
func (t EventType) RequiresVoyage() bool {
	return t == Load || t == Unload
}

// ProhibitsVoyage reports whether events of this type must not carry a
// voyage. Every valid type either requires or prohibits one; there is no
// optional middle ground.
func (t EventType) ProhibitsVoyage() bool {
	return !t.RequiresVoyage()
}
