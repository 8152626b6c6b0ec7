package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// TransportStatus tells where a cargo physically is right now, derived from
// the type of its last handling event:
//
//	no event yet          -> NotReceived
//	RECEIVE, UNLOAD,
//	CUSTOMS               -> InPort
//	LOAD                  -> OnboardCarrier
//	CLAIM                 -> Claimed
//
// TransportStatusUnknown is the defensive fallback for an unmapped event
// type. With the closed event type enumeration it should be unreachable;
// observing it indicates an invariant violation, not a normal state.
type TransportStatus int

const (
	// TransportStatusUnknown represents an undetermined transport status.
	TransportStatusUnknown TransportStatus = iota

	// NotReceived means the cargo has not yet been received at its origin.
	NotReceived

	// InPort means the cargo is sitting in a port, between voyages.
	InPort

	// OnboardCarrier means the cargo is currently loaded on a voyage.
	OnboardCarrier

	// Claimed means the customer has claimed the cargo. Terminal.
	Claimed
)

// getTransportStatusStrings returns a map of TransportStatus values to
// their string representations. All statuses are included for string
// conversion.
func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		TransportStatusUnknown: "UNKNOWN",
		NotReceived:            "NOT_RECEIVED",
		InPort:                 "IN_PORT",
		OnboardCarrier:         "ONBOARD_CARRIER",
		Claimed:                "CLAIMED",
	}
}

// Validate checks if the TransportStatus value is valid. Unlike the other
// enumerations TransportStatusUnknown is a representable status: it is the
// documented fallback of the delivery derivation.
func (s TransportStatus) Validate() error {
	if _, ok := getTransportStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport status",
			fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the upper-case name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any TransportStatus value, including invalid ones.
func (s TransportStatus) String() string {
	if str, ok := getTransportStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
