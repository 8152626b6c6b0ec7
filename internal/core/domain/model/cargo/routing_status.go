package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// RoutingStatus tells whether a cargo currently has a plan, and whether
// that plan would actually take it where it has to go:
//
//	no itinerary assigned                     -> NotRouted
//	itinerary satisfies the specification     -> Routed
//	itinerary does not satisfy it             -> Misrouted
type RoutingStatus int

const (
	// RoutingStatusUnknown represents an invalid or undefined routing
	// status. This value (0) helps catch uninitialized values.
	RoutingStatusUnknown RoutingStatus = iota

	// NotRouted means no itinerary has been assigned yet.
	NotRouted

	// Routed means the assigned itinerary satisfies the route specification.
	Routed

	// Misrouted means the assigned itinerary does not satisfy the route
	// specification, typically after a destination change.
	Misrouted
)

// getRoutingStatusStrings returns a map of RoutingStatus values to their
// string representations. All statuses are included for string conversion.
func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		RoutingStatusUnknown: "UNKNOWN",
		NotRouted:            "NOT_ROUTED",
		Routed:               "ROUTED",
		Misrouted:            "MISROUTED",
	}
}

// getValidRoutingStatusStrings returns a map of only valid RoutingStatus
// values. Only valid statuses are included to support validation.
func getValidRoutingStatusStrings() map[RoutingStatus]string {
	//nolint:exhaustive // RoutingStatusUnknown is intentionally excluded as it's invalid
	return map[RoutingStatus]string{
		NotRouted: "NOT_ROUTED",
		Routed:    "ROUTED",
		Misrouted: "MISROUTED",
	}
}

// Validate checks if the RoutingStatus value is valid.
// RoutingStatusUnknown (0) and any other unlisted values are invalid.
func (s RoutingStatus) Validate() error {
	if _, ok := getValidRoutingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("routing status",
			fmt.Errorf("%d is not a valid routing status", s))
	}
	return nil
}

// String returns the upper-case name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any RoutingStatus value, including invalid ones.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
