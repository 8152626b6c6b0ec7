package kernel

import (
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrTrackingIDIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingID. Tracking ids must be created via the
// NewTrackingID constructor to ensure validity.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking id must be created via NewTrackingID constructor")

// TrackingID uniquely identifies a particular cargo. It is assigned when a
// cargo is booked and never changes during the cargo's life cycle.
//
// TrackingID is an immutable value object with value-based equality. The
// identifier is normalized to upper case at construction, so lookups are
// case-insensitive.
//
// Example:
//
//	id, err := kernel.NewTrackingID("abc123")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(id.String()) // Output: ABC123
type TrackingID struct { //nolint:recvcheck //using for validation
	id    string
	guard guard.ConstructorGuard
}

// NewTrackingID creates a new TrackingID from its string representation.
// The identifier may not be empty and is normalized to upper case.
func NewTrackingID(id string) (TrackingID, error) {
	trackingID := TrackingID{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingID.setID(id); err != nil {
		return TrackingID{}, err
	}

	return trackingID, nil
}

// Validate checks if the TrackingID was properly constructed using the
// constructor. The zero value of TrackingID fails this validation.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}

// String returns the identifier as an upper case string.
// This method implements the fmt.Stringer interface.
func (t TrackingID) String() string {
	return t.id
}

// IsEqual compares two tracking ids for value equality.
// Both ids must be properly constructed for the comparison to succeed.
func (t TrackingID) IsEqual(other TrackingID) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return t.id == other.id, nil
}

// setID sets the identifier with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (t *TrackingID) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("tracking id")
	}

	t.id = strings.ToUpper(id)
	return nil
}
