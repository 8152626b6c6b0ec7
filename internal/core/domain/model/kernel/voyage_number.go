package kernel

import (
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrVoyageNumberIsNotConstructed is returned when attempting to use an
// improperly initialized VoyageNumber. Voyage numbers must be created via
// the NewVoyageNumber constructor to ensure validity.
var ErrVoyageNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"voyage number must be created via NewVoyageNumber constructor")

// VoyageNumber identifies a voyage, e.g. "V100".
//
// VoyageNumber is an immutable value object with value-based equality,
// normalized to upper case at construction.
type VoyageNumber struct { //nolint:recvcheck //using for validation
	number string
	guard  guard.ConstructorGuard
}

// NewVoyageNumber creates a new VoyageNumber from its string representation.
// The number may not be empty and is normalized to upper case.
func NewVoyageNumber(number string) (VoyageNumber, error) {
	voyageNumber := VoyageNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := voyageNumber.setNumber(number); err != nil {
		return VoyageNumber{}, err
	}

	return voyageNumber, nil
}

// Validate checks if the VoyageNumber was properly constructed using the
// constructor. The zero value of VoyageNumber fails this validation.
func (v VoyageNumber) Validate() error {
	return v.guard.Validate(ErrVoyageNumberIsNotConstructed)
}

// String returns the voyage number as an upper case string.
// This method implements the fmt.Stringer interface.
func (v VoyageNumber) String() string {
	return v.number
}

// IsEqual compares two voyage numbers for value equality.
// Both numbers must be properly constructed for the comparison to succeed.
func (v VoyageNumber) IsEqual(other VoyageNumber) (bool, error) {
	if err := v.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return v.number == other.number, nil
}

// setNumber sets the voyage number with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (v *VoyageNumber) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("voyage number")
	}

	v.number = strings.ToUpper(number)
	return nil
}
