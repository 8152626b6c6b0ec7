package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrUnLocodeIsNotConstructed is returned when attempting to use an
// improperly initialized UnLocode. Locodes must be created via the
// NewUnLocode constructor to ensure validity.
var ErrUnLocodeIsNotConstructed = errs.NewValueIsRequiredError(
	"UN locode must be created via NewUnLocode constructor")

// Country code is exactly two letters. Location code is usually three
// letters, but may contain the numbers 2-9 as well.
var unLocodePattern = regexp.MustCompile(`^[a-zA-Z]{2}[a-zA-Z2-9]{3}$`)

// UnLocode is a United Nations location code identifying a trade location,
// e.g. "SESTO" for Stockholm or "CNHKG" for Hongkong.
//
// See http://www.unece.org/cefact/locode/ for the code list.
//
// UnLocode is an immutable value object with value-based equality. The code
// is normalized to upper case at construction, so codes that differ only in
// letter case compare as equal.
//
// Example:
//
//	locode, err := kernel.NewUnLocode("nlrtm")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(locode.String()) // Output: NLRTM
type UnLocode struct { //nolint:recvcheck //using for validation
	unLocode string
	guard    guard.ConstructorGuard
}

// NewUnLocode creates a new UnLocode from a country-and-location string.
// The string must consist of two letters (the country code) followed by
// three characters that are letters or the digits 2-9 (the location code).
// Returns a validation error if the string does not match the pattern.
func NewUnLocode(countryAndLocation string) (UnLocode, error) {
	locode := UnLocode{
		guard: guard.NewConstructorGuard(),
	}

	if err := locode.setUnLocode(countryAndLocation); err != nil {
		return UnLocode{}, err
	}

	return locode, nil
}

// Validate checks if the UnLocode was properly constructed using the
// constructor. The zero value of UnLocode fails this validation.
func (u UnLocode) Validate() error {
	return u.guard.Validate(ErrUnLocodeIsNotConstructed)
}

// String returns the country code and location code concatenated,
// always upper case. This method implements the fmt.Stringer interface.
func (u UnLocode) String() string {
	return u.unLocode
}

// IsEqual compares two locodes for value equality.
// Both locodes must be properly constructed for the comparison to succeed.
func (u UnLocode) IsEqual(other UnLocode) (bool, error) {
	if err := u.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return u.unLocode == other.unLocode, nil
}

// setUnLocode sets the code with pattern validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (u *UnLocode) setUnLocode(countryAndLocation string) error {
	if countryAndLocation == "" {
		return errs.NewValueIsRequiredError("country and location")
	}

	if !unLocodePattern.MatchString(countryAndLocation) {
		return errs.NewValueIsInvalidErrorWithCause("UN locode",
			fmt.Errorf("%s does not match the UN/LOCODE pattern", countryAndLocation))
	}

	u.unLocode = strings.ToUpper(countryAndLocation)
	return nil
}
