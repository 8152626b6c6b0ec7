package voyage

import (
	"fmt"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrVoyageIsNotConstructed is returned when attempting to use an
// improperly initialized Voyage.
var ErrVoyageIsNotConstructed = errs.NewValueIsRequiredError(
	"voyage must be created via NewVoyage constructor or the Builder")

// noneVoyageNumber is the reserved number of the NONE sentinel voyage.
const noneVoyageNumber = "NONE"

// Voyage is a reference entity identified by its voyage number, owning a
// schedule of carrier movements. Two voyages are the same voyage exactly
// when their numbers are equal.
type Voyage struct { //nolint:recvcheck //using for validation
	voyageNumber kernel.VoyageNumber
	schedule     Schedule
	guard        guard.ConstructorGuard
}

// None returns the special Voyage that marks the absence of a voyage, used
// at read-facing API boundaries. Internal logic represents the absence of a
// voyage as an absent value instead.
func None() Voyage {
	number, err := kernel.NewVoyageNumber(noneVoyageNumber)
	if err != nil {
		panic(err)
	}

	return Voyage{
		voyageNumber: number,
		schedule:     emptySchedule(),
		guard:        guard.NewConstructorGuard(),
	}
}

// NewVoyage creates a new Voyage with the given number and schedule.
// Both must be properly constructed.
func NewVoyage(voyageNumber kernel.VoyageNumber, schedule Schedule) (Voyage, error) {
	voyage := Voyage{
		guard: guard.NewConstructorGuard(),
	}

	if err := voyage.setVoyageNumber(voyageNumber); err != nil {
		return Voyage{}, err
	}
	if err := voyage.setSchedule(schedule); err != nil {
		return Voyage{}, err
	}

	return voyage, nil
}

// Validate checks if the Voyage was properly constructed using the
// constructor. The zero value fails this validation.
func (v Voyage) Validate() error {
	return v.guard.Validate(ErrVoyageIsNotConstructed)
}

// VoyageNumber returns the number identifying this voyage.
func (v Voyage) VoyageNumber() kernel.VoyageNumber {
	return v.voyageNumber
}

// Schedule returns the schedule of this voyage.
func (v Voyage) Schedule() Schedule {
	return v.schedule
}

// IsNone reports whether this voyage is the no-voyage sentinel.
func (v Voyage) IsNone() bool {
	return v.voyageNumber.String() == noneVoyageNumber && len(v.schedule.carrierMovements) == 0
}

// SameIdentityAs compares two voyages by identity. Since Voyage is an
// entity, this is true exactly when the voyage numbers are equal.
func (v Voyage) SameIdentityAs(other Voyage) (bool, error) {
	if err := v.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return v.voyageNumber.IsEqual(other.voyageNumber)
}

// String returns a human-readable representation of the voyage.
// This method implements the fmt.Stringer interface.
func (v Voyage) String() string {
	return fmt.Sprintf("Voyage %s", v.voyageNumber)
}

// setVoyageNumber sets the number with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (v *Voyage) setVoyageNumber(voyageNumber kernel.VoyageNumber) error {
	if err := voyageNumber.Validate(); err != nil {
		return err
	}

	v.voyageNumber = voyageNumber
	return nil
}

// setSchedule sets the schedule with validation.
func (v *Voyage) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	v.schedule = schedule
	return nil
}
