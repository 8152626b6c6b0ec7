package voyage

import (
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrScheduleIsNotConstructed is returned when attempting to use an
// improperly initialized Schedule.
var ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError(
	"schedule must be created via NewSchedule constructor")

// Schedule is a voyage schedule: an ordered, non-empty sequence of carrier
// movements. The departure-location chaining between consecutive movements
// is enforced by the voyage Builder, not re-validated here.
type Schedule struct { //nolint:recvcheck //using for validation
	carrierMovements []CarrierMovement
	guard            guard.ConstructorGuard
}

// NewSchedule creates a new Schedule from an ordered sequence of movements.
// The sequence may not be empty and every movement must be properly
// constructed.
func NewSchedule(carrierMovements []CarrierMovement) (Schedule, error) {
	schedule := Schedule{
		guard: guard.NewConstructorGuard(),
	}

	if err := schedule.setCarrierMovements(carrierMovements); err != nil {
		return Schedule{}, err
	}

	return schedule, nil
}

// emptySchedule is used only by the Voyage NONE sentinel.
func emptySchedule() Schedule {
	return Schedule{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Schedule was properly constructed using the
// constructor. The zero value fails this validation.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// CarrierMovements returns the movements of this schedule as a copy,
// preserving immutability of the value object.
func (s Schedule) CarrierMovements() []CarrierMovement {
	movements := make([]CarrierMovement, len(s.carrierMovements))
	copy(movements, s.carrierMovements)
	return movements
}

// SameValueAs compares two schedules movement by movement.
func (s Schedule) SameValueAs(other Schedule) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	if len(s.carrierMovements) != len(other.carrierMovements) {
		return false, nil
	}

	for i, movement := range s.carrierMovements {
		same, err := movement.SameValueAs(other.carrierMovements[i])
		if err != nil {
			return false, err
		}
		if !same {
			return false, nil
		}
	}

	return true, nil
}

// setCarrierMovements sets the movement sequence with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (s *Schedule) setCarrierMovements(carrierMovements []CarrierMovement) error {
	if len(carrierMovements) == 0 {
		return errs.NewValueIsRequiredError("carrier movements")
	}

	for _, movement := range carrierMovements {
		if err := movement.Validate(); err != nil {
			return err
		}
	}

	s.carrierMovements = make([]CarrierMovement, len(carrierMovements))
	copy(s.carrierMovements, carrierMovements)
	return nil
}
