package voyage

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
)

// Builder constructs a Voyage incrementally by chaining carrier movements.
// Each added movement departs from the arrival location of the previous
// movement, starting from the initial departure location, so a voyage built
// through the Builder always forms an unbroken chain.
//
// Example:
//
//	number, _ := kernel.NewVoyageNumber("V100")
//	v, err := voyage.NewBuilder(number, location.HongKong).
//	    AddMovement(location.Tokyo, departs, arrives).
//	    AddMovement(location.NewYork, departs2, arrives2).
//	    Build()
type Builder struct {
	voyageNumber      kernel.VoyageNumber
	departureLocation location.Location
	carrierMovements  []CarrierMovement
	err               error
}

// NewBuilder creates a Builder for the given voyage number, starting at the
// given departure location. Validation errors are deferred to Build.
func NewBuilder(voyageNumber kernel.VoyageNumber, departureLocation location.Location) *Builder {
	builder := &Builder{
		voyageNumber:      voyageNumber,
		departureLocation: departureLocation,
	}

	if err := voyageNumber.Validate(); err != nil {
		builder.err = err
	} else if err := departureLocation.Validate(); err != nil {
		builder.err = err
	}

	return builder
}

// AddMovement appends a movement from the current departure location to the
// given arrival location. The next movement will depart from that arrival
// location. Errors are recorded and reported by Build.
func (b *Builder) AddMovement(
	arrivalLocation location.Location,
	departureTime time.Time,
	arrivalTime time.Time,
) *Builder {
	if b.err != nil {
		return b
	}

	movement, err := NewCarrierMovement(b.departureLocation, arrivalLocation, departureTime, arrivalTime)
	if err != nil {
		b.err = err
		return b
	}

	b.carrierMovements = append(b.carrierMovements, movement)
	// Next departure location is the same as this arrival location.
	b.departureLocation = arrivalLocation
	return b
}

// Build finalizes the voyage. It requires at least one movement and
// re-derives the departure-location chaining over the accumulated sequence
// before constructing the schedule.
func (b *Builder) Build() (Voyage, error) {
	if b.err != nil {
		return Voyage{}, b.err
	}

	if len(b.carrierMovements) == 0 {
		return Voyage{}, errs.NewValueIsRequiredError("carrier movements")
	}

	for i := 1; i < len(b.carrierMovements); i++ {
		chained, err := b.carrierMovements[i].DepartureLocation().
			SameIdentityAs(b.carrierMovements[i-1].ArrivalLocation())
		if err != nil {
			return Voyage{}, err
		}
		if !chained {
			return Voyage{}, errs.NewValueIsInvalidErrorWithCause("carrier movements",
				fmt.Errorf("movement %d departs from %s, previous movement arrives at %s",
					i, b.carrierMovements[i].DepartureLocation(), b.carrierMovements[i-1].ArrivalLocation()))
		}
	}

	schedule, err := NewSchedule(b.carrierMovements)
	if err != nil {
		return Voyage{}, err
	}

	return NewVoyage(b.voyageNumber, schedule)
}
