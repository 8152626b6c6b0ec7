package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrAssignCargoToRouteCommandIsNotConstructed = errors.New(
	"AssignCargoToRouteCommand must be created via NewAssignCargoToRouteCommand constructor",
)

// AssignCargoToRouteCommand represents a request to attach a chosen
// itinerary to a booked cargo. The itinerary typically comes from the
// candidates returned by the routing service.
type AssignCargoToRouteCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	itinerary  cargo.Itinerary

	guard guard.ConstructorGuard
}

// NewAssignCargoToRouteCommand creates a command to route a cargo. The
// itinerary must be constructed and non-empty.
func NewAssignCargoToRouteCommand(
	trackingID kernel.TrackingID,
	itinerary cargo.Itinerary,
) (AssignCargoToRouteCommand, error) {
	assignCommand := AssignCargoToRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setTrackingID(trackingID),
		assignCommand.setItinerary(itinerary),
	); err != nil {
		return AssignCargoToRouteCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCargoToRouteCommandIsNotConstructed if validation fails.
func (c AssignCargoToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignCargoToRouteCommandIsNotConstructed)
}

// TrackingID returns the tracking ID of the cargo to route.
func (c AssignCargoToRouteCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Itinerary returns the itinerary to assign.
func (c AssignCargoToRouteCommand) Itinerary() cargo.Itinerary {
	return c.itinerary
}

func (c *AssignCargoToRouteCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *AssignCargoToRouteCommand) setItinerary(itinerary cargo.Itinerary) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}
	if itinerary.IsEmpty() {
		return errs.NewValueIsRequiredError("itinerary")
	}

	c.itinerary = itinerary
	return nil
}
