package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrChangeDestinationCommandIsNotConstructed = errors.New(
	"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
)

// ChangeDestinationCommand represents a customer request to send a booked
// cargo to a different destination. The origin and deadline of the booking
// stay as they are; the cargo may become misrouted until it is assigned a
// new itinerary.
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	trackingID          kernel.TrackingID
	destinationUnLocode kernel.UnLocode

	guard guard.ConstructorGuard
}

// NewChangeDestinationCommand creates a command to change the destination
// of a cargo.
func NewChangeDestinationCommand(
	trackingID kernel.TrackingID,
	destinationUnLocode kernel.UnLocode,
) (ChangeDestinationCommand, error) {
	changeCommand := ChangeDestinationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		changeCommand.setTrackingID(trackingID),
		changeCommand.setDestinationUnLocode(destinationUnLocode),
	); err != nil {
		return ChangeDestinationCommand{}, err
	}

	return changeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeDestinationCommandIsNotConstructed if validation fails.
func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

// TrackingID returns the tracking ID of the cargo to re-route.
func (c ChangeDestinationCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// DestinationUnLocode returns the locode of the new destination.
func (c ChangeDestinationCommand) DestinationUnLocode() kernel.UnLocode {
	return c.destinationUnLocode
}

func (c *ChangeDestinationCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *ChangeDestinationCommand) setDestinationUnLocode(destinationUnLocode kernel.UnLocode) error {
	if err := destinationUnLocode.Validate(); err != nil {
		return err
	}

	c.destinationUnLocode = destinationUnLocode
	return nil
}
