package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrRequestPossibleRoutesCommandIsNotConstructed = errors.New(
	"RequestPossibleRoutesCommand must be created via NewRequestPossibleRoutesCommand constructor",
)

// RequestPossibleRoutesCommand represents a request to find candidate
// itineraries that satisfy a cargo's current route specification.
type RequestPossibleRoutesCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewRequestPossibleRoutesCommand creates a command to request candidate
// routes for a cargo.
func NewRequestPossibleRoutesCommand(trackingID kernel.TrackingID) (RequestPossibleRoutesCommand, error) {
	routesCommand := RequestPossibleRoutesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := routesCommand.setTrackingID(trackingID); err != nil {
		return RequestPossibleRoutesCommand{}, err
	}

	return routesCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestPossibleRoutesCommandIsNotConstructed if validation fails.
func (c RequestPossibleRoutesCommand) Validate() error {
	return c.guard.Validate(ErrRequestPossibleRoutesCommandIsNotConstructed)
}

// TrackingID returns the tracking ID of the cargo to route.
func (c RequestPossibleRoutesCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c *RequestPossibleRoutesCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}
