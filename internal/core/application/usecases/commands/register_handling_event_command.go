package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
	"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
)

// RegisterHandlingEventCommand represents a handling report from the field:
// a cargo was received, loaded, unloaded, claimed or cleared through customs
// at a location. The voyage number is optional; whether it must or must not
// be present depends on the event type and is enforced when the event is
// created.
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	completionTime time.Time
	trackingID     kernel.TrackingID

	// voyageNumber is nil for voyageless event types
	voyageNumber *kernel.VoyageNumber

	unLocode  kernel.UnLocode
	eventType handling.EventType

	guard guard.ConstructorGuard
}

// NewRegisterHandlingEventCommand creates a command to register a handling
// event. Pass a nil voyage number for RECEIVE, CLAIM and CUSTOMS reports.
func NewRegisterHandlingEventCommand(
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber *kernel.VoyageNumber,
	unLocode kernel.UnLocode,
	eventType handling.EventType,
) (RegisterHandlingEventCommand, error) {
	registerCommand := RegisterHandlingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setCompletionTime(completionTime),
		registerCommand.setTrackingID(trackingID),
		registerCommand.setVoyageNumber(voyageNumber),
		registerCommand.setUnLocode(unLocode),
		registerCommand.setEventType(eventType),
	); err != nil {
		return RegisterHandlingEventCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterHandlingEventCommandIsNotConstructed if validation
// fails.
func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

// CompletionTime returns when the handling took place in the real world.
func (c RegisterHandlingEventCommand) CompletionTime() time.Time {
	return c.completionTime
}

// TrackingID returns the tracking ID of the handled cargo.
func (c RegisterHandlingEventCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// VoyageNumber returns the reported voyage number, or nil for voyageless
// reports.
func (c RegisterHandlingEventCommand) VoyageNumber() *kernel.VoyageNumber {
	return c.voyageNumber
}

// UnLocode returns the locode of the handling location.
func (c RegisterHandlingEventCommand) UnLocode() kernel.UnLocode {
	return c.unLocode
}

// EventType returns the kind of handling that was reported.
func (c RegisterHandlingEventCommand) EventType() handling.EventType {
	return c.eventType
}

func (c *RegisterHandlingEventCommand) setCompletionTime(completionTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completion time")
	}

	c.completionTime = completionTime
	return nil
}

func (c *RegisterHandlingEventCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *RegisterHandlingEventCommand) setVoyageNumber(voyageNumber *kernel.VoyageNumber) error {
	if voyageNumber == nil {
		return nil
	}
	if err := voyageNumber.Validate(); err != nil {
		return err
	}

	numberCopy := *voyageNumber
	c.voyageNumber = &numberCopy
	return nil
}

func (c *RegisterHandlingEventCommand) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}

	c.unLocode = unLocode
	return nil
}

func (c *RegisterHandlingEventCommand) setEventType(eventType handling.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}
