package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrBookCargoCommandIsNotConstructed = errors.New(
	"BookCargoCommand must be created via NewBookCargoCommand constructor",
)

// BookCargoCommand represents a request to book a new cargo from an origin
// to a destination with an arrival deadline. The tracking ID is generated by
// the repository during handling.
//
// Example:
//
//	origin, _ := kernel.NewUnLocode("CNSHA")
//	destination, _ := kernel.NewUnLocode("SEGOT")
//	cmd, err := NewBookCargoCommand(origin, destination, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookCargoCommandHandler(uowFactory)
//	trackingID, err := handler.Handle(ctx, cmd)
type BookCargoCommand struct { //nolint:recvcheck //using for validation
	originUnLocode      kernel.UnLocode
	destinationUnLocode kernel.UnLocode
	arrivalDeadline     time.Time

	guard guard.ConstructorGuard
}

// NewBookCargoCommand creates a command to book a new cargo. Origin and
// destination must be valid locodes and differ from each other; the
// deadline must be set.
func NewBookCargoCommand(
	originUnLocode kernel.UnLocode,
	destinationUnLocode kernel.UnLocode,
	arrivalDeadline time.Time,
) (BookCargoCommand, error) {
	bookCommand := BookCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookCommand.setUnLocodes(originUnLocode, destinationUnLocode),
		bookCommand.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return BookCargoCommand{}, err
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookCargoCommandIsNotConstructed if validation fails.
func (c BookCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookCargoCommandIsNotConstructed)
}

// OriginUnLocode returns the locode the cargo departs from.
func (c BookCargoCommand) OriginUnLocode() kernel.UnLocode {
	return c.originUnLocode
}

// DestinationUnLocode returns the locode the cargo has to arrive at.
func (c BookCargoCommand) DestinationUnLocode() kernel.UnLocode {
	return c.destinationUnLocode
}

// ArrivalDeadline returns when the cargo has to arrive at the latest.
func (c BookCargoCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *BookCargoCommand) setUnLocodes(origin kernel.UnLocode, destination kernel.UnLocode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}

	same, err := origin.IsEqual(destination)
	if err != nil {
		return err
	}
	if same {
		return errs.NewValueIsInvalidError("origin and destination must differ")
	}

	c.originUnLocode = origin
	c.destinationUnLocode = destination
	return nil
}

func (c *BookCargoCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrival deadline")
	}

	c.arrivalDeadline = arrivalDeadline
	return nil
}
