package commands

import (
	"context"
	"errors"
)

// InspectUnderwayCargosCommandHandler sweeps all cargos that are still in
// transit and inspects each one. Every cargo is inspected in its own
// transaction: one failing cargo does not block the rest, and the errors
// are collected and reported together.
type InspectUnderwayCargosCommandHandler struct {
	uowFactory     InspectionUoWFactory
	inspectHandler InspectCargoCommandHandler
}

// NewInspectUnderwayCargosCommandHandler creates a handler for the
// inspection sweep. The per-cargo inspection is delegated to the given
// InspectCargoCommandHandler.
func NewInspectUnderwayCargosCommandHandler(
	uowFactory InspectionUoWFactory,
	inspectHandler InspectCargoCommandHandler,
) InspectUnderwayCargosCommandHandler {
	return InspectUnderwayCargosCommandHandler{
		uowFactory:     uowFactory,
		inspectHandler: inspectHandler,
	}
}

// Handle processes the sweep. Returns ErrNoUnderwayCargosFound when nothing
// is in transit.
func (h *InspectUnderwayCargosCommandHandler) Handle(ctx context.Context, cmd InspectUnderwayCargosCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	underway, err := uow.CargoRepository().GetAllUnderway(ctx)
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return err
	}

	if len(underway) == 0 {
		return ErrNoUnderwayCargosFound
	}

	var inspectionErrs []error
	for _, aggregate := range underway {
		inspectCommand, err := NewInspectCargoCommand(aggregate.TrackingID())
		if err != nil {
			inspectionErrs = append(inspectionErrs, err)
			continue
		}

		if err := h.inspectHandler.Handle(ctx, inspectCommand); err != nil {
			inspectionErrs = append(inspectionErrs, err)
		}
	}

	return errors.Join(inspectionErrs...)
}
