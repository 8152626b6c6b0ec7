package commands

import (
	"errors"

	"cargotracker/internal/pkg/guard"
)

var (
	ErrInspectUnderwayCargosCommandIsNotConstructed = errors.New(
		"InspectUnderwayCargosCommand must be created via NewInspectUnderwayCargosCommand constructor",
	)

	// ErrNoUnderwayCargosFound is returned by the sweep when nothing is in
	// transit. An expected business scenario, not a failure.
	ErrNoUnderwayCargosFound = errors.New("no underway cargos found")
)

// InspectUnderwayCargosCommand represents a request to inspect every cargo
// that has not been claimed yet. It is issued by the periodic inspection
// sweep and carries no parameters.
type InspectUnderwayCargosCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewInspectUnderwayCargosCommand creates a command to sweep all underway
// cargos.
func NewInspectUnderwayCargosCommand() InspectUnderwayCargosCommand {
	return InspectUnderwayCargosCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrInspectUnderwayCargosCommandIsNotConstructed if validation
// fails.
func (c InspectUnderwayCargosCommand) Validate() error {
	return c.guard.Validate(ErrInspectUnderwayCargosCommandIsNotConstructed)
}
