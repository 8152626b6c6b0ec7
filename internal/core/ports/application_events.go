package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
)

// ApplicationEvents is the notification side channel of the tracking core.
// Registering a handling event triggers CargoWasHandled, which in turn
// drives the asynchronous delivery rederivation; the inspection raises the
// misdirection and arrival notifications for interested parties.
//
// Implementations must not let a failing notification break the operation
// that raised it.
type ApplicationEvents interface {
	// CargoWasHandled signals that a handling event was registered and
	// persisted, and the cargo's delivery snapshot should be rederived.
	CargoWasHandled(ctx context.Context, event handling.Event)

	// CargoWasMisdirected signals that an inspection found the cargo off
	// its planned route.
	CargoWasMisdirected(ctx context.Context, aggregate *cargo.Cargo)

	// CargoHasArrived signals that an inspection found the cargo unloaded
	// at its destination.
	CargoHasArrived(ctx context.Context, aggregate *cargo.Cargo)
}
