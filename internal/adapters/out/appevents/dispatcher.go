// Package appevents is the in-process implementation of the application
// event channel. Registering a handling event and inspecting the cargo are
// decoupled: the registration commits first, then the dispatcher triggers
// the inspection asynchronously. Misdirection and arrival findings are
// logged; a real deployment would fan them out to a message broker or a
// notification service.
package appevents

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
)

const inspectionTimeout = 30 * time.Second

// Dispatcher implements ports.ApplicationEvents. A failing notification
// never propagates to the operation that raised it; failures are logged
// and the operation's commit stands.
type Dispatcher struct {
	inspectHandler *commands.InspectCargoCommandHandler
	logger         *slog.Logger
	inflight       sync.WaitGroup
}

// NewDispatcher creates the in-process application event dispatcher. The
// inspection handler is bound afterwards: the handler raises its findings
// through this dispatcher, so the two reference each other.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// BindInspectHandler wires the handler that CargoWasHandled delegates to.
// Must be called once during composition, before the dispatcher receives
// events.
func (d *Dispatcher) BindInspectHandler(inspectHandler commands.InspectCargoCommandHandler) {
	d.inspectHandler = &inspectHandler
}

// CargoWasHandled triggers an asynchronous inspection of the handled
// cargo. The registration transaction has already committed when this is
// called, so the inspection reads the new event from storage.
func (d *Dispatcher) CargoWasHandled(ctx context.Context, event handling.Event) {
	d.logger.InfoContext(ctx, "cargo was handled",
		"tracking_id", event.TrackingID().String(),
		"event_type", event.Type().String(),
		"location", event.Location().UnLocode().String(),
	)

	if d.inspectHandler == nil {
		d.logger.ErrorContext(ctx, "no inspection handler bound, skipping inspection",
			"tracking_id", event.TrackingID().String())
		return
	}

	cmd, err := commands.NewInspectCargoCommand(event.TrackingID())
	if err != nil {
		d.logger.ErrorContext(ctx, "cannot build inspection command",
			"tracking_id", event.TrackingID().String(), "error", err)
		return
	}

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		// The registration request may be done by now; the inspection
		// runs on its own deadline.
		inspectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), inspectionTimeout)
		defer cancel()

		if err := d.inspectHandler.Handle(inspectCtx, cmd); err != nil {
			d.logger.ErrorContext(inspectCtx, "asynchronous cargo inspection failed",
				"tracking_id", cmd.TrackingID().String(), "error", err)
		}
	}()
}

// CargoWasMisdirected reports that an inspection found the cargo off its
// planned route.
func (d *Dispatcher) CargoWasMisdirected(ctx context.Context, aggregate *cargo.Cargo) {
	d.logger.WarnContext(ctx, "cargo was misdirected",
		"tracking_id", aggregate.TrackingID().String(),
		"last_known_location", aggregate.Delivery().LastKnownLocation().UnLocode().String(),
	)
}

// CargoHasArrived reports that an inspection found the cargo unloaded at
// its destination.
func (d *Dispatcher) CargoHasArrived(ctx context.Context, aggregate *cargo.Cargo) {
	d.logger.InfoContext(ctx, "cargo has arrived",
		"tracking_id", aggregate.TrackingID().String(),
		"destination", aggregate.RouteSpecification().Destination().UnLocode().String(),
	)
}

// Drain blocks until all in-flight inspections have finished. Called on
// shutdown.
func (d *Dispatcher) Drain() {
	d.inflight.Wait()
}
