package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// HandlingEventRepository defines the persistence contract for handling
// events. It is the asynchronous bridge between event registration and
// delivery rederivation: events are appended here, and the history is
// independently read back to update the owning cargo.
type HandlingEventRepository interface {
	// Add appends a handling event. Events are immutable facts; they are
	// never updated or deleted.
	Add(ctx context.Context, event handling.Event) error

	// GetHistory assembles the handling history of one cargo from all
	// events registered for its tracking ID.
	GetHistory(ctx context.Context, trackingID kernel.TrackingID) (handling.History, error)
}
