// Package ports defines the contracts between the cargo tracking core and
// the infrastructure around it: repositories, the unit of work, the
// external routing service and the application event channel. These
// interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
type CargoRepository interface {
	// Add persists a newly booked cargo aggregate to storage.
	// The cargo must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo aggregate.
	// The cargo must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a cargo aggregate by its tracking ID.
	// Returns the complete cargo with its routing and delivery snapshot.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// Exists reports whether a cargo with the given tracking ID is booked.
	// Used by the handling event factory to validate registration attempts
	// without loading the whole aggregate.
	Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)

	// GetAllUnderway retrieves all cargos that have not reached the
	// CLAIMED transport status. Used by the periodic cargo inspection to
	// keep delivery snapshots in sync with the handling history.
	GetAllUnderway(ctx context.Context) ([]*cargo.Cargo, error)

	// NextTrackingID reserves a new unique tracking ID for a booking.
	NextTrackingID(ctx context.Context) (kernel.TrackingID, error)
}
