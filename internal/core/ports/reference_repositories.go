package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// LocationRepository defines the persistence contract for locations.
// Locations are reference data: they are loaded by the sample data seed and
// read by bookings and handling event registrations.
type LocationRepository interface {
	// Add persists a location. Adding the same locode twice is an error.
	Add(ctx context.Context, loc location.Location) error

	// Get retrieves a location by its UN locode.
	// A missing location is reported with errs.ObjectNotFoundError.
	Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error)

	// GetAll retrieves all known locations, ordered by locode.
	GetAll(ctx context.Context) ([]location.Location, error)
}

// VoyageRepository defines the persistence contract for voyages and their
// schedules.
type VoyageRepository interface {
	// Add persists a voyage with its full schedule.
	Add(ctx context.Context, v voyage.Voyage) error

	// Get retrieves a voyage by its number, including the schedule.
	// A missing voyage is reported with errs.ObjectNotFoundError.
	Get(ctx context.Context, voyageNumber kernel.VoyageNumber) (voyage.Voyage, error)
}
