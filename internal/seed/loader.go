// Package seed loads the sample reference data into the database. The
// tracker is useless without locations and voyage schedules; on a fresh
// database the loader installs the well-known sample set so bookings and
// handling reports can be exercised right away.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// Loader installs sample locations and voyages through the repositories.
// Loading is idempotent: reference data already present is left untouched.
type Loader struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewLoader creates a sample data loader.
func NewLoader(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *Loader {
	return &Loader{
		uowFactory: uowFactory,
		logger:     logger.With("component", "sample_data_loader"),
	}
}

// Load installs the sample locations and voyages in one transaction.
func (l *Loader) Load(ctx context.Context) error {
	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("seed: begin transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadedLocations, err := l.loadLocations(ctx, uow.LocationRepository())
	if err != nil {
		return err
	}
	loadedVoyages, err := l.loadVoyages(ctx, uow.VoyageRepository())
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}

	l.logger.InfoContext(ctx, "sample data loaded",
		"locations", loadedLocations, "voyages", loadedVoyages)
	return nil
}

func (l *Loader) loadLocations(ctx context.Context, locations ports.LocationRepository) (int, error) {
	loaded := 0
	for _, sample := range location.Samples() {
		_, err := locations.Get(ctx, sample.UnLocode())
		if err == nil {
			continue
		}
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return loaded, fmt.Errorf("seed: check location %s: %w", sample.UnLocode(), err)
		}

		if err := locations.Add(ctx, sample); err != nil {
			return loaded, fmt.Errorf("seed: add location %s: %w", sample.UnLocode(), err)
		}
		loaded++
	}
	return loaded, nil
}

func (l *Loader) loadVoyages(ctx context.Context, voyages ports.VoyageRepository) (int, error) {
	loaded := 0
	for _, sample := range voyage.Samples() {
		_, err := voyages.Get(ctx, sample.VoyageNumber())
		if err == nil {
			continue
		}
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return loaded, fmt.Errorf("seed: check voyage %s: %w", sample.VoyageNumber(), err)
		}

		if err := voyages.Add(ctx, sample); err != nil {
			return loaded, fmt.Errorf("seed: add voyage %s: %w", sample.VoyageNumber(), err)
		}
		loaded++
	}
	return loaded, nil
}
