// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CargoRepoFactory provides access to the cargo repository within a
	// transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// HandlingEventRepoFactory provides access to the handling event
	// repository within a transaction.
	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	// LocationRepoFactory provides access to the location repository
	// within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// VoyageRepoFactory provides access to the voyage repository within a
	// transaction.
	VoyageRepoFactory interface {
		VoyageRepository() ports.VoyageRepository
	}

	// CargoUoW manages transactions for cargo-only operations, such as
	// assigning a route to an already booked cargo.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}

	// BookingUoW manages transactions for the booking flow, which touches
	// cargos and resolves locations.
	BookingUoW interface {
		TxManager
		CargoRepoFactory
		LocationRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// HandlingUoW manages transactions for handling event registration,
	// which validates against cargos, voyages and locations before
	// appending the event.
	HandlingUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
		LocationRepoFactory
		VoyageRepoFactory
	}

	// HandlingUoWFactory creates new handling unit of work instances.
	HandlingUoWFactory interface {
		Create() HandlingUoW
	}

	// InspectionUoW manages transactions for cargo inspection, which reads
	// the handling history and updates the cargo's delivery snapshot.
	InspectionUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
	}

	// InspectionUoWFactory creates new inspection unit of work instances.
	InspectionUoWFactory interface {
		Create() InspectionUoW
	}
)
