package handling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
)

// ErrCannotCreateHandlingEvent is the common sentinel for every failure to
// create a handling event from a registration attempt, whether the cause is
// a missing reference or an illegal type/voyage combination.
var ErrCannotCreateHandlingEvent = errors.New("cannot create handling event")

// UnknownCargoError is returned when a handling event refers to a cargo
// that does not exist.
type UnknownCargoError struct {
	TrackingID kernel.TrackingID
}

// NewUnknownCargoError creates an UnknownCargoError for the given tracking ID.
func NewUnknownCargoError(trackingID kernel.TrackingID) error {
	return &UnknownCargoError{TrackingID: trackingID}
}

func (e *UnknownCargoError) Error() string {
	return fmt.Sprintf("%s: no cargo with tracking ID %s", ErrCannotCreateHandlingEvent, e.TrackingID)
}

func (e *UnknownCargoError) Unwrap() error {
	return ErrCannotCreateHandlingEvent
}

// UnknownVoyageError is returned when a handling event refers to a voyage
// that does not exist.
type UnknownVoyageError struct {
	VoyageNumber kernel.VoyageNumber
}

// NewUnknownVoyageError creates an UnknownVoyageError for the given voyage
// number.
func NewUnknownVoyageError(voyageNumber kernel.VoyageNumber) error {
	return &UnknownVoyageError{VoyageNumber: voyageNumber}
}

func (e *UnknownVoyageError) Error() string {
	return fmt.Sprintf("%s: no voyage with number %s", ErrCannotCreateHandlingEvent, e.VoyageNumber)
}

func (e *UnknownVoyageError) Unwrap() error {
	return ErrCannotCreateHandlingEvent
}

// UnknownLocationError is returned when a handling event refers to a
// location that does not exist.
type UnknownLocationError struct {
	UnLocode kernel.UnLocode
}

// NewUnknownLocationError creates an UnknownLocationError for the given
// UN locode.
func NewUnknownLocationError(unLocode kernel.UnLocode) error {
	return &UnknownLocationError{UnLocode: unLocode}
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("%s: no location with UN locode %s", ErrCannotCreateHandlingEvent, e.UnLocode)
}

func (e *UnknownLocationError) Unwrap() error {
	return ErrCannotCreateHandlingEvent
}

// CargoFinder checks the existence of a cargo by tracking ID.
type CargoFinder interface {
	Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
}

// VoyageFinder resolves a voyage by its number. A missing voyage is
// reported with an error matching errs.ErrObjectNotFound.
type VoyageFinder interface {
	Get(ctx context.Context, voyageNumber kernel.VoyageNumber) (voyage.Voyage, error)
}

// LocationFinder resolves a location by its UN locode. A missing location
// is reported with an error matching errs.ErrObjectNotFound.
type LocationFinder interface {
	Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error)
}

// EventFactory creates handling events from registration attempts coming
// from the outside world. It validates referential integrity against the
// cargo, voyage and location stores before constructing the event, which in
// turn enforces the type/voyage legality rule.
//
// The factory holds no state beyond references to the finders.
type EventFactory struct {
	cargos    CargoFinder
	voyages   VoyageFinder
	locations LocationFinder
}

// NewEventFactory creates an EventFactory backed by the given finders.
// All three finders are required.
func NewEventFactory(cargos CargoFinder, voyages VoyageFinder, locations LocationFinder) (*EventFactory, error) {
	if cargos == nil {
		return nil, errs.NewValueIsRequiredError("cargos")
	}
	if voyages == nil {
		return nil, errs.NewValueIsRequiredError("voyages")
	}
	if locations == nil {
		return nil, errs.NewValueIsRequiredError("locations")
	}

	return &EventFactory{
		cargos:    cargos,
		voyages:   voyages,
		locations: locations,
	}, nil
}

// CreateEvent validates a registration attempt and constructs the handling
// event. Validation is performed in order: cargo existence, voyage existence
// when a voyage number is supplied (nil skips the check), location
// existence. Each missing reference yields its own error type; an illegal
// type/voyage combination is reported wrapped in
// ErrCannotCreateHandlingEvent.
func (f *EventFactory) CreateEvent(
	ctx context.Context,
	registrationTime time.Time,
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber *kernel.VoyageNumber,
	unLocode kernel.UnLocode,
	eventType EventType,
) (Event, error) {
	if err := trackingID.Validate(); err != nil {
		return Event{}, err
	}
	if err := unLocode.Validate(); err != nil {
		return Event{}, err
	}

	exists, err := f.cargos.Exists(ctx, trackingID)
	if err != nil {
		return Event{}, err
	}
	if !exists {
		return Event{}, NewUnknownCargoError(trackingID)
	}

	eventVoyage, err := f.findVoyage(ctx, voyageNumber)
	if err != nil {
		return Event{}, err
	}

	eventLocation, err := f.locations.Get(ctx, unLocode)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Event{}, NewUnknownLocationError(unLocode)
		}
		return Event{}, err
	}

	event, err := NewEvent(trackingID, eventType, eventLocation, eventVoyage, completionTime, registrationTime)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrCannotCreateHandlingEvent, err)
	}

	return event, nil
}

// findVoyage resolves the voyage for a registration attempt. A nil voyage
// number is legal and resolves to no voyage.
func (f *EventFactory) findVoyage(ctx context.Context, voyageNumber *kernel.VoyageNumber) (*voyage.Voyage, error) {
	if voyageNumber == nil {
		return nil, nil //nolint:nilnil //absent voyage number legally resolves to no voyage
	}

	found, err := f.voyages.Get(ctx, *voyageNumber)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, NewUnknownVoyageError(*voyageNumber)
		}
		return nil, err
	}

	return &found, nil
}
