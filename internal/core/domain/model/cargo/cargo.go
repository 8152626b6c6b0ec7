package cargo

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrCargoIsNotConstructed is returned when a Cargo instance was not
// created through NewCargo or RestoreCargo.
var ErrCargoIsNotConstructed = errors.New(
	"cargo must be created via NewCargo or RestoreCargo")

// Cargo is the aggregate root of the tracking domain. It carries the
// customer requirement (route specification), the plan (itinerary) and the
// derived progress (delivery) for one shipped cargo, identified for life by
// its tracking ID.
//
// Cargo follows these invariants:
//   - The tracking ID never changes.
//   - The origin is derived once from the route specification at booking
//     and never changes afterwards, even when the specification is replaced.
//   - Every routing change (SpecifyNewRoute, AssignToRoute) synchronously
//     rederives the delivery snapshot.
//   - Handling progress is rederived only through DeriveDeliveryProgress,
//     fed with an externally loaded handling history.
//
// A cargo is never deleted; claiming it is the terminal state.
type Cargo struct {
	trackingID kernel.TrackingID

	// origin is fixed at booking time
	origin location.Location

	routeSpecification RouteSpecification
	itinerary          Itinerary
	delivery           Delivery

	guard guard.ConstructorGuard
}

// NewCargo books a new cargo for the given route specification. The cargo
// starts unrouted, with the empty itinerary and a delivery snapshot derived
// from an empty handling history.
func NewCargo(trackingID kernel.TrackingID, routeSpecification RouteSpecification) (*Cargo, error) {
	cargo := &Cargo{
		itinerary: EmptyItinerary(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	cargo.origin = routeSpecification.Origin()

	emptyHistory, err := handling.NewHistory(nil)
	if err != nil {
		return nil, err
	}

	delivery, err := DeriveDeliveryFrom(routeSpecification, cargo.itinerary, emptyHistory)
	if err != nil {
		return nil, err
	}
	cargo.delivery = delivery

	return cargo, nil
}

// RestoreCargo reconstructs a Cargo aggregate from persistent storage. The
// restored cargo behaves identically to one created through normal domain
// operations.
func RestoreCargo(
	trackingID kernel.TrackingID,
	origin location.Location,
	routeSpecification RouteSpecification,
	itinerary Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	cargo := &Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setOrigin(origin),
		cargo.setRouteSpecification(routeSpecification),
		cargo.setItinerary(itinerary),
		cargo.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return cargo, nil
}

// Validate ensures the Cargo instance was properly constructed through
// NewCargo or RestoreCargo.
func (c *Cargo) Validate() error {
	if c == nil {
		return ErrCargoIsNotConstructed
	}
	if err := c.guard.Validate(ErrCargoIsNotConstructed); err != nil {
		return err
	}
	return nil
}

// TrackingID returns the identifier the cargo is tracked by.
func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns where the cargo was originally booked from. Unlike the
// route specification's origin, this never changes.
func (c *Cargo) Origin() location.Location {
	return c.origin
}

// RouteSpecification returns the current customer requirement.
func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

// Itinerary returns the currently assigned plan. An unrouted cargo carries
// the empty itinerary.
func (c *Cargo) Itinerary() Itinerary {
	return c.itinerary
}

// Delivery returns the current derived progress snapshot.
func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// IsEqual compares two cargos by tracking ID only, never by attributes.
func (c *Cargo) IsEqual(other *Cargo) bool {
	if other == nil {
		return false
	}
	same, err := c.trackingID.IsEqual(other.trackingID)
	return err == nil && same
}

// SpecifyNewRoute replaces the route specification, e.g. when the customer
// changes the destination, and synchronously rederives the delivery
// snapshot against the existing itinerary. The origin is not touched.
func (c *Cargo) SpecifyNewRoute(routeSpecification RouteSpecification) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := routeSpecification.Validate(); err != nil {
		return err
	}

	delivery, err := c.delivery.UpdateOnRouting(routeSpecification, c.itinerary)
	if err != nil {
		return err
	}

	c.routeSpecification = routeSpecification
	c.delivery = delivery
	return nil
}

// AssignToRoute attaches an itinerary to the cargo and synchronously
// rederives the delivery snapshot against the existing route specification.
func (c *Cargo) AssignToRoute(itinerary Itinerary) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := itinerary.Validate(); err != nil {
		return err
	}
	if itinerary.IsEmpty() {
		return errs.NewValueIsRequiredError("itinerary")
	}

	delivery, err := c.delivery.UpdateOnRouting(c.routeSpecification, itinerary)
	if err != nil {
		return err
	}

	c.itinerary = itinerary
	c.delivery = delivery
	return nil
}

// DeriveDeliveryProgress rederives the delivery snapshot from the given
// handling history, using the cargo's current route specification and
// itinerary. This is the asynchronous side of the consistency boundary: an
// external collaborator loads the history after new events were persisted
// and hands it in here.
func (c *Cargo) DeriveDeliveryProgress(history handling.History) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := history.Validate(); err != nil {
		return err
	}

	delivery, err := DeriveDeliveryFrom(c.routeSpecification, c.itinerary, history)
	if err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}

// String returns a human-readable representation of the cargo.
// This method implements the fmt.Stringer interface.
func (c *Cargo) String() string {
	return fmt.Sprintf("Cargo %s", c.trackingID)
}

// setTrackingID validates and sets the cargo's identifier.
// This is a private method used only during construction.
func (c *Cargo) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

// setOrigin validates and sets the booking origin.
// This is a private method used only during restoration.
func (c *Cargo) setOrigin(origin location.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

// setRouteSpecification validates and sets the customer requirement.
// This is a private method used only during construction.
func (c *Cargo) setRouteSpecification(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return err
	}
	c.routeSpecification = routeSpecification
	return nil
}

// setItinerary validates and sets the plan.
// This is a private method used only during restoration.
func (c *Cargo) setItinerary(itinerary Itinerary) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}
	c.itinerary = itinerary
	return nil
}

// setDelivery validates and sets the progress snapshot.
// This is a private method used only during restoration.
func (c *Cargo) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	c.delivery = delivery
	return nil
}
