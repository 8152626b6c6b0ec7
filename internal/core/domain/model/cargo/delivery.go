package cargo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when attempting to use an
// improperly initialized Delivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery must be created via one of the delivery derivation functions")

// Delivery is the actual transportation progress of a cargo, as opposed to
// the customer requirement (RouteSpecification) and the plan (Itinerary).
// It is a pure, point-in-time derivation from exactly three inputs: the
// last known handling event (possibly absent), the itinerary and the route
// specification. It is never mutated independently; every change replaces
// the whole snapshot.
type Delivery struct { //nolint:recvcheck //using for validation
	// lastEvent is the most recently completed handling event
	// (nil before the first event is registered)
	lastEvent *handling.Event

	misdirected           bool
	routingStatus         RoutingStatus
	transportStatus       TransportStatus
	unloadedAtDestination bool

	// eta is the estimated time of arrival (zero when unknown)
	eta time.Time

	// nextActivity is the expected next handling step (nil when none)
	nextActivity *HandlingActivity

	calculatedAt time.Time

	guard guard.ConstructorGuard
}

// DeriveDeliveryFrom computes a fresh delivery snapshot from the handling
// history of a cargo, its itinerary and its route specification. Only the
// most recently completed distinct event of the history participates in the
// derivation.
func DeriveDeliveryFrom(
	routeSpecification RouteSpecification,
	itinerary Itinerary,
	history handling.History,
) (Delivery, error) {
	if err := history.Validate(); err != nil {
		return Delivery{}, err
	}

	var lastEvent *handling.Event
	if event, ok := history.MostRecentlyCompletedEvent(); ok {
		lastEvent = &event
	}

	return newDelivery(lastEvent, itinerary, routeSpecification, time.Now())
}

// UpdateOnRouting recomputes the snapshot after a routing change, reusing
// the previous last event unchanged.
func (d Delivery) UpdateOnRouting(
	routeSpecification RouteSpecification,
	itinerary Itinerary,
) (Delivery, error) {
	if err := d.Validate(); err != nil {
		return Delivery{}, err
	}

	return newDelivery(d.lastEvent, itinerary, routeSpecification, time.Now())
}

// RestoreDelivery reconstructs a delivery snapshot from persistent storage.
// The derivation is replayed from the persisted last event and the cargo's
// routing, preserving the original calculation time.
func RestoreDelivery(
	lastEvent *handling.Event,
	itinerary Itinerary,
	routeSpecification RouteSpecification,
	calculatedAt time.Time,
) (Delivery, error) {
	if calculatedAt.IsZero() {
		return Delivery{}, errs.NewValueIsRequiredError("calculated at")
	}

	return newDelivery(lastEvent, itinerary, routeSpecification, calculatedAt)
}

// newDelivery is the derivation itself. Every output is computed here, in
// dependency order, and the whole snapshot is replaced atomically; there is
// no partial update.
func newDelivery(
	lastEvent *handling.Event,
	itinerary Itinerary,
	routeSpecification RouteSpecification,
	calculatedAt time.Time,
) (Delivery, error) {
	if err := routeSpecification.Validate(); err != nil {
		return Delivery{}, err
	}
	if err := itinerary.Validate(); err != nil {
		return Delivery{}, err
	}
	if lastEvent != nil {
		if err := lastEvent.Validate(); err != nil {
			return Delivery{}, err
		}
	}

	delivery := Delivery{
		calculatedAt: calculatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if lastEvent != nil {
		eventCopy := *lastEvent
		delivery.lastEvent = &eventCopy
	}

	misdirected, err := calculateMisdirected(lastEvent, itinerary)
	if err != nil {
		return Delivery{}, err
	}
	delivery.misdirected = misdirected

	delivery.routingStatus = calculateRoutingStatus(itinerary, routeSpecification)
	delivery.transportStatus = calculateTransportStatus(lastEvent)

	onTrack := delivery.routingStatus == Routed && !misdirected

	if onTrack {
		if arrival, ok := itinerary.FinalArrivalTime(); ok {
			delivery.eta = arrival
		}
	}

	nextActivity, err := calculateNextExpectedActivity(onTrack, lastEvent, itinerary, routeSpecification)
	if err != nil {
		return Delivery{}, err
	}
	delivery.nextActivity = nextActivity

	unloaded, err := calculateUnloadedAtDestination(lastEvent, routeSpecification)
	if err != nil {
		return Delivery{}, err
	}
	delivery.unloadedAtDestination = unloaded

	return delivery, nil
}

// calculateMisdirected reports whether the last event contradicts the plan.
// Without an event the cargo cannot be misdirected.
func calculateMisdirected(lastEvent *handling.Event, itinerary Itinerary) (bool, error) {
	if lastEvent == nil {
		return false, nil
	}

	expected, err := itinerary.IsExpected(*lastEvent)
	if err != nil {
		return false, err
	}

	return !expected, nil
}

// calculateRoutingStatus classifies the current plan against the
// requirement.
func calculateRoutingStatus(itinerary Itinerary, routeSpecification RouteSpecification) RoutingStatus {
	if itinerary.IsEmpty() {
		return NotRouted
	}
	if routeSpecification.IsSatisfiedBy(itinerary) {
		return Routed
	}
	return Misrouted
}

// calculateTransportStatus maps the last event's type onto the physical
// whereabouts of the cargo.
func calculateTransportStatus(lastEvent *handling.Event) TransportStatus {
	if lastEvent == nil {
		return NotReceived
	}

	switch lastEvent.Type() {
	case handling.Load:
		return OnboardCarrier
	case handling.Unload, handling.Receive, handling.Customs:
		return InPort
	case handling.Claim:
		return Claimed
	case handling.UnknownType:
		return TransportStatusUnknown
	default:
		return TransportStatusUnknown
	}
}

// calculateNextExpectedActivity determines what should happen to the cargo
// next. It is only defined while the cargo is on track; otherwise there is
// no meaningful expectation.
func calculateNextExpectedActivity(
	onTrack bool,
	lastEvent *handling.Event,
	itinerary Itinerary,
	routeSpecification RouteSpecification,
) (*HandlingActivity, error) {
	if !onTrack {
		return nil, nil //nolint:nilnil //off-track cargo has no expected activity
	}

	if lastEvent == nil {
		activity, err := NewHandlingActivity(handling.Receive, routeSpecification.Origin(), nil)
		if err != nil {
			return nil, err
		}
		return &activity, nil
	}

	legs := itinerary.Legs()

	switch lastEvent.Type() {
	case handling.Load:
		// Expect an unload at the end of the leg we were loaded onto.
		for _, leg := range legs {
			same, err := leg.LoadLocation().SameIdentityAs(lastEvent.Location())
			if err != nil {
				return nil, err
			}
			if same {
				legVoyage := leg.Voyage()
				activity, err := NewHandlingActivity(handling.Unload, leg.UnloadLocation(), &legVoyage)
				if err != nil {
					return nil, err
				}
				return &activity, nil
			}
		}
		return nil, nil //nolint:nilnil //no leg matched, nothing to expect

	case handling.Unload:
		// Expect a load onto the next leg, or a claim after the last one.
		for i, leg := range legs {
			same, err := leg.UnloadLocation().SameIdentityAs(lastEvent.Location())
			if err != nil {
				return nil, err
			}
			if !same {
				continue
			}

			if i+1 < len(legs) {
				nextLeg := legs[i+1]
				nextVoyage := nextLeg.Voyage()
				activity, err := NewHandlingActivity(handling.Load, nextLeg.LoadLocation(), &nextVoyage)
				if err != nil {
					return nil, err
				}
				return &activity, nil
			}

			activity, err := NewHandlingActivity(handling.Claim, leg.UnloadLocation(), nil)
			if err != nil {
				return nil, err
			}
			return &activity, nil
		}
		return nil, nil //nolint:nilnil //no leg matched, nothing to expect

	case handling.Receive:
		// Itinerary is non-empty here: an on-track cargo is routed.
		firstLeg := legs[0]
		firstVoyage := firstLeg.Voyage()
		activity, err := NewHandlingActivity(handling.Load, firstLeg.LoadLocation(), &firstVoyage)
		if err != nil {
			return nil, err
		}
		return &activity, nil

	case handling.Claim, handling.Customs, handling.UnknownType:
		return nil, nil //nolint:nilnil //terminal or neutral event, nothing to expect

	default:
		return nil, nil //nolint:nilnil //terminal or neutral event, nothing to expect
	}
}

// calculateUnloadedAtDestination reports whether the last event was an
// unload at the specified destination.
func calculateUnloadedAtDestination(
	lastEvent *handling.Event,
	routeSpecification RouteSpecification,
) (bool, error) {
	if lastEvent == nil || lastEvent.Type() != handling.Unload {
		return false, nil
	}

	return routeSpecification.Destination().SameIdentityAs(lastEvent.Location())
}

// Validate checks if the Delivery was properly constructed using one of the
// derivation functions. The zero value fails this validation.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// TransportStatus returns where the cargo physically is.
func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// RoutingStatus returns how the current plan relates to the requirement.
func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

// IsMisdirected reports whether the last handling event contradicts the
// itinerary.
func (d Delivery) IsMisdirected() bool {
	return d.misdirected
}

// IsUnloadedAtDestination reports whether the cargo was last unloaded at
// the destination of its route specification.
func (d Delivery) IsUnloadedAtDestination() bool {
	return d.unloadedAtDestination
}

// IsOnTrack reports whether the cargo is routed and not misdirected.
func (d Delivery) IsOnTrack() bool {
	return d.routingStatus == Routed && !d.misdirected
}

// LastEvent returns the handling event this snapshot was derived from. The
// second return value is false before the first event is registered.
func (d Delivery) LastEvent() (handling.Event, bool) {
	if d.lastEvent == nil {
		return handling.Event{}, false
	}
	return *d.lastEvent, true
}

// LastKnownLocation returns where the cargo was last seen, or the unknown
// location before the first event.
func (d Delivery) LastKnownLocation() location.Location {
	if d.lastEvent == nil {
		return location.Unknown()
	}
	return d.lastEvent.Location()
}

// CurrentVoyage returns the voyage the cargo is riding on, or the NONE
// sentinel whenever it is not onboard a carrier.
func (d Delivery) CurrentVoyage() voyage.Voyage {
	if d.transportStatus != OnboardCarrier || d.lastEvent == nil {
		return voyage.None()
	}
	return d.lastEvent.Voyage()
}

// EstimatedTimeOfArrival returns the expected arrival time. The second
// return value is false when the cargo is off track and no estimate exists.
func (d Delivery) EstimatedTimeOfArrival() (time.Time, bool) {
	if d.eta.IsZero() {
		return time.Time{}, false
	}
	return d.eta, true
}

// NextExpectedActivity returns the handling step expected next. The second
// return value is false when no activity is expected.
func (d Delivery) NextExpectedActivity() (HandlingActivity, bool) {
	if d.nextActivity == nil {
		return HandlingActivity{}, false
	}
	return *d.nextActivity, true
}

// CalculatedAt returns when this snapshot was derived.
func (d Delivery) CalculatedAt() time.Time {
	return d.calculatedAt
}

// SameValueAs compares two snapshots over every derived output, excluding
// the calculation time.
func (d Delivery) SameValueAs(other Delivery) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	if d.misdirected != other.misdirected ||
		d.routingStatus != other.routingStatus ||
		d.transportStatus != other.transportStatus ||
		d.unloadedAtDestination != other.unloadedAtDestination ||
		!d.eta.Equal(other.eta) {
		return false, nil
	}

	if (d.lastEvent == nil) != (other.lastEvent == nil) {
		return false, nil
	}
	if d.lastEvent != nil {
		same, err := d.lastEvent.SameEventAs(*other.lastEvent)
		if err != nil {
			return false, err
		}
		if !same {
			return false, nil
		}
	}

	if (d.nextActivity == nil) != (other.nextActivity == nil) {
		return false, nil
	}
	if d.nextActivity != nil {
		return d.nextActivity.SameValueAs(*other.nextActivity)
	}

	return true, nil
}
