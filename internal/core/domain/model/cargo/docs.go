// Package cargo provides the Cargo aggregate root and its derivation core:
// the route specification the customer booked, the itinerary the cargo was
// routed onto, and the delivery snapshot derived from the handling history.
//
// The central piece is the Delivery derivation: a pure function that
// reconciles three independent facts into one consistent snapshot:
//
//   - the route specification (where the cargo must go, by when)
//   - the itinerary (how it is planned to get there)
//   - the last known handling event (what actually happened to it)
//
// The aggregate enforces one consistency rule. Routing changes (a new route
// specification or a new itinerary) recompute the delivery synchronously
// inside the mutating operation. Handling progress is recomputed only when
// the handling history is explicitly handed in through
// DeriveDeliveryProgress, after new events were persisted. The aggregate
// never reaches into the event store itself.
package cargo
