// Package handling provides the handling side of cargo tracking: the
// HandlingEvent entity recording that a cargo was received, loaded, unloaded,
// claimed or cleared through customs, the closed EventType enumeration with
// its voyage legality rules, and the History view that deduplicates and
// orders the events of one cargo by completion time.
//
// Events are immutable facts. Registering an event never mutates the cargo
// directly: events are stored on their own, and the cargo's delivery snapshot
// is recomputed from the handling history in a separate step.
//
// The EventFactory validates referential integrity of a reported event
// (cargo, voyage, location must exist) before the event itself enforces the
// type/voyage legality rule at construction.
package handling
