// Package kernel provides core domain primitives for the cargo tracking
// system. It implements the fundamental identifier value objects that are
// shared across the domain model.
//
// The package includes:
//   - TrackingID: the unique cargo identifier assigned at booking time
//   - UnLocode: a United Nations location code identifying a Location
//   - VoyageNumber: the identifier of a scheduled carrier Voyage
//   - Specification: composable predicate combinators (And/Or/Not)
//
// All identifiers are immutable value objects with value-based equality.
// They are normalized to upper case at construction, so two identifiers
// that differ only in letter case compare as equal. Construction goes
// through validating factory functions guarded by ConstructorGuard; the
// zero value of each identifier is invalid.
package kernel
