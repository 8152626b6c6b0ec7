package queries

import (
	"errors"
	"time"

	"cargotracker/internal/pkg/guard"
)

var ErrGetUnroutedCargosQueryIsNotConstructed = errors.New(
	"GetUnroutedCargosQuery must be created via NewGetUnroutedCargosQuery constructor",
)

// GetUnroutedCargosQuery retrieves all booked cargos that have no itinerary
// assigned yet. This is the work list of the booking office: each entry
// needs a route requested and assigned.
type GetUnroutedCargosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnroutedCargosQuery creates a query to retrieve unrouted cargos.
// This is a parameterless query.
func NewGetUnroutedCargosQuery() GetUnroutedCargosQuery {
	return GetUnroutedCargosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnroutedCargosQueryIsNotConstructed if validation fails.
func (q GetUnroutedCargosQuery) Validate() error {
	return q.guard.Validate(ErrGetUnroutedCargosQueryIsNotConstructed)
}

// GetUnroutedCargosQueryResponse represents one booked but unrouted cargo.
type GetUnroutedCargosQueryResponse struct {
	TrackingID      string
	Origin          string
	Destination     string
	ArrivalDeadline time.Time
}
