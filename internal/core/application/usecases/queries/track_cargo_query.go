// Package queries contains read-only operations against the database.
// Implements the query side of the CQRS architecture: handlers bypass the
// domain model and read denormalized rows directly for optimal performance.
package queries

import (
	"errors"
	"strings"
	"time"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrTrackCargoQueryIsNotConstructed = errors.New(
	"TrackCargoQuery must be created via NewTrackCargoQuery constructor",
)

// TrackCargoQuery retrieves the public tracking view of one cargo: where it
// is, whether it is on track and what happened to it so far. This is the
// view behind the customer-facing tracking page.
//
// Example:
//
//	query, err := NewTrackCargoQuery("ABC123")
//	if err != nil {
//	    return fmt.Errorf("invalid tracking id: %w", err)
//	}
//
//	handler := NewTrackCargoQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type TrackCargoQuery struct { //nolint:recvcheck //using for validation
	trackingID string

	guard guard.ConstructorGuard
}

// NewTrackCargoQuery creates a query to track a cargo. The tracking id is
// matched case-insensitively.
func NewTrackCargoQuery(trackingID string) (TrackCargoQuery, error) {
	query := TrackCargoQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingID(trackingID); err != nil {
		return TrackCargoQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackCargoQueryIsNotConstructed if validation fails.
func (q TrackCargoQuery) Validate() error {
	return q.guard.Validate(ErrTrackCargoQueryIsNotConstructed)
}

// TrackingID returns the normalized tracking id to look up.
func (q TrackCargoQuery) TrackingID() string {
	return q.trackingID
}

func (q *TrackCargoQuery) setTrackingID(trackingID string) error {
	normalized := strings.ToUpper(strings.TrimSpace(trackingID))
	if normalized == "" {
		return errs.NewValueIsRequiredError("tracking id")
	}

	q.trackingID = normalized
	return nil
}

// TrackCargoQueryResponse is the tracking read model of one cargo.
// Optional fields are empty strings or nil times when the underlying fact
// is not known yet: a cargo that was never handled has no last known
// location, no current voyage and no handling events.
type TrackCargoQueryResponse struct {
	TrackingID            string
	TransportStatus       string
	RoutingStatus         string
	LastKnownLocation     string
	CurrentVoyage         string
	IsMisdirected         bool
	UnloadedAtDestination bool
	Eta                   *time.Time
	NextExpectedActivity  string
	HandlingEvents        []TrackCargoHandlingEvent
}

// TrackCargoHandlingEvent is one row of the cargo's handling log, ordered
// by completion time.
type TrackCargoHandlingEvent struct {
	EventType      string
	Location       string
	VoyageNumber   string
	CompletionTime time.Time
}
