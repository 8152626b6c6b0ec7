package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackCargoQueryHandler assembles the tracking view of a cargo from the
// database. Reads the denormalized delivery columns written by the command
// side together with the cargo's handling log.
//
// Example:
//
//	handler := NewTrackCargoQueryHandler(db)
//	query, _ := NewTrackCargoQuery("ABC123")
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to track cargo: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Cargo %s is %s\n", view.TrackingID, view.TransportStatus)
type TrackCargoQueryHandler struct {
	db *gorm.DB
}

// NewTrackCargoQueryHandler creates a handler for cargo tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackCargoQueryHandler(db *gorm.DB) TrackCargoQueryHandler {
	return TrackCargoQueryHandler{db: db}
}

// Handle executes the tracking query. Returns errs.ObjectNotFoundError when
// no cargo with the requested tracking id is booked.
func (h TrackCargoQueryHandler) Handle(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response, err := h.readCargoRow(ctx, query.TrackingID())
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	events, err := h.readHandlingLog(ctx, query.TrackingID())
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}
	response.HandlingEvents = events

	return response, nil
}

func (h TrackCargoQueryHandler) readCargoRow(
	ctx context.Context,
	trackingID string,
) (TrackCargoQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			transport_status,
			routing_status,
			is_misdirected,
			is_unloaded_at_destination,
			last_known_locode,
			current_voyage_number,
			eta,
			next_expected_event_type,
			next_expected_locode,
			next_expected_voyage_number
		FROM cargos
		WHERE tracking_id = ?
	`, trackingID).Row()

	var response TrackCargoQueryResponse
	var transportStatus, routingStatus int
	var lastKnownLocode, currentVoyageNumber sql.NullString
	var eta sql.NullTime
	var nextEventType sql.NullInt16
	var nextLocode, nextVoyageNumber sql.NullString

	err := row.Scan(
		&response.TrackingID,
		&transportStatus,
		&routingStatus,
		&response.IsMisdirected,
		&response.UnloadedAtDestination,
		&lastKnownLocode,
		&currentVoyageNumber,
		&eta,
		&nextEventType,
		&nextLocode,
		&nextVoyageNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackCargoQueryResponse{}, errs.NewObjectNotFoundError("tracking_id", trackingID)
	}
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response.TransportStatus = cargo.TransportStatus(transportStatus).String()
	response.RoutingStatus = cargo.RoutingStatus(routingStatus).String()
	response.LastKnownLocation = lastKnownLocode.String
	response.CurrentVoyage = currentVoyageNumber.String
	if eta.Valid {
		etaValue := eta.Time
		response.Eta = &etaValue
	}
	response.NextExpectedActivity = formatNextActivity(nextEventType, nextLocode, nextVoyageNumber)

	return response, nil
}

func (h TrackCargoQueryHandler) readHandlingLog(
	ctx context.Context,
	trackingID string,
) ([]TrackCargoHandlingEvent, error) {
	events := make([]TrackCargoHandlingEvent, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			locode,
			voyage_number,
			completion_time
		FROM handling_events
		WHERE tracking_id = ?
		ORDER BY completion_time, id
	`, trackingID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackCargoHandlingEvent
		var eventType int
		var voyageNumber sql.NullString
		var completionTime time.Time

		err = rows.Scan(
			&eventType,
			&event.Location,
			&voyageNumber,
			&completionTime,
		)
		if err != nil {
			return nil, err
		}

		event.EventType = handling.EventType(eventType).String()
		event.VoyageNumber = voyageNumber.String
		event.CompletionTime = completionTime
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// formatNextActivity renders the next expected handling step as a short
// sentence, or an empty string when no next step is expected.
func formatNextActivity(
	eventType sql.NullInt16,
	locode sql.NullString,
	voyageNumber sql.NullString,
) string {
	if !eventType.Valid || !locode.Valid {
		return ""
	}

	activity := handling.EventType(eventType.Int16)
	if voyageNumber.Valid && voyageNumber.String != "" {
		return fmt.Sprintf("%s cargo in %s on voyage %s",
			activity.String(), locode.String, voyageNumber.String)
	}
	return fmt.Sprintf("%s cargo in %s", activity.String(), locode.String)
}
