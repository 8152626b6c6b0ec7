package queries

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"

	"gorm.io/gorm"
)

// GetUnroutedCargosQueryHandler retrieves booked cargos without an
// itinerary from the database. Uses direct SQL for optimal read performance
// in the CQRS pattern.
type GetUnroutedCargosQueryHandler struct {
	db *gorm.DB
}

// NewGetUnroutedCargosQueryHandler creates a handler for unrouted cargo
// queries. Requires a GORM database connection for query execution.
func NewGetUnroutedCargosQueryHandler(db *gorm.DB) GetUnroutedCargosQueryHandler {
	return GetUnroutedCargosQueryHandler{db: db}
}

// Handle executes the query to retrieve all unrouted cargos.
// Results are sorted by arrival deadline: the most urgent bookings first.
func (h GetUnroutedCargosQueryHandler) Handle(
	ctx context.Context,
	query GetUnroutedCargosQuery,
) ([]GetUnroutedCargosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cargos := make([]GetUnroutedCargosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			spec_origin_locode,
			spec_destination_locode,
			spec_arrival_deadline
		FROM cargos
		WHERE routing_status = ?
		ORDER BY spec_arrival_deadline, tracking_id
	`, int(cargo.NotRouted)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var unrouted GetUnroutedCargosQueryResponse

		err = rows.Scan(
			&unrouted.TrackingID,
			&unrouted.Origin,
			&unrouted.Destination,
			&unrouted.ArrivalDeadline,
		)
		if err != nil {
			return nil, err
		}

		cargos = append(cargos, unrouted)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargos, nil
}
