// Package cargorepo provides data transfer objects and mapping functions
// for cargo aggregate persistence. A cargo row owns its leg rows; the
// delivery snapshot is stored as denormalized columns on the cargo row so
// the query side can read it without touching the domain model.
//
// On rehydration the delivery is recomputed from the persisted last event,
// itinerary and route specification. The derivation is pure, so the
// recomputed snapshot equals the stored one as long as the calculation time
// is preserved.
package cargorepo

import (
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// CargoDTO represents the database structure for persisting cargo
// aggregates. Location names are denormalized into the row; voyages are
// referenced by number and rehydrated from the voyages table.
type CargoDTO struct {
	TrackingID string `gorm:"primaryKey;column:tracking_id;type:varchar(64)"`

	OriginLocode string `gorm:"type:varchar(5)"`
	OriginName   string

	SpecOriginLocode      string `gorm:"type:varchar(5)"`
	SpecOriginName        string
	SpecDestinationLocode string `gorm:"type:varchar(5)"`
	SpecDestinationName   string
	SpecArrivalDeadline   time.Time

	RoutingStatus           int `gorm:"index"`
	TransportStatus         int `gorm:"index"`
	IsMisdirected           bool
	IsUnloadedAtDestination bool

	LastKnownLocode     *string `gorm:"type:varchar(5)"`
	CurrentVoyageNumber *string `gorm:"type:varchar(32)"`
	Eta                 *time.Time

	NextExpectedEventType    *int16
	NextExpectedLocode       *string `gorm:"type:varchar(5)"`
	NextExpectedVoyageNumber *string `gorm:"type:varchar(32)"`

	LastEventType             *int16
	LastEventLocode           *string `gorm:"type:varchar(5)"`
	LastEventLocationName     *string
	LastEventVoyageNumber     *string `gorm:"type:varchar(32)"`
	LastEventCompletionTime   *time.Time
	LastEventRegistrationTime *time.Time

	DeliveryCalculatedAt time.Time

	Legs []LegDTO `gorm:"foreignKey:TrackingID;references:TrackingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cargo entities.
func (CargoDTO) TableName() string {
	return "cargos"
}

// LegDTO represents one leg of a cargo's itinerary. LegIndex preserves the
// itinerary order.
type LegDTO struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	TrackingID   string `gorm:"column:tracking_id;type:varchar(64);index"`
	LegIndex     int
	VoyageNumber string `gorm:"type:varchar(32)"`
	LoadLocode   string `gorm:"type:varchar(5)"`
	LoadName     string
	UnloadLocode string `gorm:"type:varchar(5)"`
	UnloadName   string
	LoadTime     time.Time
	UnloadTime   time.Time
}

// TableName specifies the database table name for itinerary legs.
func (LegDTO) TableName() string {
	return "legs"
}

// fromDomain converts a cargo aggregate to its database representation.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	routeSpecification := aggregate.RouteSpecification()
	delivery := aggregate.Delivery()

	dto := CargoDTO{
		TrackingID: aggregate.TrackingID().String(),

		OriginLocode: aggregate.Origin().UnLocode().String(),
		OriginName:   aggregate.Origin().Name(),

		SpecOriginLocode:      routeSpecification.Origin().UnLocode().String(),
		SpecOriginName:        routeSpecification.Origin().Name(),
		SpecDestinationLocode: routeSpecification.Destination().UnLocode().String(),
		SpecDestinationName:   routeSpecification.Destination().Name(),
		SpecArrivalDeadline:   routeSpecification.ArrivalDeadline(),

		RoutingStatus:           int(delivery.RoutingStatus()),
		TransportStatus:         int(delivery.TransportStatus()),
		IsMisdirected:           delivery.IsMisdirected(),
		IsUnloadedAtDestination: delivery.IsUnloadedAtDestination(),

		DeliveryCalculatedAt: delivery.CalculatedAt(),

		Legs: legsFromDomain(aggregate),
	}

	if lastKnown := delivery.LastKnownLocation(); !lastKnown.IsUnknown() {
		locode := lastKnown.UnLocode().String()
		dto.LastKnownLocode = &locode
	}
	if currentVoyage := delivery.CurrentVoyage(); !currentVoyage.IsNone() {
		number := currentVoyage.VoyageNumber().String()
		dto.CurrentVoyageNumber = &number
	}
	if eta, ok := delivery.EstimatedTimeOfArrival(); ok {
		dto.Eta = &eta
	}
	if activity, ok := delivery.NextExpectedActivity(); ok {
		eventType := int16(activity.Type())
		locode := activity.Location().UnLocode().String()
		dto.NextExpectedEventType = &eventType
		dto.NextExpectedLocode = &locode
		if activity.HasVoyage() {
			number := activity.Voyage().VoyageNumber().String()
			dto.NextExpectedVoyageNumber = &number
		}
	}
	if lastEvent, ok := delivery.LastEvent(); ok {
		eventType := int16(lastEvent.Type())
		locode := lastEvent.Location().UnLocode().String()
		name := lastEvent.Location().Name()
		completionTime := lastEvent.CompletionTime()
		registrationTime := lastEvent.RegistrationTime()
		dto.LastEventType = &eventType
		dto.LastEventLocode = &locode
		dto.LastEventLocationName = &name
		dto.LastEventCompletionTime = &completionTime
		dto.LastEventRegistrationTime = &registrationTime
		if lastEvent.HasVoyage() {
			number := lastEvent.Voyage().VoyageNumber().String()
			dto.LastEventVoyageNumber = &number
		}
	}

	return dto
}

func legsFromDomain(aggregate *cargo.Cargo) []LegDTO {
	legs := aggregate.Itinerary().Legs()
	legDTOs := make([]LegDTO, 0, len(legs))
	for i, leg := range legs {
		legDTOs = append(legDTOs, LegDTO{
			TrackingID:   aggregate.TrackingID().String(),
			LegIndex:     i,
			VoyageNumber: leg.Voyage().VoyageNumber().String(),
			LoadLocode:   leg.LoadLocation().UnLocode().String(),
			LoadName:     leg.LoadLocation().Name(),
			UnloadLocode: leg.UnloadLocation().UnLocode().String(),
			UnloadName:   leg.UnloadLocation().Name(),
			LoadTime:     leg.LoadTime(),
			UnloadTime:   leg.UnloadTime(),
		})
	}

	return legDTOs
}

// voyageResolver resolves a voyage by its number string. Supplied by the
// repository so DTO mapping stays free of database access details.
type voyageResolver func(voyageNumber string) (voyage.Voyage, error)

// toDomain converts a database DTO to a cargo aggregate. Legs must be
// loaded; referenced voyages are resolved through the given resolver.
func toDomain(dto CargoDTO, resolve voyageResolver) (*cargo.Cargo, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	origin, err := locationFromColumns(dto.OriginLocode, dto.OriginName)
	if err != nil {
		return nil, err
	}

	routeSpecification, err := specFromColumns(dto)
	if err != nil {
		return nil, err
	}

	itinerary, err := itineraryFromColumns(dto.Legs, resolve)
	if err != nil {
		return nil, err
	}

	lastEvent, err := lastEventFromColumns(dto, trackingID, resolve)
	if err != nil {
		return nil, err
	}

	delivery, err := cargo.RestoreDelivery(
		lastEvent, itinerary, routeSpecification, dto.DeliveryCalculatedAt)
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(trackingID, origin, routeSpecification, itinerary, delivery)
}

func specFromColumns(dto CargoDTO) (cargo.RouteSpecification, error) {
	specOrigin, err := locationFromColumns(dto.SpecOriginLocode, dto.SpecOriginName)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}
	specDestination, err := locationFromColumns(dto.SpecDestinationLocode, dto.SpecDestinationName)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}

	return cargo.NewRouteSpecification(specOrigin, specDestination, dto.SpecArrivalDeadline)
}

func itineraryFromColumns(legDTOs []LegDTO, resolve voyageResolver) (cargo.Itinerary, error) {
	if len(legDTOs) == 0 {
		return cargo.EmptyItinerary(), nil
	}

	legs := make([]cargo.Leg, 0, len(legDTOs))
	for _, legDTO := range legDTOs {
		legVoyage, err := resolve(legDTO.VoyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		loadLocation, err := locationFromColumns(legDTO.LoadLocode, legDTO.LoadName)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		unloadLocation, err := locationFromColumns(legDTO.UnloadLocode, legDTO.UnloadName)
		if err != nil {
			return cargo.Itinerary{}, err
		}

		leg, err := cargo.NewLeg(
			legVoyage, loadLocation, unloadLocation, legDTO.LoadTime, legDTO.UnloadTime)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func lastEventFromColumns(
	dto CargoDTO,
	trackingID kernel.TrackingID,
	resolve voyageResolver,
) (*handling.Event, error) {
	if dto.LastEventType == nil {
		return nil, nil //nolint:nilnil //absence of a last event is a valid state
	}

	eventLocation, err := locationFromColumns(*dto.LastEventLocode, *dto.LastEventLocationName)
	if err != nil {
		return nil, err
	}

	var eventVoyage *voyage.Voyage
	if dto.LastEventVoyageNumber != nil {
		v, voyageErr := resolve(*dto.LastEventVoyageNumber)
		if voyageErr != nil {
			return nil, voyageErr
		}
		eventVoyage = &v
	}

	event, err := handling.NewEvent(
		trackingID,
		handling.EventType(*dto.LastEventType),
		eventLocation,
		eventVoyage,
		*dto.LastEventCompletionTime,
		*dto.LastEventRegistrationTime,
	)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func locationFromColumns(locode string, name string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(locode)
	if err != nil {
		return location.Location{}, err
	}

	return location.NewLocation(unLocode, name)
}
