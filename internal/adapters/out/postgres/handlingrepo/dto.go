// Package handlingrepo provides data transfer objects and mapping functions
// for handling event persistence. Handling events are the append-only log
// of what physically happened to each cargo; rows are never updated or
// deleted.
package handlingrepo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// HandlingEventDTO represents the database structure for persisting handling
// events. The location name is denormalized into the row; the voyage is
// referenced by number and rehydrated from the voyages table on read.
type HandlingEventDTO struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	TrackingID       string `gorm:"column:tracking_id;type:varchar(64);index"`
	EventType        int
	Locode           string `gorm:"type:varchar(5)"`
	LocationName     string
	VoyageNumber     *string `gorm:"type:varchar(32)"`
	CompletionTime   time.Time
	RegistrationTime time.Time
}

// TableName specifies the database table name for handling events.
func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

// fromDomain converts a handling event to its database representation.
func fromDomain(event handling.Event) HandlingEventDTO {
	var voyageNumber *string
	if event.HasVoyage() {
		number := event.Voyage().VoyageNumber().String()
		voyageNumber = &number
	}

	return HandlingEventDTO{
		TrackingID:       event.TrackingID().String(),
		EventType:        int(event.Type()),
		Locode:           event.Location().UnLocode().String(),
		LocationName:     event.Location().Name(),
		VoyageNumber:     voyageNumber,
		CompletionTime:   event.CompletionTime(),
		RegistrationTime: event.RegistrationTime(),
	}
}

// toDomain converts a database DTO to a handling event. The voyage, when
// referenced, must be resolved by the caller.
func toDomain(dto HandlingEventDTO, eventVoyage *voyage.Voyage) (handling.Event, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return handling.Event{}, err
	}

	unLocode, err := kernel.NewUnLocode(dto.Locode)
	if err != nil {
		return handling.Event{}, err
	}
	eventLocation, err := location.NewLocation(unLocode, dto.LocationName)
	if err != nil {
		return handling.Event{}, err
	}

	return handling.NewEvent(
		trackingID,
		handling.EventType(dto.EventType),
		eventLocation,
		eventVoyage,
		dto.CompletionTime,
		dto.RegistrationTime,
	)
}
