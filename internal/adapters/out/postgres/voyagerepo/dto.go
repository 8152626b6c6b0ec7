// Package voyagerepo provides data transfer objects and mapping functions
// for voyage persistence. A voyage row owns its carrier movement rows; the
// schedule is always loaded and stored as a whole.
//
// Location names are denormalized into the movement rows so a voyage can be
// rehydrated without joining the locations table.
package voyagerepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageDTO represents the database structure for persisting voyages.
type VoyageDTO struct {
	VoyageNumber string               `gorm:"primaryKey;column:voyage_number;type:varchar(32)"`
	Movements    []CarrierMovementDTO `gorm:"foreignKey:VoyageNumber;references:VoyageNumber;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for voyage entities.
func (VoyageDTO) TableName() string {
	return "voyages"
}

// CarrierMovementDTO represents one movement of a voyage's schedule.
// MovementIndex preserves the schedule order.
type CarrierMovementDTO struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	VoyageNumber    string `gorm:"column:voyage_number;type:varchar(32);index"`
	MovementIndex   int
	DepartureLocode string `gorm:"type:varchar(5)"`
	DepartureName   string
	ArrivalLocode   string `gorm:"type:varchar(5)"`
	ArrivalName     string
	DepartureTime   time.Time
	ArrivalTime     time.Time
}

// TableName specifies the database table name for carrier movements.
func (CarrierMovementDTO) TableName() string {
	return "carrier_movements"
}

// fromDomain converts a voyage to its database representation.
func fromDomain(v voyage.Voyage) VoyageDTO {
	movements := v.Schedule().CarrierMovements()
	movementDTOs := make([]CarrierMovementDTO, 0, len(movements))
	for i, movement := range movements {
		movementDTOs = append(movementDTOs, CarrierMovementDTO{
			VoyageNumber:    v.VoyageNumber().String(),
			MovementIndex:   i,
			DepartureLocode: movement.DepartureLocation().UnLocode().String(),
			DepartureName:   movement.DepartureLocation().Name(),
			ArrivalLocode:   movement.ArrivalLocation().UnLocode().String(),
			ArrivalName:     movement.ArrivalLocation().Name(),
			DepartureTime:   movement.DepartureTime(),
			ArrivalTime:     movement.ArrivalTime(),
		})
	}

	return VoyageDTO{
		VoyageNumber: v.VoyageNumber().String(),
		Movements:    movementDTOs,
	}
}

// toDomain converts a database DTO to a voyage. Movements must be loaded.
func toDomain(dto VoyageDTO) (voyage.Voyage, error) {
	voyageNumber, err := kernel.NewVoyageNumber(dto.VoyageNumber)
	if err != nil {
		return voyage.Voyage{}, err
	}

	movements := make([]voyage.CarrierMovement, 0, len(dto.Movements))
	for _, movementDTO := range dto.Movements {
		movement, movementErr := movementToDomain(movementDTO)
		if movementErr != nil {
			return voyage.Voyage{}, movementErr
		}
		movements = append(movements, movement)
	}

	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		return voyage.Voyage{}, err
	}

	return voyage.NewVoyage(voyageNumber, schedule)
}

func movementToDomain(dto CarrierMovementDTO) (voyage.CarrierMovement, error) {
	departure, err := locationFromColumns(dto.DepartureLocode, dto.DepartureName)
	if err != nil {
		return voyage.CarrierMovement{}, err
	}
	arrival, err := locationFromColumns(dto.ArrivalLocode, dto.ArrivalName)
	if err != nil {
		return voyage.CarrierMovement{}, err
	}

	return voyage.NewCarrierMovement(departure, arrival, dto.DepartureTime, dto.ArrivalTime)
}

func locationFromColumns(locode string, name string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(locode)
	if err != nil {
		return location.Location{}, err
	}

	return location.NewLocation(unLocode, name)
}
