package handlingrepo

import (
	"context"

	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"gorm.io/gorm"
)

// GormHandlingEventRepository implements HandlingEventRepository using GORM.
type GormHandlingEventRepository struct {
	db      *gorm.DB
	voyages *voyagerepo.GormVoyageRepository
}

// NewGormHandlingEventRepository creates a new GORM handling event
// repository. Voyages referenced by events are rehydrated through the
// voyages table on the same connection.
func NewGormHandlingEventRepository(db *gorm.DB) *GormHandlingEventRepository {
	return &GormHandlingEventRepository{
		db:      db,
		voyages: voyagerepo.NewGormVoyageRepository(db),
	}
}

// Add appends a handling event to the log.
func (r *GormHandlingEventRepository) Add(ctx context.Context, event handling.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHistory assembles the handling history of one cargo from all events
// registered for its tracking id.
func (r *GormHandlingEventRepository) GetHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.History, error) {
	if err := trackingID.Validate(); err != nil {
		return handling.History{}, err
	}

	var dtos []HandlingEventDTO
	err := r.db.WithContext(ctx).
		Order("completion_time, id").
		Find(&dtos, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		return handling.History{}, err
	}

	// Voyages repeat across events of one cargo, resolve each number once.
	resolved := make(map[string]voyage.Voyage)
	events := make([]handling.Event, 0, len(dtos))
	for _, dto := range dtos {
		var eventVoyage *voyage.Voyage
		if dto.VoyageNumber != nil {
			v, voyageErr := r.resolveVoyage(ctx, *dto.VoyageNumber, resolved)
			if voyageErr != nil {
				return handling.History{}, voyageErr
			}
			eventVoyage = &v
		}

		event, eventErr := toDomain(dto, eventVoyage)
		if eventErr != nil {
			return handling.History{}, eventErr
		}
		events = append(events, event)
	}

	return handling.NewHistory(events)
}

func (r *GormHandlingEventRepository) resolveVoyage(
	ctx context.Context,
	voyageNumber string,
	resolved map[string]voyage.Voyage,
) (voyage.Voyage, error) {
	if v, ok := resolved[voyageNumber]; ok {
		return v, nil
	}

	number, err := kernel.NewVoyageNumber(voyageNumber)
	if err != nil {
		return voyage.Voyage{}, err
	}

	v, err := r.voyages.Get(ctx, number)
	if err != nil {
		return voyage.Voyage{}, err
	}

	resolved[voyageNumber] = v
	return v, nil
}
