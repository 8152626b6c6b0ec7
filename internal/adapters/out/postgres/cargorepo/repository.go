package cargorepo

import (
	"context"
	"errors"
	"strings"

	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCargoRepository implements CargoRepository using GORM.
type GormCargoRepository struct {
	db      *gorm.DB
	voyages *voyagerepo.GormVoyageRepository
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(trackingID kernel.TrackingID, aggregate any)
}

// NewGormCargoRepository creates a new GORM cargo repository. Voyages
// referenced by legs and events are rehydrated through the voyages table on
// the same connection.
func NewGormCargoRepository(db *gorm.DB, tracker aggregateTracker) *GormCargoRepository {
	return &GormCargoRepository{
		db:      db,
		voyages: voyagerepo.NewGormVoyageRepository(db),
		tracker: tracker,
	}
}

// Add saves a newly booked cargo to the database.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Update saves an existing cargo to the database. Legs are replaced as a
// whole: route assignment swaps the entire itinerary.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") writes zero values too: a cargo can go back from
	// misdirected to on track.
	result := r.db.WithContext(ctx).
		Model(&CargoDTO{}).
		Where("tracking_id = ?", dto.TrackingID).
		Select("*").
		Omit("Legs").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Delete(&LegDTO{}, "tracking_id = ?", dto.TrackingID).Error; err != nil {
		return err
	}
	if len(dto.Legs) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Legs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Get retrieves a cargo by its tracking id.
func (r *GormCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_index")
		}).
		First(&dto, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto, r.voyageResolver(ctx))
}

// Exists reports whether a cargo with the given tracking id is booked.
func (r *GormCargoRepository) Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	if err := trackingID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CargoDTO{}).
		Where("tracking_id = ?", trackingID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllUnderway retrieves all cargos that have not reached the CLAIMED
// transport status.
func (r *GormCargoRepository) GetAllUnderway(ctx context.Context) ([]*cargo.Cargo, error) {
	var dtos []CargoDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_index")
		}).
		Order("tracking_id").
		Find(&dtos, "transport_status <> ?", int(cargo.Claimed)).Error
	if err != nil {
		return nil, err
	}

	resolve := r.voyageResolver(ctx)
	cargos := make([]*cargo.Cargo, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, dtoErr := toDomain(dto, resolve)
		if dtoErr != nil {
			return nil, dtoErr
		}
		cargos = append(cargos, aggregate)
	}

	return cargos, nil
}

// NextTrackingID reserves a new unique tracking id.
func (r *GormCargoRepository) NextTrackingID(_ context.Context) (kernel.TrackingID, error) {
	// The first UUID group is unique enough for a human-friendly id.
	raw := strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
	return kernel.NewTrackingID(raw)
}

// voyageResolver returns a resolver that caches voyages per call, since the
// same voyage usually serves several legs.
func (r *GormCargoRepository) voyageResolver(ctx context.Context) voyageResolver {
	resolved := make(map[string]voyage.Voyage)
	return func(voyageNumber string) (voyage.Voyage, error) {
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
}
