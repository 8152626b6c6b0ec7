package voyagerepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoyageRepository implements VoyageRepository using GORM.
type GormVoyageRepository struct {
	db *gorm.DB
}

// NewGormVoyageRepository creates a new GORM voyage repository.
func NewGormVoyageRepository(db *gorm.DB) *GormVoyageRepository {
	return &GormVoyageRepository{db: db}
}

// Add saves a new voyage with its schedule to the database.
func (r *GormVoyageRepository) Add(ctx context.Context, v voyage.Voyage) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a voyage by its number, including the full schedule.
func (r *GormVoyageRepository) Get(ctx context.Context, voyageNumber kernel.VoyageNumber) (voyage.Voyage, error) {
	if err := voyageNumber.Validate(); err != nil {
		return voyage.Voyage{}, err
	}

	var dto VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_index")
		}).
		First(&dto, "voyage_number = ?", voyageNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return voyage.Voyage{}, errs.NewObjectNotFoundError("voyage", voyageNumber.String())
		}
		return voyage.Voyage{}, err
	}

	return toDomain(dto)
}
