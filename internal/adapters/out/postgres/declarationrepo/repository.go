package declarationrepo

import (
	"context"
	"errors"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxNumberAttempts = 3

// GormDeclarationRepository implements ports.DeclarationRepository using GORM.
type GormDeclarationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeclarationRepository creates a new GORM declaration repository.
func NewGormDeclarationRepository(db *gorm.DB, tracker aggregateTracker) *GormDeclarationRepository {
	return &GormDeclarationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new declaration. A duplicate business number regenerates the
// number and retries.
func (r *GormDeclarationRepository) Add(ctx context.Context, aggregate *declaration.Declaration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		dto := fromDomain(aggregate)
		err := r.db.WithContext(ctx).Create(&dto).Error
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt == maxNumberAttempts {
			return err
		}
		if err := aggregate.RegenerateNumber(); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing declaration and appends any new history rows.
func (r *GormDeclarationRepository) Update(ctx context.Context, aggregate *declaration.Declaration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeclarationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.StatusUpdates) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.StatusUpdates).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a declaration with its history by ID.
func (r *GormDeclarationRepository) Get(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a declaration with a row-level lock on the parent row.
func (r *GormDeclarationRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*declaration.Declaration, error) {
	return r.get(ctx, id, true)
}

func (r *GormDeclarationRepository) get(
	ctx context.Context,
	id kernel.UUID,
	forUpdate bool,
) (*declaration.Declaration, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DeclarationDTO
	err := db.
		Preload("StatusUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("declaration", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a declaration and its history.
func (r *GormDeclarationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("declaration_id = ?", id.Bytes()).
		Delete(&StatusUpdateDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&DeclarationDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("declaration", id.String())
	}

	return nil
}
