package contentrepo

import (
	"context"
	"errors"

	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContentRepository implements ports.ContentRepository using GORM.
type GormContentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContentRepository creates a new GORM article repository.
func NewGormContentRepository(db *gorm.DB, tracker aggregateTracker) *GormContentRepository {
	return &GormContentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new article.
func (r *GormContentRepository) Add(ctx context.Context, aggregate *content.Article) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing article.
func (r *GormContentRepository) Update(ctx context.Context, aggregate *content.Article) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ArticleDTO{}).
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

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an article by ID.
func (r *GormContentRepository) Get(ctx context.Context, id kernel.UUID) (*content.Article, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("article", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an article.
func (r *GormContentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&ArticleDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("article", id.String())
	}

	return nil
}
