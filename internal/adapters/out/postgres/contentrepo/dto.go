// Package contentrepo persists marketing articles.
package contentrepo

import (
	"time"

	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ArticleDTO is the database representation of an article.
type ArticleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"index"`
	Title     string
	Body      string
	Published bool      `gorm:"index"`
	AuthorID  uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "articles".
func (ArticleDTO) TableName() string {
	return "articles"
}

func fromDomain(aggregate *content.Article) ArticleDTO {
	return ArticleDTO{
		ID:        aggregate.ID().Bytes(),
		Kind:      aggregate.Kind().String(),
		Title:     aggregate.Title(),
		Body:      aggregate.Body(),
		Published: aggregate.IsPublished(),
		AuthorID:  aggregate.AuthorID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto ArticleDTO) (*content.Article, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	return content.RestoreArticle(
		id,
		content.Kind(dto.Kind),
		dto.Title,
		dto.Body,
		dto.Published,
		authorID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
