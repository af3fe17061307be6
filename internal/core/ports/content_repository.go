package ports

import (
	"context"

	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/kernel"
)

// ContentRepository defines the persistence contract for marketing articles.
type ContentRepository interface {
	// Add persists a new article.
	Add(ctx context.Context, aggregate *content.Article) error

	// Update persists changes to an existing article.
	Update(ctx context.Context, aggregate *content.Article) error

	// Get retrieves an article by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*content.Article, error)

	// Delete removes an article.
	Delete(ctx context.Context, id kernel.UUID) error
}
