package queries

import (
	"context"
	"errors"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetArticleQueryIsNotConstructed = errors.New(
	"GetArticleQuery must be created via NewGetArticleQuery constructor",
)

// GetArticleQuery retrieves a single article. Unpublished articles are
// visible to staff only; everyone else gets not found.
type GetArticleQuery struct {
	actor     kernel.Actor
	articleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetArticleQuery creates a query to retrieve one article.
func NewGetArticleQuery(actor kernel.Actor, articleID kernel.UUID) (GetArticleQuery, error) {
	if err := errors.Join(actor.Validate(), articleID.Validate()); err != nil {
		return GetArticleQuery{}, err
	}
	return GetArticleQuery{actor: actor, articleID: articleID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArticleQuery) Validate() error {
	return q.guard.Validate(ErrGetArticleQueryIsNotConstructed)
}

func (q GetArticleQuery) Actor() kernel.Actor    { return q.actor }
func (q GetArticleQuery) ArticleID() kernel.UUID { return q.articleID }

// GetArticleQueryResponse is the article detail read model.
type GetArticleQueryResponse struct {
	ID        kernel.UUID
	Kind      string
	Title     string
	Body      string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetArticleQueryHandler retrieves article details with direct SQL.
type GetArticleQueryHandler struct {
	db *gorm.DB
}

// NewGetArticleQueryHandler creates a handler for article detail queries.
func NewGetArticleQueryHandler(db *gorm.DB) GetArticleQueryHandler {
	return GetArticleQueryHandler{db: db}
}

// Handle executes the query.
func (h GetArticleQueryHandler) Handle(
	ctx context.Context,
	query GetArticleQuery,
) (GetArticleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetArticleQueryResponse{}, err
	}

	type row struct {
		ID        uuid.UUID
		Kind      string
		Title     string
		Body      string
		Published bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	var rows []row
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			title,
			body,
			published,
			created_at,
			updated_at
		FROM articles
		WHERE id = ?
	`, query.ArticleID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetArticleQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetArticleQueryResponse{}, errs.NewObjectNotFoundError("article", query.ArticleID())
	}

	r := rows[0]
	if !r.Published && !query.Actor().IsStaff() {
		return GetArticleQueryResponse{}, errs.NewObjectNotFoundError("article", query.ArticleID())
	}

	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetArticleQueryResponse{}, err
	}

	return GetArticleQueryResponse{
		ID:        id,
		Kind:      r.Kind,
		Title:     r.Title,
		Body:      r.Body,
		Published: r.Published,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
