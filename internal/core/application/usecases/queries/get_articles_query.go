package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetArticlesQueryIsNotConstructed = errors.New(
	"GetArticlesQuery must be created via NewGetArticlesQuery constructor",
)

// GetArticlesQuery retrieves the article list, optionally narrowed to one
// section. Non-staff callers only see published articles.
type GetArticlesQuery struct {
	actor kernel.Actor
	kind  *content.Kind

	guard guard.ConstructorGuard
}

// NewGetArticlesQuery creates a query to list articles.
func NewGetArticlesQuery(actor kernel.Actor, kind *content.Kind) (GetArticlesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetArticlesQuery{}, err
	}
	if kind != nil {
		if err := kind.Validate(); err != nil {
			return GetArticlesQuery{}, err
		}
	}
	return GetArticlesQuery{actor: actor, kind: kind, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArticlesQuery) Validate() error {
	return q.guard.Validate(ErrGetArticlesQueryIsNotConstructed)
}

func (q GetArticlesQuery) Actor() kernel.Actor { return q.actor }
func (q GetArticlesQuery) Kind() *content.Kind { return q.kind }

// GetArticlesQueryResponse is one row of the article list read model.
type GetArticlesQueryResponse struct {
	ID        kernel.UUID
	Kind      string
	Title     string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetArticlesQueryHandler retrieves article lists with direct SQL.
type GetArticlesQueryHandler struct {
	db *gorm.DB
}

// NewGetArticlesQueryHandler creates a handler for article list queries.
func NewGetArticlesQueryHandler(db *gorm.DB) GetArticlesQueryHandler {
	return GetArticlesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetArticlesQueryHandler) Handle(
	ctx context.Context,
	query GetArticlesQuery,
) ([]GetArticlesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			kind,
			title,
			published,
			created_at,
			updated_at
		FROM articles`

	var (
		conds []string
		args  []any
	)
	if !query.Actor().IsStaff() {
		conds = append(conds, "published")
	}
	if query.Kind() != nil {
		conds = append(conds, "kind = ?")
		args = append(args, query.Kind().String())
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	type row struct {
		ID        uuid.UUID
		Kind      string
		Title     string
		Published bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	var rows []row
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	articles := make([]GetArticlesQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		articles = append(articles, GetArticlesQueryResponse{
			ID:        id,
			Kind:      r.Kind,
			Title:     r.Title,
			Published: r.Published,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	return articles, nil
}
