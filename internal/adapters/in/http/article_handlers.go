package http

import (
	"net/http"
	"time"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createArticleRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=news service faq"`
	Title   string `json:"title" validate:"required,max=300"`
	Body    string `json:"body" validate:"required"`
	Publish bool   `json:"publish"`
}

// CreateArticle adds a marketing article. Staff only, enforced by the
// command handler.
func (s *Server) CreateArticle(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	articleID := kernel.NewUUID()
	cmd, err := commands.NewCreateArticleCommand(
		articleID, actor, content.Kind(req.Kind), req.Title, req.Body, req.Publish)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.CreateArticle.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": articleID.String()})
}

type articleListItemResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetArticles lists articles, optionally filtered with ?kind=. The route is
// public; anyone but staff sees published articles only.
func (s *Server) GetArticles(c echo.Context) error {
	actor := actorOrGuest(c)

	var kind *content.Kind
	if raw := c.QueryParam("kind"); raw != "" {
		parsed := content.Kind(raw)
		kind = &parsed
	}

	query, err := queries.NewGetArticlesQuery(actor, kind)
	if err != nil {
		return s.respondError(c, err)
	}

	rows, err := s.queries.GetArticles.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	items := make([]articleListItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, articleListItemResponse{
			ID:        r.ID.String(),
			Kind:      r.Kind,
			Title:     r.Title,
			Published: r.Published,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, items)
}

type articleResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetArticle returns one article with its body. The route is public;
// unpublished articles stay hidden from anyone but staff.
func (s *Server) GetArticle(c echo.Context) error {
	actor := actorOrGuest(c)

	articleID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	query, err := queries.NewGetArticleQuery(actor, articleID)
	if err != nil {
		return s.respondError(c, err)
	}

	r, err := s.queries.GetArticle.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, articleResponse{
		ID:        r.ID.String(),
		Kind:      r.Kind,
		Title:     r.Title,
		Body:      r.Body,
		Published: r.Published,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	})
}

type updateArticleRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=news service faq"`
	Title     string `json:"title" validate:"required,max=300"`
	Body      string `json:"body" validate:"required"`
	Published *bool  `json:"published"`
}

// UpdateArticle replaces an article's content and optionally flips its
// published flag. Staff only, enforced by the command handler.
func (s *Server) UpdateArticle(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	articleID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateArticleCommand(
		articleID, actor, content.Kind(req.Kind), req.Title, req.Body, req.Published)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.UpdateArticle.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteArticle removes an article. Staff only, enforced by the command
// handler.
func (s *Server) DeleteArticle(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	articleID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	cmd, err := commands.NewDeleteArticleCommand(articleID, actor)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.DeleteArticle.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
