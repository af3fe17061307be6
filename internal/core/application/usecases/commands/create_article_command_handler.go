package commands

import (
	"context"

	"brokerage/internal/core/domain/model/content"
)

// CreateArticleCommandHandler handles article creation. Staff only.
type CreateArticleCommandHandler struct {
	uowFactory ContentUoWFactory
}

// NewCreateArticleCommandHandler creates a handler for article creation.
func NewCreateArticleCommandHandler(uowFactory ContentUoWFactory) CreateArticleCommandHandler {
	return CreateArticleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the article creation command.
func (h *CreateArticleCommandHandler) Handle(ctx context.Context, cmd CreateArticleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := content.NewArticle(cmd.ArticleID(), cmd.Actor(), cmd.Kind(), cmd.Title(), cmd.Body())
	if err != nil {
		return err
	}

	if cmd.ShouldPublish() {
		if err = aggregate.Publish(cmd.Actor()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
