package commands

import (
	"context"

	"brokerage/internal/pkg/errs"
)

// DeleteArticleCommandHandler handles article deletion. Staff only.
type DeleteArticleCommandHandler struct {
	uowFactory ContentUoWFactory
}

// NewDeleteArticleCommandHandler creates a handler for article deletion.
func NewDeleteArticleCommandHandler(uowFactory ContentUoWFactory) DeleteArticleCommandHandler {
	return DeleteArticleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the article deletion command.
func (h *DeleteArticleCommandHandler) Handle(ctx context.Context, cmd DeleteArticleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsStaff() {
		return errs.NewForbiddenError("delete article")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ContentRepository()
	aggregate, err := repo.Get(ctx, cmd.ArticleID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
