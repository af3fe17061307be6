package commands

import (
	"context"
)

// UpdateArticleCommandHandler handles article edits and visibility changes.
type UpdateArticleCommandHandler struct {
	uowFactory ContentUoWFactory
}

// NewUpdateArticleCommandHandler creates a handler for article updates.
func NewUpdateArticleCommandHandler(uowFactory ContentUoWFactory) UpdateArticleCommandHandler {
	return UpdateArticleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the article update command.
func (h *UpdateArticleCommandHandler) Handle(ctx context.Context, cmd UpdateArticleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	if err = aggregate.Update(cmd.Actor(), cmd.Kind(), cmd.Title(), cmd.Body()); err != nil {
		return err
	}

	if published := cmd.Published(); published != nil {
		if *published {
			err = aggregate.Publish(cmd.Actor())
		} else {
			err = aggregate.Unpublish(cmd.Actor())
		}
		if err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
