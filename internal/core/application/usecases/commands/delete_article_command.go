package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"
)

var ErrDeleteArticleCommandIsNotConstructed = errors.New(
	"DeleteArticleCommand must be created via NewDeleteArticleCommand constructor",
)

// DeleteArticleCommand represents a request to delete an article.
type DeleteArticleCommand struct { //nolint:recvcheck //using for validation
	articleID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteArticleCommand creates a command to delete an article.
func NewDeleteArticleCommand(articleID kernel.UUID, actor kernel.Actor) (DeleteArticleCommand, error) {
	cmd := DeleteArticleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setArticleID(articleID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteArticleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteArticleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteArticleCommandIsNotConstructed)
}

func (c DeleteArticleCommand) ArticleID() kernel.UUID { return c.articleID }
func (c DeleteArticleCommand) Actor() kernel.Actor    { return c.actor }

func (c *DeleteArticleCommand) setArticleID(articleID kernel.UUID) error {
	if err := articleID.Validate(); err != nil {
		return err
	}
	c.articleID = articleID
	return nil
}

func (c *DeleteArticleCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
