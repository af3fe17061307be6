package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrUpdateArticleCommandIsNotConstructed = errors.New(
	"UpdateArticleCommand must be created via NewUpdateArticleCommand constructor",
)

// UpdateArticleCommand represents a request to edit an article or change its
// visibility. Content fields replace the current version wholesale; published
// toggles visibility when set.
type UpdateArticleCommand struct { //nolint:recvcheck //using for validation
	articleID kernel.UUID
	actor     kernel.Actor
	kind      content.Kind
	title     string
	body      string
	published *bool

	guard guard.ConstructorGuard
}

// NewUpdateArticleCommand creates a command to update an article.
func NewUpdateArticleCommand(
	articleID kernel.UUID,
	actor kernel.Actor,
	kind content.Kind,
	title string,
	body string,
	published *bool,
) (UpdateArticleCommand, error) {
	cmd := UpdateArticleCommand{
		published: published,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setArticleID(articleID),
		cmd.setActor(actor),
		cmd.setKind(kind),
		cmd.setContent(title, body),
	); err != nil {
		return UpdateArticleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateArticleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateArticleCommandIsNotConstructed)
}

func (c UpdateArticleCommand) ArticleID() kernel.UUID { return c.articleID }
func (c UpdateArticleCommand) Actor() kernel.Actor    { return c.actor }
func (c UpdateArticleCommand) Kind() content.Kind     { return c.kind }
func (c UpdateArticleCommand) Title() string          { return c.title }
func (c UpdateArticleCommand) Body() string           { return c.body }
func (c UpdateArticleCommand) Published() *bool       { return c.published }

func (c *UpdateArticleCommand) setArticleID(articleID kernel.UUID) error {
	if err := articleID.Validate(); err != nil {
		return err
	}
	c.articleID = articleID
	return nil
}

func (c *UpdateArticleCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateArticleCommand) setKind(kind content.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *UpdateArticleCommand) setContent(title, body string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	c.title = title
	c.body = body
	return nil
}
